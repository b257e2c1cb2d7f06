//go:build integration
// +build integration

package tests

import (
	"context"
	"os"
	"strings"
	"time"

	dbadapter "memberdesk/internal/adapter/db"
	"memberdesk/internal/config"
	"memberdesk/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const translationFolder = "../../../../pkg/translator/translation"

// IntegrationSuiteBase connects to a local mongod and works against a
// disposable database that is dropped when the suite finishes. The suite
// skips itself when no server is reachable.
type IntegrationSuiteBase struct {
	suite.Suite

	client     *mongo.Client
	DB         *mongo.Database
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	uri := envOrDefault("MONGODB_URI", "mongodb://127.0.0.1:27017")
	database := envOrDefault("MONGODB_TEST_DATABASE", envOrDefault("MONGODB_DATABASE", "memberdesk")+"_test")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(2*time.Second))
	if err == nil {
		err = client.Ping(ctx, readpref.Primary())
	}
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mongodb: %v", err)
	}

	s.client = client
	s.DB = client.Database(database)
	s.testDBName = database
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	// Drop test database to keep local environment clean after integration runs.
	if s.DB != nil && strings.HasSuffix(s.testDBName, "_test") {
		s.Require().NoError(s.DB.Drop(context.Background()))
	}

	if s.client != nil {
		s.Require().NoError(s.client.Disconnect(context.Background()))
	}
}

// ResetDatabase empties both collections and recreates the unique email
// index so each test starts from a blank store.
func (s *IntegrationSuiteBase) ResetDatabase() {
	ctx := context.Background()

	for _, name := range []string{dbadapter.MembersCollection, dbadapter.TasksCollection} {
		s.Require().NoError(s.DB.Collection(name).Drop(ctx))
	}

	_, err := s.DB.Collection(dbadapter.MembersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) testConfig() *config.Config {
	return &config.Config{
		Env:           config.EnvTest,
		MongoURI:      envOrDefault("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase: s.testDBName,
		StaticDir:     "client/dist",
	}
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
