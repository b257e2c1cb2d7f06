package handlers

import (
	"context"
	"net/url"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"memberdesk/internal/config"
)

const (
	dbStatusConnected    = "connected"
	dbStatusDisconnected = "disconnected"
	healthDBTimeout      = 2 * time.Second
)

type MemoryStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	HeapInuse  uint64 `json:"heapInuse"`
	NumGC      uint32 `json:"numGC"`
}

type HealthReport struct {
	Status      string      `json:"status"`
	Message     string      `json:"message"`
	Timestamp   string      `json:"timestamp"`
	Uptime      float64     `json:"uptime"`
	Environment string      `json:"environment"`
	Database    string      `json:"database"`
	Memory      MemoryStats `json:"memory"`
}

type DatabaseStatus struct {
	Status string `json:"status"`
	Host   string `json:"host"`
}

type ServerStatus struct {
	Uptime    float64 `json:"uptime"`
	Platform  string  `json:"platform"`
	GoVersion string  `json:"goVersion"`
}

type StatusReport struct {
	Service   string         `json:"service"`
	Status    string         `json:"status"`
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Database  DatabaseStatus `json:"database"`
	Server    ServerStatus   `json:"server"`
}

type HealthHandler struct {
	db        *mongo.Database
	env       string
	dbHost    string
	startedAt time.Time
}

func NewHealthHandler(database *mongo.Database, conf *config.Config) *HealthHandler {
	return &HealthHandler{
		db:        database,
		env:       conf.Env,
		dbHost:    mongoHost(conf.MongoURI),
		startedAt: time.Now(),
	}
}

// CheckHealth reports liveness, database connectivity, uptime and memory.
// Everything is computed fresh on each call.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	database := dbStatusDisconnected
	if h.checkConnectionToDatabase(c.Request.Context()) {
		database = dbStatusConnected
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(200, HealthReport{
		Status:      "OK",
		Message:     getAppName() + " is running",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.startedAt).Seconds(),
		Environment: h.env,
		Database:    database,
		Memory: MemoryStats{
			Alloc:      mem.Alloc,
			TotalAlloc: mem.TotalAlloc,
			Sys:        mem.Sys,
			HeapInuse:  mem.HeapInuse,
			NumGC:      mem.NumGC,
		},
	})
}

// CheckStatus reports service metadata, database host and platform info.
func (h *HealthHandler) CheckStatus(c *gin.Context) {
	database := dbStatusDisconnected
	if h.checkConnectionToDatabase(c.Request.Context()) {
		database = dbStatusConnected
	}

	c.JSON(200, StatusReport{
		Service:   getAppName(),
		Status:    "operational",
		Version:   getAppVersion(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database: DatabaseStatus{
			Status: database,
			Host:   h.dbHost,
		},
		Server: ServerStatus{
			Uptime:    time.Since(h.startedAt).Seconds(),
			Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			GoVersion: runtime.Version(),
		},
	})
}

func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(200, gin.H{
		"message":   "pong",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.Client().Ping(timeoutCtx, readpref.Primary()) == nil
}

func mongoHost(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}
	return parsed.Host
}

func getAppName() string {
	name := os.Getenv("APP_NAME")
	if name == "" {
		return "memberdesk"
	}
	return name
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
