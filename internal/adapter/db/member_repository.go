package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"memberdesk/internal/core/domain"
	"memberdesk/internal/core/ports"
)

type MemberRepository struct {
	coll *mongo.Collection
}

type memberDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	MembershipType string             `bson:"membershipType"`
	JoinDate       time.Time          `bson:"joinDate"`
	IsActive       bool               `bson:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

var _ ports.MemberRepository = (*MemberRepository)(nil)

func NewMemberRepository(database *mongo.Database) *MemberRepository {
	return &MemberRepository{coll: database.Collection(MembersCollection)}
}

func (r *MemberRepository) List(ctx context.Context) ([]domain.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []memberDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(docs))
	for _, doc := range docs {
		members = append(members, mapMemberDocToDomain(doc))
	}

	return members, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (domain.Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids are indistinguishable from absent ones to callers.
		return domain.Member{}, domain.ErrMemberNotFound
	}

	var doc memberDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Member{}, domain.ErrMemberNotFound
		}
		return domain.Member{}, err
	}

	return mapMemberDocToDomain(doc), nil
}

func (r *MemberRepository) Insert(ctx context.Context, member domain.Member) (domain.Member, error) {
	doc := memberDoc{
		ID:             primitive.NewObjectID(),
		Name:           member.Name,
		Email:          member.Email,
		MembershipType: string(member.MembershipType),
		JoinDate:       member.JoinDate,
		IsActive:       member.IsActive,
		CreatedAt:      member.CreatedAt,
		UpdatedAt:      member.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Member{}, domain.ErrEmailExists
		}
		return domain.Member{}, err
	}

	return mapMemberDocToDomain(doc), nil
}

func (r *MemberRepository) Update(ctx context.Context, id string, in domain.UpdateMemberInput) (domain.Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Member{}, domain.ErrMemberNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.MembershipType != nil {
		set["membershipType"] = string(*in.MembershipType)
	}
	if in.JoinDate != nil {
		set["joinDate"] = *in.JoinDate
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc memberDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Member{}, domain.ErrMemberNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return domain.Member{}, domain.ErrEmailExists
		}
		return domain.Member{}, err
	}

	return mapMemberDocToDomain(doc), nil
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMemberNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

func mapMemberDocToDomain(doc memberDoc) domain.Member {
	return domain.Member{
		ID:             doc.ID.Hex(),
		Name:           doc.Name,
		Email:          doc.Email,
		MembershipType: domain.MembershipType(doc.MembershipType),
		JoinDate:       doc.JoinDate,
		IsActive:       doc.IsActive,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}
