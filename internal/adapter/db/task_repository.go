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

type TaskRepository struct {
	coll *mongo.Collection
}

type taskDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Priority    string             `bson:"priority"`
	DueDate     *time.Time         `bson:"dueDate,omitempty"`
	Tags        []string           `bson:"tags"`
	Completed   bool               `bson:"completed"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(database *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: database.Collection(TasksCollection)}
}

// List returns one page of tasks matching the filter, newest first, plus
// the total count of matching documents.
func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter, page domain.TaskPage) ([]domain.Task, int64, error) {
	query := bson.M{}
	if filter.Completed != nil {
		query["completed"] = *filter.Completed
	}
	if filter.Priority != nil {
		query["priority"] = string(*filter.Priority)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page.Page - 1) * page.Limit).
		SetLimit(page.Limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []taskDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, mapTaskDocToDomain(doc))
	}

	return tasks, total, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids are indistinguishable from absent ones to callers.
		return domain.Task{}, domain.ErrTaskNotFound
	}

	var doc taskDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskDocToDomain(doc), nil
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) (domain.Task, error) {
	doc := taskDoc{
		ID:          primitive.NewObjectID(),
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		Tags:        task.Tags,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.Task{}, err
	}

	return mapTaskDocToDomain(doc), nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, in domain.UpdateTaskInput) (domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	unset := bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.DescriptionSet {
		if in.Description != nil {
			set["description"] = *in.Description
		} else {
			unset["description"] = ""
		}
	}
	if in.Priority != nil {
		set["priority"] = string(*in.Priority)
	}
	if in.DueDateSet {
		if in.DueDate != nil {
			set["dueDate"] = *in.DueDate
		} else {
			unset["dueDate"] = ""
		}
	}
	if in.TagsSet {
		set["tags"] = in.Tags
	}
	if in.Completed != nil {
		set["completed"] = *in.Completed
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc taskDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskDocToDomain(doc), nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func mapTaskDocToDomain(doc taskDoc) domain.Task {
	task := domain.Task{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Priority:    domain.TaskPriority(doc.Priority),
		Tags:        doc.Tags,
		Completed:   doc.Completed,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}

	if doc.DueDate != nil {
		value := *doc.DueDate
		task.DueDate = &value
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}

	return task
}
