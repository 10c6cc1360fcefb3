package mongo

import (
	"context"
	"errors"

	"tasklink/domain/task"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "tasks"

type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) task.Repository {
	return &TaskRepository{coll: db.Collection(collectionName)}
}

func (r *TaskRepository) Insert(ctx context.Context, t *task.Task) error {
	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid
	}
	return nil
}

func (r *TaskRepository) FindAll(ctx context.Context, limit int64) ([]task.Task, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(clampLimit(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	tasks := []task.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*task.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, task.ErrInvalidID
	}

	var t task.Task
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, task.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) UpdateFields(ctx context.Context, id string, patch task.Patch) (*task.Task, error) {
	if patch.IsEmpty() {
		// Nothing to write, so this degenerates to a lookup.
		return r.FindByID(ctx, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, task.ErrInvalidID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var t task.Task
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": setDocument(patch)}, opts).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, task.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return task.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return task.ErrNotFound
	}
	return nil
}

func setDocument(p task.Patch) bson.M {
	sets := bson.M{}
	if p.Title != nil {
		sets["title"] = *p.Title
	}
	if p.Description != nil {
		sets["description"] = *p.Description
	}
	if p.Priority != nil {
		sets["priority"] = *p.Priority
	}
	if p.Status != nil {
		sets["status"] = *p.Status
	}
	return sets
}

func clampLimit(limit int64) int64 {
	if limit <= 0 || limit > task.MaxListLimit {
		return task.MaxListLimit
	}
	return limit
}
