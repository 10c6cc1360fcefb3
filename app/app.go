package app

import (
	"context"

	"tasklink/domain/task"
	mongoRepo "tasklink/internal/repository/mongo"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Container struct {
	DB             *mongo.Database
	TaskRepository task.Repository
}

func NewContainer(db *mongo.Database) *Container {
	// Initialize repositories
	taskRepo := mongoRepo.NewTaskRepository(db)

	return &Container{
		DB:             db,
		TaskRepository: taskRepo,
	}
}

// Ping checks the backing deployment. The status route depends on it.
func (c *Container) Ping(ctx context.Context) error {
	return c.DB.Client().Ping(ctx, readpref.Primary())
}
