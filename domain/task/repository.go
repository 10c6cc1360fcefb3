package task

import "context"

type Repository interface {
	Insert(ctx context.Context, task *Task) error
	FindAll(ctx context.Context, limit int64) ([]Task, error)
	FindByID(ctx context.Context, id string) (*Task, error)
	UpdateFields(ctx context.Context, id string, patch Patch) (*Task, error)
	Delete(ctx context.Context, id string) error
}
