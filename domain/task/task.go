package task

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("task not found")
	ErrInvalidID = errors.New("invalid task id")
)

const (
	StatusDone     = "done"
	StatusUndone   = "undone"
	StatusProgress = "progress"
)

const (
	// DefaultPriority is applied when a create request omits priority.
	DefaultPriority = 10
	// MaxListLimit caps how many tasks a single listing can return.
	MaxListLimit = 1000
)

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Priority    int                `bson:"priority" json:"priority"`
	Status      string             `bson:"status" json:"status"`
}

// Patch holds the fields of a partial update. Nil fields stay untouched.
type Patch struct {
	Title       *string
	Description *string
	Priority    *int
	Status      *string
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil && p.Status == nil
}

// ValidStatus reports whether s is one of the accepted status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusDone, StatusUndone, StatusProgress:
		return true
	}
	return false
}
