package app

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newOfflineDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	// Connect is lazy, so nothing has to be listening on this port.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:1"))
	if err != nil {
		t.Fatalf("Failed to build client: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	return client.Database("tasklink_test")
}

func TestNewContainer(t *testing.T) {
	container := NewContainer(newOfflineDatabase(t))

	if container.DB == nil {
		t.Error("Expected DB to be set")
	}
	if container.TaskRepository == nil {
		t.Error("Expected TaskRepository to be initialized")
	}
}

func TestContainer_PingSurfacesConnectionErrors(t *testing.T) {
	container := NewContainer(newOfflineDatabase(t))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := container.Ping(ctx); err == nil {
		t.Error("Expected ping to fail without a reachable deployment")
	}
}
