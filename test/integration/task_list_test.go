//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tasklink/domain/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestTaskList(t *testing.T) {
	t.Run("should return an empty collection as a json array", func(t *testing.T) {
		e, _ := setupTaskTestEnvironment(t)
		server := httptest.NewServer(e)
		defer server.Close()

		resp, err := http.Get(server.URL + "/tasks")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"tasks":[]`)
	})

	t.Run("should return tasks in creation order", func(t *testing.T) {
		e, _ := setupTaskTestEnvironment(t)
		server := httptest.NewServer(e)
		defer server.Close()

		titles := []string{"first errand", "second errand", "third errand"}
		for _, title := range titles {
			createTask(t, server.URL, map[string]any{
				"title":  title,
				"status": "undone",
			})
		}

		resp, err := http.Get(server.URL + "/tasks")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var collection struct {
			Tasks []task.Task `json:"tasks"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&collection))
		require.Len(t, collection.Tasks, 3)
		for i, title := range titles {
			assert.Equal(t, title, collection.Tasks[i].Title)
		}
	})

	t.Run("should cap the collection at the list limit", func(t *testing.T) {
		e, container := setupTaskTestEnvironment(t)
		server := httptest.NewServer(e)
		defer server.Close()

		docs := make([]interface{}, 0, task.MaxListLimit+1)
		for i := 0; i < task.MaxListLimit+1; i++ {
			docs = append(docs, bson.M{
				"title":       fmt.Sprintf("task %04d", i),
				"description": "",
				"priority":    task.DefaultPriority,
				"status":      task.StatusUndone,
			})
		}
		_, err := container.DB.Collection("tasks").InsertMany(context.Background(), docs)
		require.NoError(t, err)

		resp, err := http.Get(server.URL + "/tasks")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var collection struct {
			Tasks []task.Task `json:"tasks"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&collection))
		assert.Len(t, collection.Tasks, task.MaxListLimit)
		assert.Equal(t, "task 0000", collection.Tasks[0].Title)
	})

	t.Run("should accept a trailing slash", func(t *testing.T) {
		e, _ := setupTaskTestEnvironment(t)
		server := httptest.NewServer(e)
		defer server.Close()

		resp, err := http.Get(server.URL + "/tasks/")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
