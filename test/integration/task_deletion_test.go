//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tasklink/domain/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTaskDeletion(t *testing.T) {
	t.Run("should delete the task and return no content", func(t *testing.T) {
		e, container := setupTaskTestEnvironment(t)
		server := httptest.NewServer(e)
		defer server.Close()

		created := createTask(t, server.URL, map[string]any{
			"title":  "write release notes",
			"status": "undone",
		})

		resp := doJSON(t, http.MethodDelete, server.URL+"/tasks/"+created.ID.Hex(), nil)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, body)

		_, err = container.TaskRepository.FindByID(context.Background(), created.ID.Hex())
		assert.True(t, errors.Is(err, task.ErrNotFound))

		getResp, err := http.Get(server.URL + "/tasks/" + created.ID.Hex())
		require.NoError(t, err)
		defer getResp.Body.Close()
		assert.Equal(t, http.StatusNotFound, getResp.StatusCode)

		again := doJSON(t, http.MethodDelete, server.URL+"/tasks/"+created.ID.Hex(), nil)
		defer again.Body.Close()
		assert.Equal(t, http.StatusNotFound, again.StatusCode)
	})

	t.Run("should return 404 for a missing task", func(t *testing.T) {
		e, _ := setupTaskTestEnvironment(t)
		server := httptest.NewServer(e)
		defer server.Close()

		missingID := primitive.NewObjectID().Hex()

		resp := doJSON(t, http.MethodDelete, server.URL+"/tasks/"+missingID, nil)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var errBody map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
		assert.Contains(t, errBody["error"], missingID)
	})

	t.Run("should return 400 for a malformed id", func(t *testing.T) {
		e, _ := setupTaskTestEnvironment(t)
		server := httptest.NewServer(e)
		defer server.Close()

		resp := doJSON(t, http.MethodDelete, server.URL+"/tasks/not-a-task-id", nil)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
