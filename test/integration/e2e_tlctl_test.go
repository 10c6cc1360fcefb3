//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tasklink/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_TlctlTaskLifecycle(t *testing.T) {
	t.Run("should manage a task end to end through tlctl", func(t *testing.T) {
		e, _ := setupTaskTestEnvironment(t)
		server := httptest.NewServer(e)
		defer server.Close()

		stdout, stderr, exitCode := runTlctlCommand(t, server.URL,
			"task", "create",
			"--title", "write release notes",
			"--priority", "3",
			"--status", "undone",
		)
		require.Equal(t, 0, exitCode, "stderr: %s", stderr)

		var created map[string]any
		require.NoError(t, json.Unmarshal([]byte(stdout), &created))
		taskID := created["id"].(string)
		require.NotEmpty(t, taskID)
		assert.Equal(t, float64(3), created["priority"])

		stdout, stderr, exitCode = runTlctlCommand(t, server.URL, "task", "update", "--status", "done", taskID)
		require.Equal(t, 0, exitCode, "stderr: %s", stderr)

		var updated map[string]any
		require.NoError(t, json.Unmarshal([]byte(stdout), &updated))
		assert.Equal(t, "done", updated["status"])

		stdout, stderr, exitCode = runTlctlCommand(t, server.URL, "task", "list")
		require.Equal(t, 0, exitCode, "stderr: %s", stderr)
		assert.Contains(t, stdout, taskID)

		_, stderr, exitCode = runTlctlCommand(t, server.URL, "task", "delete", taskID)
		require.Equal(t, 0, exitCode, "stderr: %s", stderr)

		_, stderr, exitCode = runTlctlCommand(t, server.URL, "task", "get", taskID)
		require.NotEqual(t, 0, exitCode)
		assert.Contains(t, stderr, "404")
	})
}

func TestTlctlHelp(t *testing.T) {
	cmd := exec.Command("go", "run", "../../cmd/tlctl", "--help")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "Failed to run tlctl --help: %s", string(output))

	outputStr := string(output)
	assert.Contains(t, outputStr, "tlctl", "Help should contain 'tlctl'")
	assert.Contains(t, outputStr, "USAGE", "Help should contain usage section")
}

func TestTlctlVersion(t *testing.T) {
	cmd := exec.Command("go", "run", "../../cmd/tlctl", "--version")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "Failed to run tlctl --version: %s", string(output))

	outputStr := strings.TrimSpace(string(output))
	assert.Contains(t, outputStr, version.Version, "Version output should contain version number")
}

func runTlctlCommand(t *testing.T, serverURL string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	tlctlPath := buildTlctl(t)

	allArgs := append([]string{"--server", serverURL}, args...)
	cmd := exec.Command(tlctlPath, allArgs...)

	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout = strings.TrimSpace(outBuf.String())
	stderr = strings.TrimSpace(errBuf.String())

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = 1
		}
	} else {
		exitCode = 0
	}

	return stdout, stderr, exitCode
}

func buildTlctl(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	tlctlPath := filepath.Join(tmpDir, "tlctl")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "build", "-o", tlctlPath, "../../cmd/tlctl")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "Failed to build tlctl: %s", string(output))

	return tlctlPath
}
