//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	// Ensure the test binary exists (it should be built by TestMain)
	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// Run directly, not through a PTY, since it exits immediately
	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "Usage")
	require.Contains(t, output, "--catalog")
	require.Contains(t, output, "--page-size")
	require.Contains(t, output, "list")
}

func TestListCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	path, err := tf.WriteCatalog("books.json", DefaultBooks())
	require.NoError(t, err, "Failed to write catalog")

	cmd := exec.Command(binPath, "--catalog", path, "list", "--page", "2")
	cmd.Dir = workspace
	cmd.Env = append(os.Environ(), "HOME="+workspace, "XDG_CONFIG_HOME="+workspace+"/.config")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "list should succeed: %s", out)

	output := string(out)
	require.Contains(t, output, "Volume 21")
	require.Contains(t, output, "Dune")
	require.Contains(t, output, "Page 2 of 2 (25 of 25 books)")
}

func TestListRejectsBadPageSize(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	path, err := tf.WriteCatalog("books.json", DefaultBooks())
	require.NoError(t, err, "Failed to write catalog")

	cmd := exec.Command(binPath, "--catalog", path, "--page-size", "25", "list")
	cmd.Dir = workspace
	cmd.Env = append(os.Environ(), "HOME="+workspace, "XDG_CONFIG_HOME="+workspace+"/.config")
	out, err := cmd.CombinedOutput()
	require.Error(t, err, "page size 25 is not allowed")
	require.Contains(t, string(out), "page size must be 20, 50 or 100")
}
