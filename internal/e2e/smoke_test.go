package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}

	workDir := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runAVG(t, binaryPath, workDir, "generate")
	require.Error(t, err)
	assert.Contains(t, stderr, "Required format:")

	_, stderr, err = runAVG(t, binaryPath, workDir,
		"config", "init",
		"--user-data-path", filepath.Join(workDir, "chrome"),
		"--save-dir", filepath.Join(workDir, "videos"),
		"--profile", "Default",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runAVG(t, binaryPath, workDir, "profile", "add", "Profile 1")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "(2 in rotation)")

	stdout, stderr, err = runAVG(t, binaryPath, workDir, "profile", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Profile 1 [missing]")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "avg-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/avg")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build avg binary: %s", string(output))
	return binaryPath
}

func runAVG(t *testing.T, binaryPath, workDir string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = workDir
	cmd.Env = os.Environ()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
