package testutils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// ChTempDir changes the working directory to path until the test finishes.
// Use it for tests that write files relative to the working directory, such
// as the messages.log dump written in debug mode or a config file found by
// relative path.
func ChTempDir(t *testing.T, path string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(path))

	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
}
