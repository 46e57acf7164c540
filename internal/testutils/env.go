// Package testutils provides helpers shared by the tests of several packages.
package testutils

import (
	"os"
	"strings"
	"testing"
)

// ResetEnv unsets every environment variable for the duration of the test,
// so that SVGEDIT_* variables on the host cannot leak into config parsing.
// The original environment is restored when the test finishes.
func ResetEnv(t *testing.T) {
	t.Helper()

	for _, env := range os.Environ() {
		k, v, _ := strings.Cut(env, "=")
		os.Unsetenv(k)
		t.Cleanup(func() {
			os.Setenv(k, v)
		})
	}
}
