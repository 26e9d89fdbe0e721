package terminal

import (
	"os"
	"testing"
)

// setupCleanEnv pins every color-related environment variable for one test:
// variables named in envVars get that value, everything else is cleared. Uses
// t.Setenv so the original environment is restored and parallel subtests are
// rejected by the testing package rather than racing.
func setupCleanEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	// NO_COLOR is checked with os.LookupEnv, so presence matters even with
	// an empty value; it must be truly unset rather than set to "".
	existenceCheckedVars := []string{"NO_COLOR"}

	// These are checked with os.Getenv, where empty means unset.
	valueCheckedVars := []string{
		"CLICOLOR", "CLICOLOR_FORCE",
		"TERM", "COLORTERM",
		"CI", "CONTINUOUS_INTEGRATION", "GITHUB_ACTIONS", "TRAVIS",
		"CIRCLECI", "JENKINS_URL", "BUILD_NUMBER", "GITLAB_CI",
		"APPVEYOR", "BUILDKITE", "DRONE", "TF_BUILD",
	}

	for _, v := range existenceCheckedVars {
		if value, specified := envVars[v]; specified {
			t.Setenv(v, value)
		} else {
			t.Setenv(v, "") // register restoration of the original value
			os.Unsetenv(v)
		}
	}

	for _, v := range valueCheckedVars {
		if value, specified := envVars[v]; specified {
			t.Setenv(v, value)
		} else {
			t.Setenv(v, "")
		}
	}
}
