package terminal

import "testing"

func TestInteractiveDetector_ForceOptions(t *testing.T) {
	setupCleanEnv(t, map[string]string{"CI": "true"})

	forced := NewInteractiveDetector(DetectorOptions{ForceInteractive: true})
	if !forced.IsInteractive() {
		t.Error("ForceInteractive should win over CI detection")
	}

	suppressed := NewInteractiveDetector(DetectorOptions{ForceNonInteractive: true})
	if suppressed.IsInteractive() {
		t.Error("ForceNonInteractive should force non-interactive mode")
	}
}

func TestInteractiveDetector_IsCIEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantCI  bool
	}{
		{
			name:    "no CI variables",
			envVars: map[string]string{},
			wantCI:  false,
		},
		{
			name:    "CI=true",
			envVars: map[string]string{"CI": "true"},
			wantCI:  true,
		},
		{
			name:    "CI=1",
			envVars: map[string]string{"CI": "1"},
			wantCI:  true,
		},
		{
			name:    "CI=false is not a CI environment",
			envVars: map[string]string{"CI": "false"},
			wantCI:  false,
		},
		{
			name:    "CI=0 is not a CI environment",
			envVars: map[string]string{"CI": "0"},
			wantCI:  false,
		},
		{
			name:    "GITHUB_ACTIONS present",
			envVars: map[string]string{"GITHUB_ACTIONS": "true"},
			wantCI:  true,
		},
		{
			name:    "JENKINS_URL present",
			envVars: map[string]string{"JENKINS_URL": "https://jenkins.example.com"},
			wantCI:  true,
		},
		{
			name:    "BUILDKITE present",
			envVars: map[string]string{"BUILDKITE": "true"},
			wantCI:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCleanEnv(t, tt.envVars)

			detector := NewInteractiveDetector(DetectorOptions{})
			if got := detector.IsCIEnvironment(); got != tt.wantCI {
				t.Errorf("IsCIEnvironment() = %v, want %v", got, tt.wantCI)
			}
		})
	}
}

func TestInteractiveDetector_CIWinsOverTTY(t *testing.T) {
	setupCleanEnv(t, map[string]string{"CI": "true"})

	// Even if the test runner has a TTY attached, CI must force
	// non-interactive mode.
	detector := NewInteractiveDetector(DetectorOptions{})
	if detector.IsInteractive() {
		t.Error("CI environment should be non-interactive")
	}
}
