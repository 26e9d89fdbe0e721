package terminal

import "testing"

func TestUserPreference_SupportsColor(t *testing.T) {
	tests := []struct {
		name      string
		options   PreferenceOptions
		envVars   map[string]string
		wantColor bool
	}{
		{
			name:      "ForceColor option wins",
			options:   PreferenceOptions{ForceColor: true},
			envVars:   map[string]string{"NO_COLOR": "1"},
			wantColor: true,
		},
		{
			name:      "DisableColor option wins",
			options:   PreferenceOptions{DisableColor: true},
			envVars:   map[string]string{"CLICOLOR_FORCE": "1"},
			wantColor: false,
		},
		{
			name:      "CLICOLOR_FORCE=1 forces color",
			envVars:   map[string]string{"CLICOLOR_FORCE": "1"},
			wantColor: true,
		},
		{
			name:      "CLICOLOR_FORCE wins over NO_COLOR",
			envVars:   map[string]string{"CLICOLOR_FORCE": "1", "NO_COLOR": "1"},
			wantColor: true,
		},
		{
			name:      "CLICOLOR_FORCE=0 does not force color",
			envVars:   map[string]string{"CLICOLOR_FORCE": "0"},
			wantColor: false,
		},
		{
			name:      "NO_COLOR disables color",
			envVars:   map[string]string{"NO_COLOR": "1"},
			wantColor: false,
		},
		{
			name:      "NO_COLOR disables color even when empty",
			envVars:   map[string]string{"NO_COLOR": ""},
			wantColor: false,
		},
		{
			name:      "no preference defaults to no color",
			envVars:   map[string]string{},
			wantColor: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCleanEnv(t, tt.envVars)

			pref := NewUserPreference(tt.options)
			if got := pref.SupportsColor(); got != tt.wantColor {
				t.Errorf("SupportsColor() = %v, want %v", got, tt.wantColor)
			}
		})
	}
}

func TestUserPreference_HasExplicitPreference(t *testing.T) {
	tests := []struct {
		name         string
		options      PreferenceOptions
		envVars      map[string]string
		wantExplicit bool
	}{
		{
			name:         "ForceColor option is explicit",
			options:      PreferenceOptions{ForceColor: true},
			envVars:      map[string]string{},
			wantExplicit: true,
		},
		{
			name:         "DisableColor option is explicit",
			options:      PreferenceOptions{DisableColor: true},
			envVars:      map[string]string{},
			wantExplicit: true,
		},
		{
			name:         "CLICOLOR_FORCE=1 is explicit",
			envVars:      map[string]string{"CLICOLOR_FORCE": "1"},
			wantExplicit: true,
		},
		{
			name:         "CLICOLOR_FORCE=0 is not explicit",
			envVars:      map[string]string{"CLICOLOR_FORCE": "0"},
			wantExplicit: false,
		},
		{
			name:         "NO_COLOR is explicit even when empty",
			envVars:      map[string]string{"NO_COLOR": ""},
			wantExplicit: true,
		},
		{
			name:         "CLICOLOR alone is not explicit",
			envVars:      map[string]string{"CLICOLOR": "1"},
			wantExplicit: false,
		},
		{
			name:         "nothing set is not explicit",
			envVars:      map[string]string{},
			wantExplicit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCleanEnv(t, tt.envVars)

			pref := NewUserPreference(tt.options)
			if got := pref.HasExplicitPreference(); got != tt.wantExplicit {
				t.Errorf("HasExplicitPreference() = %v, want %v", got, tt.wantExplicit)
			}
		})
	}
}
