package envfile

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultAPIBaseURL is used by presets and when no base URL is given.
const DefaultAPIBaseURL = "http://localhost:8080"

var presets = map[string]Flags{
	// debug: verbose diagnostics against the real backend.
	"debug": {
		APIBaseURL:    DefaultAPIBaseURL,
		Debug:         true,
		DebugMode:     true,
		ShowAPIErrors: true,
	},
	// mock: diagnostics plus fixture fallback when the backend fails.
	"mock": {
		APIBaseURL:           DefaultAPIBaseURL,
		Debug:                true,
		UseMockDataOnFailure: true,
		DebugMode:            true,
		ShowAPIErrors:        true,
	},
	// production: everything off.
	"production": {
		APIBaseURL: DefaultAPIBaseURL,
	},
}

// Preset returns the named flag set. Names are case-insensitive.
func Preset(name string) (Flags, error) {
	flags, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Flags{}, fmt.Errorf("%w %q, want one of %s", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return flags, nil
}

// PresetNames returns the known preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
