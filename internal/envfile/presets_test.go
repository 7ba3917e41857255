package envfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreset(t *testing.T) {
	tests := []struct {
		name string
		want Flags
	}{
		{name: "debug", want: Flags{APIBaseURL: DefaultAPIBaseURL, Debug: true, DebugMode: true, ShowAPIErrors: true}},
		{name: "MOCK", want: Flags{
			APIBaseURL:           DefaultAPIBaseURL,
			Debug:                true,
			UseMockDataOnFailure: true,
			DebugMode:            true,
			ShowAPIErrors:        true,
		}},
		{name: " Production ", want: Flags{APIBaseURL: DefaultAPIBaseURL}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Preset(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreset_Unknown(t *testing.T) {
	_, err := Preset("staging")

	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Contains(t, err.Error(), "debug, mock, production")
}

func TestPresetNames(t *testing.T) {
	assert.Equal(t, []string{"debug", "mock", "production"}, PresetNames())
}
