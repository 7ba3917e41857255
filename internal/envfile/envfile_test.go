package envfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

func withoutTimestamp(data []byte) string {
	lines := strings.Split(string(data), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !strings.HasPrefix(line, timestampPrefix) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func TestRender(t *testing.T) {
	got := string(Render(Flags{
		APIBaseURL:           "https://api.example.com",
		Debug:                true,
		UseMockDataOnFailure: false,
		DebugMode:            true,
		ShowAPIErrors:        false,
	}, fixedNow))

	want := "# Generated by appkit env write\n" +
		"# Generated at: 2026-03-01T12:30:00Z\n" +
		"# Changes are overwritten on the next run.\n" +
		"\n" +
		"VITE_API_BASE_URL=https://api.example.com\n" +
		"VITE_DEBUG=true\n" +
		"VITE_USE_MOCK_DATA_ON_FAILURE=false\n" +
		"VITE_DEBUG_MODE=true\n" +
		"VITE_SHOW_API_ERRORS=false\n"

	assert.Equal(t, want, got)
}

func TestRender_OnlyTimestampVaries(t *testing.T) {
	flags := Flags{APIBaseURL: DefaultAPIBaseURL, Debug: true}

	a := Render(flags, fixedNow)
	b := Render(flags, fixedNow.Add(72*time.Hour))

	assert.NotEqual(t, string(a), string(b))
	assert.Equal(t, withoutTimestamp(a), withoutTimestamp(b))
}

func TestRender_TimestampInUTC(t *testing.T) {
	local := time.Date(2026, 3, 1, 15, 30, 0, 0, time.FixedZone("MSK", 3*60*60))

	assert.Contains(t, string(Render(Flags{}, local)), "# Generated at: 2026-03-01T12:30:00Z\n")
}

func TestRender_DistinctFlagLines(t *testing.T) {
	got := string(Render(Flags{Debug: true, UseMockDataOnFailure: true}, fixedNow))

	assert.Contains(t, got, "\nVITE_DEBUG=true\n")
	assert.Contains(t, got, "\nVITE_USE_MOCK_DATA_ON_FAILURE=true\n")
	assert.Equal(t, 1, strings.Count(got, "VITE_DEBUG=true"))
}

func TestRender_ValuesWrittenLiterally(t *testing.T) {
	got := string(Render(Flags{APIBaseURL: "http://host:9000/api?x=1"}, fixedNow))

	assert.Contains(t, got, "\nVITE_API_BASE_URL=http://host:9000/api?x=1\n")
}

func TestWriter_WriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.local")
	flags := Flags{
		APIBaseURL:           "http://localhost:9090",
		Debug:                true,
		UseMockDataOnFailure: true,
		DebugMode:            false,
		ShowAPIErrors:        true,
	}

	w := NewWriter(path, logger.Nop())
	w.Now = func() time.Time { return fixedNow }
	require.NoError(t, w.Write(flags))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(Render(flags, fixedNow)), string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, flags, got)
}

func TestWriter_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("OLD=1\n"), 0o600))

	w := NewWriter(path, nil)
	require.NoError(t, w.Write(Flags{APIBaseURL: "http://new"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "OLD=1")
	assert.Contains(t, string(data), "VITE_API_BASE_URL=http://new\n")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriter_DefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, NewWriter("", nil).Write(Flags{}))

	_, err := os.Stat(DefaultPath)
	assert.NoError(t, err)
}

func TestWriter_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", ".env.local")

	err := NewWriter(path, nil).Write(Flags{})

	assert.ErrorIs(t, err, ErrWriteEnvFile)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriter_RejectsLineBreaks(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "injected key", url: "http://a\nVITE_DEBUG=true"},
		{name: "trailing CR", url: "http://a\r"},
		{name: "leading CRLF", url: "\r\nhttp://a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".env.local")
			require.NoError(t, os.WriteFile(path, []byte("KEEP=1\n"), 0o644))

			err := NewWriter(path, nil).Write(Flags{APIBaseURL: tt.url})

			require.ErrorIs(t, err, ErrWriteEnvFile)
			assert.Contains(t, err.Error(), KeyAPIBaseURL)
			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, "KEEP=1\n", string(data), "destination untouched")
		})
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Flags
		wantErr bool
	}{
		{
			name:    "missing keys keep zero values",
			content: "VITE_DEBUG=true\n",
			want:    Flags{Debug: true},
		},
		{
			name:    "unknown keys ignored",
			content: "VITE_API_BASE_URL=http://x\nOTHER=1\n",
			want:    Flags{APIBaseURL: "http://x"},
		},
		{
			name:    "empty boolean is false",
			content: "VITE_SHOW_API_ERRORS=\n",
			want:    Flags{},
		},
		{
			name:    "non boolean rejected",
			content: "VITE_DEBUG_MODE=maybe\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".env")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := Read(path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrReadEnvFile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.env"))

	assert.ErrorIs(t, err, ErrReadEnvFile)
}
