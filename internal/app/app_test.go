package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-app-kit/internal/config"
	"github.com/MKhiriev/go-app-kit/internal/envfile"
	handlerhttp "github.com/MKhiriev/go-app-kit/internal/handler/http"
	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/internal/service"
	"github.com/MKhiriev/go-app-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestApp(environ ...string) testApp {
	var stdout, stderr bytes.Buffer
	a := New(models.NewAppBuildInfo("v1.0.0", "2026-01-01", "abc123"), &stdout, &stderr)
	a.environ = append([]string{}, environ...)
	return testApp{App: a, stdout: &stdout, stderr: &stderr}
}

func (a testApp) run(t *testing.T, args ...string) error {
	t.Helper()
	return a.Execute(context.Background(), args)
}

func newMockBackend(t *testing.T) *httptest.Server {
	t.Helper()

	services, err := service.NewServices(
		&config.ApplicationConfig{AppInfo: config.AppInfo{Name: "mock", Version: "1.0.0"}},
		config.MockServerConfig{SignKey: "k", Email: "demo@example.com", Password: "password", TokenDuration: time.Hour},
		models.AppBuildInfo{},
		logger.Nop(),
	)
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func TestEnvWrite_Defaults(t *testing.T) {
	a := newTestApp()
	path := filepath.Join(t.TempDir(), ".env.local")

	require.NoError(t, a.run(t, "env", "write", "-o", path))

	flags, err := envfile.Read(path)
	require.NoError(t, err)
	assert.Equal(t, envfile.Flags{APIBaseURL: envfile.DefaultAPIBaseURL}, flags)
	assert.Contains(t, a.stdout.String(), "wrote "+path)
}

func TestEnvWrite_Flags(t *testing.T) {
	a := newTestApp()
	path := filepath.Join(t.TempDir(), ".env.local")

	require.NoError(t, a.run(t, "env", "write", "-o", path, "--debug", "--mock-on-failure", "--api-base-url", "https://api.example.com"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\nVITE_DEBUG=true\n")
	assert.Contains(t, string(data), "\nVITE_USE_MOCK_DATA_ON_FAILURE=true\n")
	assert.Contains(t, string(data), "\nVITE_API_BASE_URL=https://api.example.com\n")
}

func TestEnvWrite_PresetWithOverride(t *testing.T) {
	a := newTestApp()
	path := filepath.Join(t.TempDir(), ".env.local")

	require.NoError(t, a.run(t, "env", "write", "-o", path, "--preset", "mock", "--debug=false"))

	flags, err := envfile.Read(path)
	require.NoError(t, err)
	assert.False(t, flags.Debug, "explicit flag wins over the preset")
	assert.True(t, flags.UseMockDataOnFailure)
	assert.True(t, flags.ShowAPIErrors)
}

func TestEnvWrite_Errors(t *testing.T) {
	a := newTestApp()

	err := a.run(t, "env", "write", "-o", filepath.Join(t.TempDir(), "f"), "--preset", "nope")
	assert.ErrorIs(t, err, envfile.ErrUnknownPreset)

	err = a.run(t, "env", "write", "-o", filepath.Join(t.TempDir(), "missing", "f"))
	assert.ErrorIs(t, err, envfile.ErrWriteEnvFile)
}

func TestEnvShow(t *testing.T) {
	a := newTestApp()
	path := filepath.Join(t.TempDir(), ".env.local")
	require.NoError(t, envfile.NewWriter(path, nil).Write(envfile.Flags{APIBaseURL: "http://x", ShowAPIErrors: true}))

	require.NoError(t, a.run(t, "env", "show", "-o", path))

	assert.Equal(t, "VITE_API_BASE_URL=http://x\n"+
		"VITE_DEBUG=false\n"+
		"VITE_USE_MOCK_DATA_ON_FAILURE=false\n"+
		"VITE_DEBUG_MODE=false\n"+
		"VITE_SHOW_API_ERRORS=true\n", a.stdout.String())
}

func TestConfigShow_MasksSecrets(t *testing.T) {
	a := newTestApp("VITE_MAPS_API_KEY=super-secret", "VITE_MOCK_USER_TOKEN=user-token")

	require.NoError(t, a.run(t, "config", "show", "--api-base-url", "https://api.example.com"))

	out := a.stdout.String()
	assert.NotContains(t, out, "super-secret")
	assert.NotContains(t, out, "user-token")

	var got config.StructuredJSONConfig
	require.NoError(t, json.Unmarshal(a.stdout.Bytes(), &got))
	require.NotNil(t, got.API.BaseURL)
	assert.Equal(t, "https://api.example.com", *got.API.BaseURL)
	require.NotNil(t, got.DevelopmentOverrides.MockUserToken)
	assert.Equal(t, "********", *got.DevelopmentOverrides.MockUserToken)
	assert.Nil(t, got.DevelopmentOverrides.MockAdminToken)
}

func TestConfigShow_ProductionDropsOverrides(t *testing.T) {
	a := newTestApp("VITE_APP_ENV=production", "VITE_MOCK_ADMIN_TOKEN=admin")

	require.NoError(t, a.run(t, "config", "show"))

	var got config.StructuredJSONConfig
	require.NoError(t, json.Unmarshal(a.stdout.Bytes(), &got))
	assert.Nil(t, got.DevelopmentOverrides.MockAdminToken)
	assert.Nil(t, got.DevelopmentOverrides.APIDelay)
	assert.Contains(t, a.stderr.String(), "development overrides are ignored in production")
}

func TestConfigShow_InvalidConfig(t *testing.T) {
	a := newTestApp("VITE_API_BASE_URL=not a url")

	err := a.run(t, "config", "show")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSmoke_Success(t *testing.T) {
	srv := newMockBackend(t)
	a := newTestApp()

	require.NoError(t, a.run(t, "smoke",
		"--api-base-url", srv.URL,
		"--email", "demo@example.com",
		"--password", "password",
	))

	out := a.stdout.String()
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "items: 3")
	assert.Contains(t, out, "total: 2 active, 1 inactive")
	assert.Contains(t, out, "subject demo@example.com")
}

func TestSmoke_WrongPassword(t *testing.T) {
	srv := newMockBackend(t)
	a := newTestApp("VITE_API_BASE_URL=" + srv.URL)

	err := a.run(t, "smoke", "--email", "demo@example.com", "--password", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrLoginFailed)

	diag := a.stderr.String()
	assert.Contains(t, diag, "FAIL")
	assert.Contains(t, diag, "API error")
	assert.Contains(t, diag, "401")
	assert.Contains(t, diag, "********")
	assert.NotContains(t, diag, `"password":"wrong"`, "the password must not be dumped")
}

// reportFailingWriter fails every write of the smoke failure report and
// records everything else.
type reportFailingWriter struct {
	bytes.Buffer
}

func (w *reportFailingWriter) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte("API smoke test")) {
		return 0, errors.New("disk full")
	}
	return w.Buffer.Write(p)
}

func TestSmoke_FailureReportWriteErrorIsLogged(t *testing.T) {
	srv := newMockBackend(t)
	var stderr reportFailingWriter
	a := New(models.NewAppBuildInfo("v1.0.0", "", ""), &bytes.Buffer{}, &stderr)
	a.environ = []string{"VITE_API_BASE_URL=" + srv.URL}

	err := a.Execute(context.Background(), []string{"smoke", "--email", "demo@example.com", "--password", "wrong"})
	assert.ErrorIs(t, err, service.ErrLoginFailed)

	assert.Contains(t, stderr.String(), "failed to write smoke failure report")
	assert.Contains(t, stderr.String(), "disk full")
}

func TestSmoke_InvalidEmail(t *testing.T) {
	srv := newMockBackend(t)
	a := newTestApp("VITE_API_BASE_URL="+srv.URL, "SMOKE_EMAIL=not-an-email", "SMOKE_PASSWORD=x")

	// SMOKE_EMAIL is rejected locally before any request is sent.
	err := a.run(t, "smoke")
	assert.ErrorIs(t, err, config.ErrInvalidSmokeConfigs)
}

func TestSmoke_MockUserToken(t *testing.T) {
	srv := newMockBackend(t)
	a := newTestApp("VITE_API_BASE_URL="+srv.URL, "VITE_MOCK_USER_TOKEN=not-a-valid-token")

	// The mock token skips login and is rejected by the backend.
	err := a.run(t, "smoke")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrListFailed)
}

func TestMockServer_InvalidAddress(t *testing.T) {
	a := newTestApp()

	err := a.run(t, "mock-server", "--address", "no-port")
	assert.ErrorIs(t, err, config.ErrInvalidMockServerConfigs)
}

func TestMockServer_ServesUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	a := newTestApp("VITE_APP_NAME=mock")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Execute(ctx, []string{"mock-server", "--address", addr}) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/version")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("mock server did not stop")
	}
}

func TestVersion(t *testing.T) {
	a := newTestApp()

	require.NoError(t, a.run(t, "version"))
	assert.Equal(t, "Build version: v1.0.0\nBuild date: 2026-01-01\nBuild commit: abc123\n", a.stdout.String())
}

func TestRootVersionFlag(t *testing.T) {
	a := newTestApp()

	require.NoError(t, a.run(t, "--version"))
	assert.Contains(t, a.stdout.String(), "v1.0.0 (commit abc123, built 2026-01-01)")
}

func TestVersion_NotAvailable(t *testing.T) {
	var stdout bytes.Buffer
	a := New(models.AppBuildInfo{}, &stdout, &bytes.Buffer{})

	require.NoError(t, a.Execute(context.Background(), []string{"version"}))
	assert.Contains(t, stdout.String(), "Build version: N/A")
}
