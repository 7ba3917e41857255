package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// setFlag is the generic "--set KEY=VALUE" flag name.
const setFlag = "set"

// flagKeys maps command-line flag names to the variables they override.
var flagKeys = map[string]string{
	"api-base-url":     "VITE_API_BASE_URL",
	"admin-panel-url":  "VITE_ADMIN_PANEL_URL",
	"auth-service-url": "VITE_AUTH_SERVICE_URL",
	"app-env":          "VITE_APP_ENV",
	"debug":            "VITE_DEBUG",
	"api-delay":        "VITE_API_DELAY",

	"email":      "SMOKE_EMAIL",
	"password":   "SMOKE_PASSWORD",
	"login-path": "SMOKE_LOGIN_PATH",
	"items-path": "SMOKE_ITEMS_PATH",
	"timeout":    "SMOKE_TIMEOUT",

	"address":  "MOCK_SERVER_ADDRESS",
	"sign-key": "MOCK_SERVER_SIGN_KEY",
}

// BindFlags registers the application configuration flags on fs.
//
// Flags:
//
//	--api-base-url      backend API base URL
//	--admin-panel-url   admin panel URL
//	--auth-service-url  auth service URL
//	--app-env           application environment (development, production, ...)
//	--debug             enable debug logging
//	--api-delay         artificial API latency (e.g. "250ms"), development only
//	--set KEY=VALUE     override any variable, may be repeated
func BindFlags(fs *pflag.FlagSet) {
	fs.String("api-base-url", "", "Backend API base URL")
	fs.String("admin-panel-url", "", "Admin panel URL")
	fs.String("auth-service-url", "", "Auth service URL")
	fs.String("app-env", "", "Application environment")
	fs.Bool("debug", false, "Enable debug logging")
	fs.Duration("api-delay", 0, "Artificial API latency (development only)")
	fs.StringToString(setFlag, nil, "Override a configuration variable, KEY=VALUE")
}

// BindSmokeFlags registers the smoke-test flags on fs.
func BindSmokeFlags(fs *pflag.FlagSet) {
	fs.String("email", "", "Login email")
	fs.String("password", "", "Login password")
	fs.String("login-path", "", "Login endpoint path")
	fs.String("items-path", "", "Listing endpoint path")
	fs.Duration("timeout", 15*time.Second, "Request timeout")
}

// BindMockServerFlags registers the mock server flags on fs.
func BindMockServerFlags(fs *pflag.FlagSet) {
	fs.String("address", "", "Listen address host:port")
	fs.String("sign-key", "", "Token signing key")
}

// flagLayer returns the variables set by flags the user actually passed.
// Flags left at their defaults do not override other sources.
func flagLayer(fs *pflag.FlagSet) (map[string]string, error) {
	vars := make(map[string]string)

	fs.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			vars[key] = f.Value.String()
		}
	})

	if f := fs.Lookup(setFlag); f != nil && f.Changed {
		extra, err := fs.GetStringToString(setFlag)
		if err != nil {
			return nil, fmt.Errorf("error parsing --%s: %w", setFlag, err)
		}
		for k, v := range extra {
			vars[k] = v
		}
	}

	return vars, nil
}
