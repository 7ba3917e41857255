package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// StructuredJSONConfig is the JSON file representation of
// [ApplicationConfig]. Every field is optional; only fields present in the
// file override other sources.
type StructuredJSONConfig struct {
	API struct {
		BaseURL        *string `json:"base_url"`
		AdminPanelURL  *string `json:"admin_panel_url"`
		AuthServiceURL *string `json:"auth_service_url"`
	} `json:"api"`

	ThirdPartyKeys struct {
		MapsAPIKey *string `json:"maps_api_key"`
	} `json:"third_party_keys"`

	AppInfo struct {
		Name        *string `json:"name"`
		Version     *string `json:"version"`
		Environment *string `json:"environment"`
	} `json:"app_info"`

	Features struct {
		UseMockData          *bool `json:"use_mock_data"`
		UseMockDataOnFailure *bool `json:"use_mock_data_on_failure"`
		EnableSocialLogin    *bool `json:"enable_social_login"`
		BypassAuthForAdmin   *bool `json:"bypass_auth_for_admin"`
		ShowAPIErrors        *bool `json:"show_api_errors"`
		Debug                *bool `json:"debug"`
		DebugMode            *bool `json:"debug_mode"`
	} `json:"features"`

	DevelopmentOverrides struct {
		MockAdminToken *string   `json:"mock_admin_token"`
		MockUserToken  *string   `json:"mock_user_token"`
		APIDelay       *Duration `json:"api_delay"`
	} `json:"development_overrides"`
}

func parseJSON(jsonFilePath string) (map[string]string, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.layer(), nil
}

// layer flattens the fields present in the file into env-style keys.
func (c StructuredJSONConfig) layer() map[string]string {
	vars := make(map[string]string)

	putString(vars, "VITE_API_BASE_URL", c.API.BaseURL)
	putString(vars, "VITE_ADMIN_PANEL_URL", c.API.AdminPanelURL)
	putString(vars, "VITE_AUTH_SERVICE_URL", c.API.AuthServiceURL)

	putString(vars, "VITE_MAPS_API_KEY", c.ThirdPartyKeys.MapsAPIKey)

	putString(vars, "VITE_APP_NAME", c.AppInfo.Name)
	putString(vars, "VITE_APP_VERSION", c.AppInfo.Version)
	putString(vars, "VITE_APP_ENV", c.AppInfo.Environment)

	putBool(vars, "VITE_USE_MOCK_DATA", c.Features.UseMockData)
	putBool(vars, "VITE_USE_MOCK_DATA_ON_FAILURE", c.Features.UseMockDataOnFailure)
	putBool(vars, "VITE_ENABLE_SOCIAL_LOGIN", c.Features.EnableSocialLogin)
	putBool(vars, "VITE_BYPASS_AUTH_FOR_ADMIN", c.Features.BypassAuthForAdmin)
	putBool(vars, "VITE_SHOW_API_ERRORS", c.Features.ShowAPIErrors)
	putBool(vars, "VITE_DEBUG", c.Features.Debug)
	putBool(vars, "VITE_DEBUG_MODE", c.Features.DebugMode)

	putString(vars, "VITE_MOCK_ADMIN_TOKEN", c.DevelopmentOverrides.MockAdminToken)
	putString(vars, "VITE_MOCK_USER_TOKEN", c.DevelopmentOverrides.MockUserToken)
	if d := c.DevelopmentOverrides.APIDelay; d != nil {
		vars["VITE_API_DELAY"] = time.Duration(*d).String()
	}

	return vars
}

func putString(vars map[string]string, key string, v *string) {
	if v != nil {
		vars[key] = *v
	}
}

func putBool(vars map[string]string, key string, v *bool) {
	if v != nil {
		vars[key] = strconv.FormatBool(*v)
	}
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
