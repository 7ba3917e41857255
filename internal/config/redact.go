package config

// redactedValue replaces secrets in [ApplicationConfig.Redacted].
const redactedValue = "********"

// Redacted returns the JSON file representation of c with every field set
// and secrets masked: the maps API key and the mock tokens. The development
// overrides are omitted in production.
func (c *ApplicationConfig) Redacted() StructuredJSONConfig {
	var out StructuredJSONConfig

	out.API.BaseURL = &c.API.BaseURL
	out.API.AdminPanelURL = &c.API.AdminPanelURL
	out.API.AuthServiceURL = &c.API.AuthServiceURL

	out.ThirdPartyKeys.MapsAPIKey = mask(&c.ThirdPartyKeys.MapsAPIKey)

	out.AppInfo.Name = &c.AppInfo.Name
	out.AppInfo.Version = &c.AppInfo.Version
	out.AppInfo.Environment = &c.AppInfo.Environment

	out.Features.UseMockData = &c.Features.UseMockData
	out.Features.UseMockDataOnFailure = &c.Features.UseMockDataOnFailure
	out.Features.EnableSocialLogin = &c.Features.EnableSocialLogin
	out.Features.BypassAuthForAdmin = &c.Features.BypassAuthForAdmin
	out.Features.ShowAPIErrors = &c.Features.ShowAPIErrors
	out.Features.Debug = &c.Features.Debug
	out.Features.DebugMode = &c.Features.DebugMode

	if dev := c.Overrides(); dev != nil {
		out.DevelopmentOverrides.MockAdminToken = mask(dev.MockAdminToken())
		out.DevelopmentOverrides.MockUserToken = mask(dev.MockUserToken())
		delay := Duration(dev.APIDelay())
		out.DevelopmentOverrides.APIDelay = &delay
	}

	return out
}

// mask returns nil for nil, the empty string for empty, and the redacted
// placeholder otherwise.
func mask(s *string) *string {
	if s == nil {
		return nil
	}
	if *s == "" {
		return new(string)
	}
	v := redactedValue
	return &v
}
