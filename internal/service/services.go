package service

import (
	"github.com/MKhiriev/go-app-kit/internal/config"
	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/models"
)

// Services groups the services behind the mock server.
type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(app *config.ApplicationConfig, cfg config.MockServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(app.AppInfo, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthValidationService(NewAuthService(cfg, logger)),
		ItemService:    NewItemService(nil, logger),
		AppInfoService: appInfo,
	}, nil
}
