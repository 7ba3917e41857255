package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-app-kit/models"
)

// SmokeService runs the login-then-list smoke test against the backend.
type SmokeService interface {
	// Run performs the smoke test once and returns what it observed.
	// Failures are dumped to the diagnostic stream before being returned.
	Run(ctx context.Context) (models.SmokeReport, error)
}

// AuthService issues and verifies the tokens of the mock server.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (string, error)
}

// ItemService serves the listing of the mock server.
type ItemService interface {
	ListItems(ctx context.Context, subject string) ([]models.Item, error)
}

// AppInfoService describes the running application.
type AppInfoService interface {
	GetAppName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ReportWriter renders smoke test outcomes.
type ReportWriter interface {
	WriteReport(w io.Writer, report models.SmokeReport) error
	WriteFailure(w io.Writer, err error) error
}
