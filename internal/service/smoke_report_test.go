package service

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-app-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWriter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	report := models.SmokeReport{
		Token: models.TokenInfo{
			IsJWT:     true,
			Subject:   "demo@example.com",
			ExpiresAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		Items: []models.Item{
			{Title: "first", IsActive: true},
			{Title: "second", IsActive: false},
			{Title: "third", IsActive: true},
		},
	}

	require.NoError(t, NewReportWriter().WriteReport(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "subject demo@example.com")
	assert.Contains(t, out, "expires 2026-01-02T03:04:05Z")
	assert.Contains(t, out, "items: 3")
	assert.Contains(t, out, "  - first (active)")
	assert.Contains(t, out, "  - second (inactive)")
	assert.Contains(t, out, "total: 2 active, 1 inactive")
}

func TestReportWriter_WriteReport_TokenKinds(t *testing.T) {
	tests := []struct {
		name   string
		report models.SmokeReport
		want   string
	}{
		{name: "mock", report: models.SmokeReport{UsedMockToken: true}, want: "token: development mock token"},
		{name: "opaque", report: models.SmokeReport{}, want: "token: opaque"},
		{name: "jwt without claims", report: models.SmokeReport{Token: models.TokenInfo{IsJWT: true}}, want: "token: jwt\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewReportWriter().WriteReport(&buf, tt.report))
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "items: 0")
			assert.Contains(t, buf.String(), "total: 0 active, 0 inactive")
		})
	}
}

func TestReportWriter_WriteFailure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportWriter().WriteFailure(&buf, errors.New("boom")))

	assert.Contains(t, buf.String(), "FAIL")
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	require.NoError(t, NewReportWriter().WriteFailure(&buf, nil))
	assert.Contains(t, buf.String(), "unknown error")
}
