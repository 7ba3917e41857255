package http

import (
	"net/http"
)

type versionResponse struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	BuildVersion string `json:"build_version,omitempty"`
	BuildDate    string `json:"build_date,omitempty"`
	BuildCommit  string `json:"build_commit,omitempty"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	svc := h.services.AppInfoService
	build := svc.GetBuildInfo(ctx)

	writeJSON(w, r, versionResponse{
		Name:         svc.GetAppName(ctx),
		Version:      svc.GetAppVersion(ctx),
		BuildVersion: build.BuildVersion(),
		BuildDate:    build.BuildDate(),
		BuildCommit:  build.BuildCommit(),
	}, http.StatusOK)
}
