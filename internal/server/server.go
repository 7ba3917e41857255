package server

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-app-kit/internal/logger"
)

// NewServer returns a Server serving handler on address.
func NewServer(handler http.Handler, address string, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandler
	}

	logger.Info().Msg("creating new server...")

	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}, nil
}
