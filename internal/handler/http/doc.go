// Package http implements the mock backend served by "appkit mock-server".
//
// It exposes the same login and listing endpoints the smoke test calls, so
// the client stack can be exercised without a real backend. Request tracing,
// access logging, request metrics, response compression and bearer
// authentication are handled as chi middleware before requests reach the
// service layer. Metrics are served at [MetricsPath].
package http
