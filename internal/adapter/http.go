package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-app-kit/internal/config"
	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/internal/utils"
	"github.com/MKhiriev/go-app-kit/models"
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries a per-request trace ID.
const TraceIDHeader = "X-Trace-ID"

const redactedPassword = "********"

// HTTPClientConfig configures [NewHTTPAPIAdapter].
type HTTPClientConfig struct {
	BaseURL   string
	LoginPath string
	ItemsPath string
	Timeout   time.Duration

	// Overrides supplies the artificial API delay. Nil means no delay.
	Overrides *config.DevelopmentOverrides
}

type httpAPIAdapter struct {
	client    *resty.Client
	baseURL   string
	loginPath string
	itemsPath string
	overrides *config.DevelopmentOverrides

	logger *logger.Logger
}

// NewHTTPAPIAdapter returns a resty-backed [APIAdapter].
func NewHTTPAPIAdapter(cfg HTTPClientConfig, log *logger.Logger) APIAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/api/auth/login"
	}
	if cfg.ItemsPath == "" {
		cfg.ItemsPath = "/api/items"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpAPIAdapter{
		client:    cli,
		baseURL:   baseURL,
		loginPath: cfg.LoginPath,
		itemsPath: cfg.ItemsPath,
		overrides: cfg.Overrides,
		logger:    log,
	}
}

func (h *httpAPIAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	reqCfg := h.requestConfig(http.MethodPost, h.loginPath, models.Credentials{
		Email:    creds.Email,
		Password: redactedPassword,
	})

	if err := h.delay(ctx, reqCfg); err != nil {
		return models.Token{}, err
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(h.loginPath)
	if err != nil {
		return models.Token{}, requestError("login request", reqCfg, err)
	}
	if err = mapHTTPError(resp, reqCfg); err != nil {
		return models.Token{}, err
	}

	var token models.Token
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.Token{}, responseError("decode login response", resp, reqCfg, fmt.Errorf("%w: %w", ErrDecodeResponse, err))
	}
	token.Token = strings.TrimSpace(token.Token)
	if token.Token == "" {
		return models.Token{}, responseError("login response has no token", resp, reqCfg, ErrMissingToken)
	}

	return token, nil
}

func (h *httpAPIAdapter) ListItems(ctx context.Context, token string) ([]models.Item, error) {
	reqCfg := h.requestConfig(http.MethodGet, h.itemsPath, nil)

	if err := h.delay(ctx, reqCfg); err != nil {
		return nil, err
	}

	resp, err := h.request(ctx).
		SetAuthToken(token).
		Get(h.itemsPath)
	if err != nil {
		return nil, requestError("list items request", reqCfg, err)
	}
	if err = mapHTTPError(resp, reqCfg); err != nil {
		return nil, err
	}

	var list models.ItemList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, responseError("decode listing response", resp, reqCfg, fmt.Errorf("%w: %w", ErrDecodeResponse, err))
	}
	if list.Data == nil {
		return nil, responseError("listing response has no data", resp, reqCfg, ErrMissingData)
	}

	return *list.Data, nil
}

// request starts a request tagged with a fresh trace ID.
func (h *httpAPIAdapter) request(ctx context.Context) *resty.Request {
	traceID := utils.NewTraceID()
	h.logger.Debug().Str("trace_id", traceID).Msg("sending api request")

	return h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
}

// delay sleeps for the artificial API delay, if any, or until ctx is done.
func (h *httpAPIAdapter) delay(ctx context.Context, reqCfg *models.RequestConfig) error {
	d := h.overrides.APIDelay()
	if d <= 0 {
		return nil
	}

	h.logger.Debug().Dur("delay", d).Str("url", reqCfg.URL).Msg("applying artificial api delay")

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return requestError("artificial delay interrupted", reqCfg, ctx.Err())
	}
}

func (h *httpAPIAdapter) requestConfig(method, path string, body any) *models.RequestConfig {
	cfg := &models.RequestConfig{Method: method, URL: h.baseURL + path}
	if body != nil {
		if data, err := json.Marshal(body); err == nil {
			cfg.Data = string(data)
		}
	}
	return cfg
}

func requestError(msg string, req *models.RequestConfig, err error) error {
	return &models.APIError{
		Message: msg,
		Request: req,
		Err:     fmt.Errorf("%w: %w", ErrRequestFailed, err),
	}
}

func responseError(msg string, resp *resty.Response, req *models.RequestConfig, err error) error {
	return &models.APIError{
		Message:  msg,
		Response: responseOf(resp),
		Request:  req,
		Err:      err,
	}
}
