package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/construtiva/proposal-pipeline/internal/common"
)

// PDFCredentials is the triple required by the PDF vendor's token endpoint.
type PDFCredentials struct {
	ClientID       string `json:"client_id"`
	ClientSecret   string `json:"client_secret"`
	OrganizationID string `json:"organization_id"`
}

// Empty reports whether the triple is unusable.
func (c PDFCredentials) Empty() bool {
	return c.ClientID == "" || c.ClientSecret == ""
}

// LLMCredentials is the single API key for the LLM vendor.
type LLMCredentials struct {
	APIKey string `json:"api_key"`
}

func (c LLMCredentials) Empty() bool { return c.APIKey == "" }

// Resolver obtains vendor credentials from the secret-store endpoint, falling
// back to statically configured values when the endpoint cannot be used. The
// fallback is a configuration-degradation path, not a transient error, so it
// is always logged at warn level. No retry happens at this layer.
type Resolver struct {
	cfg        common.CredentialsConfig
	fallback   Fallback
	httpClient *http.Client
	logger     *slog.Logger
}

// Fallback holds the statically configured credentials consulted when the
// primary path fails.
type Fallback struct {
	PDF PDFCredentials
	LLM LLMCredentials
}

func NewResolver(cfg common.CredentialsConfig, fallback Fallback, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Resolver{
		cfg:        cfg,
		fallback:   fallback,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// secretPayload is the JSON body served by the credential endpoint.
type secretPayload struct {
	ClientID       string `json:"client_id"`
	ClientSecret   string `json:"client_secret"`
	OrganizationID string `json:"organization_id"`
	APIKey         string `json:"api_key"`
}

// ResolvePDF returns the PDF vendor credential triple. The bool reports
// whether the static fallback was used; callers record that degradation in
// the processing log.
func (r *Resolver) ResolvePDF(ctx context.Context) (PDFCredentials, bool, error) {
	p, err := r.fetch(ctx, "pdf")
	if err != nil {
		r.logger.Warn("credentials.fallback",
			"vendor", "pdf", "error", err,
			"hint", "secret store unreachable; using static configuration")
		if r.fallback.PDF.Empty() {
			return PDFCredentials{}, false, fmt.Errorf("%w: no usable pdf credentials: %v", common.ErrCredentials, err)
		}
		return r.fallback.PDF, true, nil
	}
	creds := PDFCredentials{
		ClientID:       p.ClientID,
		ClientSecret:   p.ClientSecret,
		OrganizationID: p.OrganizationID,
	}
	if creds.Empty() {
		r.logger.Warn("credentials.fallback",
			"vendor", "pdf", "error", "secret store returned empty triple")
		if r.fallback.PDF.Empty() {
			return PDFCredentials{}, false, fmt.Errorf("%w: secret store returned empty pdf credentials", common.ErrCredentials)
		}
		return r.fallback.PDF, true, nil
	}
	return creds, false, nil
}

// ResolveLLM returns the LLM vendor API key, with the same fallback
// reporting as ResolvePDF.
func (r *Resolver) ResolveLLM(ctx context.Context) (LLMCredentials, bool, error) {
	p, err := r.fetch(ctx, "llm")
	if err != nil {
		r.logger.Warn("credentials.fallback",
			"vendor", "llm", "error", err,
			"hint", "secret store unreachable; using static configuration")
		if r.fallback.LLM.Empty() {
			return LLMCredentials{}, false, fmt.Errorf("%w: no usable llm credentials: %v", common.ErrCredentials, err)
		}
		return r.fallback.LLM, true, nil
	}
	if p.APIKey == "" {
		r.logger.Warn("credentials.fallback",
			"vendor", "llm", "error", "secret store returned empty api key")
		if r.fallback.LLM.Empty() {
			return LLMCredentials{}, false, fmt.Errorf("%w: secret store returned empty llm credentials", common.ErrCredentials)
		}
		return r.fallback.LLM, true, nil
	}
	return LLMCredentials{APIKey: p.APIKey}, false, nil
}

func (r *Resolver) fetch(ctx context.Context, vendor string) (*secretPayload, error) {
	if r.cfg.EndpointURL == "" {
		return nil, fmt.Errorf("credential endpoint not configured")
	}
	url := r.cfg.EndpointURL + "?vendor=" + vendor
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if r.cfg.ServiceToken != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.ServiceToken)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("credential endpoint: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			r.logger.Warn("credentials.body_close_error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("credential endpoint status %d", resp.StatusCode)
	}
	var p secretPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode credential response: %w", err)
	}
	return &p, nil
}
