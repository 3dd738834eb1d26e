package pdfvendor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/construtiva/proposal-pipeline/internal/common"
	"github.com/construtiva/proposal-pipeline/internal/credentials"
)

// snippetLen caps how much of a raw vendor body is carried inside contract
// errors. Enough to diagnose schema drift without dumping whole responses.
const snippetLen = 300

// Document is the transient in-memory upload unit. It is discarded once the
// vendor hands back an asset ID.
type Document struct {
	FileName string
	MIMEType string
	Content  []byte
}

// Config for the PDF vendor client.
type Config struct {
	BaseURL string        // e.g. https://api.pdf.co
	Timeout time.Duration // http client timeout; vendor default when zero
}

// Client talks to the PDF vendor's token and asset endpoints. It holds no
// per-upload state; each call carries the resolved credential triple.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token exchanges the credential triple for a bearer access token via the
// client-credentials grant. A non-2xx status or unparsable body is terminal
// for the upload stage; there is no retry.
func (c *Client) Token(ctx context.Context, creds credentials.PDFCredentials) (string, error) {
	form := url.Values{}
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	form.Set("grant_type", "client_credentials")
	form.Set("scope", "asset.create")

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/oauth/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token exchange: %v", common.ErrTransport, err)
	}
	defer c.closeBody(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("%w: token endpoint status %d: %s", common.ErrTransport, resp.StatusCode, snippet(raw))
	}

	var tok tokenResponse
	if err := json.Unmarshal(raw, &tok); err != nil {
		return "", fmt.Errorf("%w: decode token response: %v: %s", common.ErrContract, err, snippet(raw))
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: token response missing access_token: %s", common.ErrContract, snippet(raw))
	}

	c.logger.Info("pdfvendor.token.ok",
		"expires_in", tok.ExpiresIn,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return tok.AccessToken, nil
}

// UploadAsset exchanges credentials for a token, then POSTs the document as
// multipart/form-data to the asset endpoint and returns the vendor's asset ID.
// The multipart envelope is built manually so the framing (boundary delimiter,
// header block, trailing delimiter) matches what the vendor expects regardless
// of the calling surface.
func (c *Client) UploadAsset(ctx context.Context, creds credentials.PDFCredentials, doc Document) (string, error) {
	token, err := c.Token(ctx, creds)
	if err != nil {
		return "", err
	}
	return c.uploadWithToken(ctx, creds, token, doc)
}

func (c *Client) uploadWithToken(ctx context.Context, creds credentials.PDFCredentials, token string, doc Document) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", doc.FileName)
	if err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(doc.Content); err != nil {
		return "", fmt.Errorf("write multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/assets"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("build asset request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("x-api-key", creds.ClientID)
	if creds.OrganizationID != "" {
		req.Header.Set("x-organization-id", creds.OrganizationID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: asset upload: %v", common.ErrTransport, err)
	}
	defer c.closeBody(resp.Body)

	// Read as text first, then parse; a broken body should surface its raw
	// snippet rather than a bare decode error.
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("%w: asset endpoint status %d: %s", common.ErrTransport, resp.StatusCode, snippet(raw))
	}

	var body struct {
		AssetID string `json:"assetID"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", fmt.Errorf("%w: decode asset response: %v: %s", common.ErrContract, err, snippet(raw))
	}
	if body.AssetID == "" {
		return "", fmt.Errorf("%w: asset response missing assetID: %s", common.ErrContract, snippet(raw))
	}

	c.logger.Info("pdfvendor.upload.ok",
		"file_name", doc.FileName,
		"bytes", len(doc.Content),
		"asset_id", body.AssetID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return body.AssetID, nil
}

func (c *Client) closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		c.logger.Warn("pdfvendor.body_close_error", "error", err)
	}
}

func snippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > snippetLen {
		return s[:snippetLen] + "..."
	}
	return s
}
