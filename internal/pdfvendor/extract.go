package pdfvendor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/construtiva/proposal-pipeline/internal/common"
	"github.com/construtiva/proposal-pipeline/internal/credentials"
)

// ExtractText asks the vendor for the text extracted from a previously
// uploaded asset. The asset ID is not needed after this call; extraction
// itself happens on the vendor side.
func (c *Client) ExtractText(ctx context.Context, creds credentials.PDFCredentials, token, assetID string) (string, error) {
	payload, err := json.Marshal(map[string]string{"assetID": assetID})
	if err != nil {
		return "", fmt.Errorf("marshal extract request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/assets/extract-text"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build extract request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("x-api-key", creds.ClientID)
	if creds.OrganizationID != "" {
		req.Header.Set("x-organization-id", creds.OrganizationID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: text extraction: %v", common.ErrTransport, err)
	}
	defer c.closeBody(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("%w: extract endpoint status %d: %s", common.ErrTransport, resp.StatusCode, snippet(raw))
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", fmt.Errorf("%w: decode extract response: %v: %s", common.ErrContract, err, snippet(raw))
	}
	if strings.TrimSpace(body.Text) == "" {
		return "", fmt.Errorf("%w: extract response carried no text: %s", common.ErrContract, snippet(raw))
	}

	c.logger.Info("pdfvendor.extract.ok",
		"asset_id", assetID,
		"text_len", len(body.Text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return body.Text, nil
}

// Upload uploads the document and immediately requests its extracted text,
// reusing one bearer token for both calls. The returned asset ID is kept only
// for audit purposes.
func (c *Client) Upload(ctx context.Context, creds credentials.PDFCredentials, doc Document) (assetID, text string, err error) {
	token, err := c.Token(ctx, creds)
	if err != nil {
		return "", "", err
	}
	assetID, err = c.uploadWithToken(ctx, creds, token, doc)
	if err != nil {
		return "", "", err
	}
	text, err = c.ExtractText(ctx, creds, token, assetID)
	if err != nil {
		return assetID, "", err
	}
	return assetID, text, nil
}
