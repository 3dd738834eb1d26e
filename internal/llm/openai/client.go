package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/construtiva/proposal-pipeline/internal/llm"
)

// Organize implements llm.Organizer using text-only chat/completions. The
// model is asked for a JSON object matching BuildProposalJSONSchema; a parse
// failure is terminal for the stage since the model's contract violation is
// not locally repairable.
func (c *Client) Organize(ctx context.Context, req llm.OrganizeRequest) (llm.OrganizedData, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.organize.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.RawText),
		"context_tag", req.ContextTag,
	)

	schema := llm.BuildProposalJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"max_tokens":      c.cfg.MaxTokens,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt()},
			{"role": "user", "content": buildUserPrompt(req) + "\n\nSchema JSON:\n" + mustJSON(schema)},
		},
	}

	key := c.cfg.APIKey
	if req.APIKey != "" {
		key = req.APIKey
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body, key)
	if httpErr != nil {
		c.logger.Error("llm.organize.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.OrganizedData{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.organize.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.OrganizedData{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.organize.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.OrganizedData{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	var probe map[string]any
	if err := json.Unmarshal(rawContent, &probe); err != nil {
		c.logger.Error("llm.organize.invalid_json",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.OrganizedData{}, rawContent, fmt.Errorf("resposta do modelo em formato inválido: %w", err)
	}
	if _, ok := probe["items"]; !ok {
		c.logger.Error("llm.organize.missing_items",
			"req_id", rid, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.OrganizedData{}, rawContent, fmt.Errorf("organized data missing required field: items")
	}
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		c.logger.Error("llm.organize.schema_validation_failed",
			"req_id", rid, "error", err, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.OrganizedData{}, rawContent, fmt.Errorf("schema validation failed: %w", err)
	}

	var out llm.OrganizedData
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.logger.Error("llm.organize.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.OrganizedData{}, rawContent, fmt.Errorf("resposta do modelo em formato inválido: %w", err)
	}
	llm.ApplyDefaults(&out)

	c.logger.Info("llm.organize.ok",
		"req_id", rid,
		"client", out.ClientName,
		"items", len(out.Items),
		"total", out.Total,
		"confidence", llm.Confidence(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any, key string) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func buildSystemPrompt() string {
	parts := []string{
		"Você é um organizador de propostas comerciais de materiais de construção.",
		"Receba o texto bruto extraído de um PDF e devolva SOMENTE um JSON que siga o schema fornecido.",
		"Use datas ISO-8601 (YYYY-MM-DD).",
		"Valores numéricos nunca devem ser nulos; use 0 quando não houver valor.",
		"Campos de texto desconhecidos devem receber \"N/A\".",
		"Cada item deve ter description, quantity, unit, unit_price e total (quantity x unit_price).",
		"Não invente itens que não estejam no texto.",
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(req llm.OrganizeRequest) string {
	var b strings.Builder
	b.WriteString("Contexto: ")
	b.WriteString(req.ContextTag)
	b.WriteString("\n\nTexto extraído do documento:\n")
	// cap the raw text so pathological extractions do not blow the token budget
	const maxText = 24000
	if len(req.RawText) > maxText {
		b.WriteString(req.RawText[:maxText])
	} else {
		b.WriteString(req.RawText)
	}
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
