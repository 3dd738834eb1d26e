package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtiva/proposal-pipeline/internal/llm"
)

// chatServer returns a fake /chat/completions endpoint whose single choice
// carries content as the assistant message.
func chatServer(t *testing.T, content string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{APIKey: "test-key", BaseURL: baseURL}, nil)
}

func TestOrganize_Success(t *testing.T) {
	content := `{
		"client_name": "Construtora Alfa",
		"vendor_name": "Construtiva Materiais",
		"proposal_number": "PC-2025-0042",
		"date": "2025-05-10",
		"items": [
			{"description": "Cimento CP-II 50kg", "quantity": 100, "unit": "saco", "unit_price": 32.5, "total": 3250}
		],
		"subtotal": 3250,
		"total": 3250,
		"payment_terms": "30/60 dias",
		"delivery_terms": "CIF"
	}`
	var reqBody map[string]any
	srv := chatServer(t, content, &reqBody)
	defer srv.Close()

	c := newTestClient(srv.URL)
	out, raw, err := c.Organize(context.Background(), llm.OrganizeRequest{
		RawText:    "PROPOSTA COMERCIAL ...",
		ContextTag: "proposta.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "Construtora Alfa", out.ClientName)
	assert.Equal(t, "PC-2025-0042", out.ProposalNumber)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 100.0, out.Items[0].Quantity)
	assert.Equal(t, 3250.0, out.Total)
	assert.JSONEq(t, content, string(raw))

	// request shape the endpoint contract depends on
	assert.Equal(t, "gpt-4o-mini", reqBody["model"])
	rf, ok := reqBody["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", rf["type"])
}

func TestOrganize_FillsDefaults(t *testing.T) {
	srv := chatServer(t, `{"items": []}`, nil)
	defer srv.Close()

	out, _, err := newTestClient(srv.URL).Organize(context.Background(), llm.OrganizeRequest{RawText: "x"})
	require.NoError(t, err)

	assert.Equal(t, "N/A", out.ClientName)
	assert.Equal(t, "N/A", out.PaymentTerms)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
}

func TestOrganize_RequestKeyOverridesConfiguredKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `{"items": []}`}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "config-key", BaseURL: srv.URL}, nil)
	_, _, err := c.Organize(context.Background(), llm.OrganizeRequest{
		RawText: "x",
		APIKey:  "resolved-key",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer resolved-key", gotAuth)
}

func TestOrganize_MalformedJSON(t *testing.T) {
	srv := chatServer(t, "Claro! Aqui está a proposta organizada: ...", nil)
	defer srv.Close()

	_, raw, err := newTestClient(srv.URL).Organize(context.Background(), llm.OrganizeRequest{RawText: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formato inválido")
	assert.NotEmpty(t, raw, "raw content preserved for the processing log")
}

func TestOrganize_MissingItems(t *testing.T) {
	srv := chatServer(t, `{"client_name": "Construtora Alfa", "total": 10}`, nil)
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Organize(context.Background(), llm.OrganizeRequest{RawText: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required field: items")
}

func TestOrganize_SchemaViolation(t *testing.T) {
	// items present but an element misses required fields
	srv := chatServer(t, `{"items": [{"quantity": 2}]}`, nil)
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Organize(context.Background(), llm.OrganizeRequest{RawText: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestOrganize_UpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit"}}`))
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Organize(context.Background(), llm.OrganizeRequest{RawText: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai status 429")
}

func TestOrganize_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Organize(context.Background(), llm.OrganizeRequest{RawText: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestBuildUserPrompt_CapsRawText(t *testing.T) {
	long := make([]byte, 30000)
	for i := range long {
		long[i] = 'a'
	}
	p := buildUserPrompt(llm.OrganizeRequest{RawText: string(long), ContextTag: "t"})
	assert.Less(t, len(p), 25000)
}
