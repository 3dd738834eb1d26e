package pdfvendor

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtiva/proposal-pipeline/internal/common"
	"github.com/construtiva/proposal-pipeline/internal/credentials"
)

var testCreds = credentials.PDFCredentials{
	ClientID:       "client-id",
	ClientSecret:   "client-secret",
	OrganizationID: "org-42",
}

func testDoc() Document {
	return Document{
		FileName: "proposta.pdf",
		MIMEType: "application/pdf",
		Content:  bytes.Repeat([]byte("%PDF"), 2560), // ~10 KB
	}
}

func TestUploadAsset_Success(t *testing.T) {
	var tokenCalls, assetCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			tokenCalls.Add(1)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.PostFormValue("grant_type"))
			assert.Equal(t, "client-id", r.PostFormValue("client_id"))
			_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer","expires_in":3600}`))
		case "/v1/assets":
			assetCalls.Add(1)
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			assert.Equal(t, "client-id", r.Header.Get("x-api-key"))
			assert.Equal(t, "org-42", r.Header.Get("x-organization-id"))
			assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))

			require.NoError(t, r.ParseMultipartForm(1<<20))
			f, fh, err := r.FormFile("file")
			require.NoError(t, err)
			defer f.Close()
			assert.Equal(t, "proposta.pdf", fh.Filename)

			_, _ = w.Write([]byte(`{"assetID":"asset-abc123"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	assetID, err := c.UploadAsset(context.Background(), testCreds, testDoc())
	require.NoError(t, err)

	assert.Equal(t, "asset-abc123", assetID)
	assert.Equal(t, int32(1), tokenCalls.Load())
	assert.Equal(t, int32(1), assetCalls.Load())
}

func TestUploadAsset_TokenFailureIsTerminal(t *testing.T) {
	var assetCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
			return
		}
		assetCalls.Add(1)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.UploadAsset(context.Background(), testCreds, testDoc())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTransport)
	assert.Equal(t, int32(0), assetCalls.Load(), "no asset request after token failure")
}

func TestUploadAsset_ContractErrors(t *testing.T) {
	tests := []struct {
		name      string
		assetBody string
		wantIn    string
	}{
		{
			name:      "missing assetID field",
			assetBody: `{"status":"ok"}`,
			wantIn:    "missing assetID",
		},
		{
			name:      "unparsable body carries snippet",
			assetBody: `<html>gateway error</html>`,
			wantIn:    "<html>gateway error</html>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/oauth/token" {
					_, _ = w.Write([]byte(`{"access_token":"tok-1"}`))
					return
				}
				_, _ = w.Write([]byte(tt.assetBody))
			}))
			defer srv.Close()

			c := NewClient(Config{BaseURL: srv.URL}, nil)
			_, err := c.UploadAsset(context.Background(), testCreds, testDoc())
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrContract)
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}

func TestSnippet_Truncates(t *testing.T) {
	long := strings.Repeat("x", snippetLen*2)
	got := snippet([]byte(long))
	assert.Len(t, got, snippetLen+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestUpload_ChainsExtraction(t *testing.T) {
	var tokenCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			tokenCalls.Add(1)
			_, _ = w.Write([]byte(`{"access_token":"tok-1"}`))
		case "/v1/assets":
			_, _ = w.Write([]byte(`{"assetID":"asset-1"}`))
		case "/v1/assets/extract-text":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"text":"PROPOSTA COMERCIAL 42"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	assetID, text, err := c.Upload(context.Background(), testCreds, testDoc())
	require.NoError(t, err)
	assert.Equal(t, "asset-1", assetID)
	assert.Equal(t, "PROPOSTA COMERCIAL 42", text)
	assert.Equal(t, int32(1), tokenCalls.Load(), "token reused across upload and extraction")
}

func TestExtractText_EmptyTextIsContractError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":"  "}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.ExtractText(context.Background(), testCreds, "tok", "asset-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrContract)
}
