package credentials

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtiva/proposal-pipeline/internal/common"
)

func testFallback() Fallback {
	return Fallback{
		PDF: PDFCredentials{ClientID: "env-id", ClientSecret: "env-secret", OrganizationID: "env-org"},
		LLM: LLMCredentials{APIKey: "env-key"},
	}
}

func TestResolvePDF_PrimaryPath(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"client_id":"store-id","client_secret":"store-secret","organization_id":"store-org"}`))
	}))
	defer srv.Close()

	r := NewResolver(common.CredentialsConfig{
		EndpointURL:  srv.URL,
		ServiceToken: "svc-token",
		Timeout:      time.Second,
	}, testFallback(), nil)

	creds, usedFallback, err := r.ResolvePDF(context.Background())
	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, "Bearer svc-token", gotAuth)
	assert.Equal(t, PDFCredentials{
		ClientID: "store-id", ClientSecret: "store-secret", OrganizationID: "store-org",
	}, creds)
}

func TestResolvePDF_FallbackPaths(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "unparsable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "empty triple",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			r := NewResolver(common.CredentialsConfig{EndpointURL: srv.URL, Timeout: time.Second},
				testFallback(), nil)
			creds, usedFallback, err := r.ResolvePDF(context.Background())
			require.NoError(t, err)
			assert.True(t, usedFallback)
			assert.Equal(t, "env-id", creds.ClientID)
		})
	}
}

func TestResolvePDF_NoEndpointUsesFallback(t *testing.T) {
	r := NewResolver(common.CredentialsConfig{}, testFallback(), nil)
	creds, usedFallback, err := r.ResolvePDF(context.Background())
	require.NoError(t, err)
	assert.True(t, usedFallback)
	assert.Equal(t, "env-id", creds.ClientID)
}

func TestResolvePDF_NothingUsable(t *testing.T) {
	r := NewResolver(common.CredentialsConfig{}, Fallback{}, nil)
	_, _, err := r.ResolvePDF(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrCredentials)
}

func TestResolveLLM(t *testing.T) {
	t.Run("primary path", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "llm", r.URL.Query().Get("vendor"))
			_, _ = w.Write([]byte(`{"api_key":"store-key"}`))
		}))
		defer srv.Close()

		r := NewResolver(common.CredentialsConfig{EndpointURL: srv.URL, Timeout: time.Second},
			testFallback(), nil)
		creds, usedFallback, err := r.ResolveLLM(context.Background())
		require.NoError(t, err)
		assert.False(t, usedFallback)
		assert.Equal(t, "store-key", creds.APIKey)
	})

	t.Run("fallback on empty key", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		r := NewResolver(common.CredentialsConfig{EndpointURL: srv.URL, Timeout: time.Second},
			testFallback(), nil)
		creds, usedFallback, err := r.ResolveLLM(context.Background())
		require.NoError(t, err)
		assert.True(t, usedFallback)
		assert.Equal(t, "env-key", creds.APIKey)
	})
}
