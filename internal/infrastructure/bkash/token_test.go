package bkash

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/config"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

func testBkashConfig(baseURL string) config.BkashConfig {
	return config.BkashConfig{
		BaseURL:   baseURL,
		AppKey:    "test-app-key",
		AppSecret: "test-app-secret",
		Username:  "test-user",
		Password:  "test-pass",
	}
}

func TestTokenGrantAndCache(t *testing.T) {
	grantCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tokenized/checkout/token/grant", r.URL.Path)
		require.Equal(t, "test-user", r.Header.Get("username"))
		require.Equal(t, "test-pass", r.Header.Get("password"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "test-app-key", body["app_key"])
		require.Equal(t, "test-app-secret", body["app_secret"])

		grantCalls++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id_token":   "token-1",
			"token_type": "Bearer",
			"expires_in": 3600,
		})
	}))
	defer srv.Close()

	provider := NewTokenProvider(testBkashConfig(srv.URL), logger.NewNop())
	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	provider.now = func() time.Time { return current }

	token, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, 1, grantCalls)

	// within the buffered lifetime: cached token, no second grant
	current = current.Add(50 * time.Minute)
	token, err = provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, 1, grantCalls)

	// past expires_in - 300s: exactly one refresh
	current = current.Add(10 * time.Minute)
	_, err = provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, grantCalls)
}

func TestTokenGrantMissingIDToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"expires_in": 3600})
	}))
	defer srv.Close()

	provider := NewTokenProvider(testBkashConfig(srv.URL), logger.NewNop())
	_, err := provider.Token(context.Background())
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeGatewayAuth, appErr.Type)
}

func TestTokenGrantRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	provider := NewTokenProvider(testBkashConfig(srv.URL), logger.NewNop())
	_, err := provider.Token(context.Background())
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeGatewayAuth, appErr.Type)
}

func TestTokenGrantFailureKeepsValidCache(t *testing.T) {
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id_token":   "token-1",
			"expires_in": 3600,
		})
	}))
	defer srv.Close()

	provider := NewTokenProvider(testBkashConfig(srv.URL), logger.NewNop())
	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	provider.now = func() time.Time { return current }

	_, err := provider.Token(context.Background())
	require.NoError(t, err)

	// cached token still valid: grant failures are not even attempted
	fail = true
	token, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	// expired cache with failing grant surfaces the auth error
	current = current.Add(2 * time.Hour)
	_, err = provider.Token(context.Background())
	require.Error(t, err)
}
