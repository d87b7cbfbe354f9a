// Package bkash implements the tokenized checkout gateway against the
// bKash sandbox and production APIs.
package bkash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/config"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

const (
	defaultGrantTimeout = 10 * time.Second
	// tokenExpiryBuffer is subtracted from the advertised lifetime so a
	// token is refreshed before it can expire mid-call.
	tokenExpiryBuffer = 300 * time.Second
)

type grantResponse struct {
	IDToken   string `json:"id_token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

// TokenProvider caches the bKash grant token between calls. A failed
// grant never clears a previously cached token that is still valid.
type TokenProvider struct {
	cfg    config.BkashConfig
	client *http.Client
	logger logger.Interface

	mu        sync.Mutex
	token     string
	expiresAt time.Time

	now func() time.Time
}

func NewTokenProvider(cfg config.BkashConfig, log logger.Interface) *TokenProvider {
	timeout := defaultGrantTimeout
	if cfg.GrantTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.GrantTimeoutSeconds) * time.Second
	}
	return &TokenProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: log,
		now:    time.Now,
	}
}

// Token returns a valid grant token, requesting a fresh one only when
// the cached token has passed its buffered expiry.
func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.now().Before(p.expiresAt) {
		return p.token, nil
	}

	token, expiresIn, err := p.grant(ctx)
	if err != nil {
		return "", err
	}

	p.token = token
	p.expiresAt = p.now().Add(time.Duration(expiresIn)*time.Second - tokenExpiryBuffer)
	return p.token, nil
}

func (p *TokenProvider) grant(ctx context.Context) (string, int64, error) {
	body, err := json.Marshal(map[string]string{
		"app_key":    p.cfg.AppKey,
		"app_secret": p.cfg.AppSecret,
	})
	if err != nil {
		return "", 0, errors.NewGatewayAuthError("bKash authentication failed", err.Error())
	}

	url := p.cfg.BaseURL + "/tokenized/checkout/token/grant"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", 0, errors.NewGatewayAuthError("bKash authentication failed", err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("username", p.cfg.Username)
	req.Header.Set("password", p.cfg.Password)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Errorw("bKash token grant request failed", "error", err)
		return "", 0, errors.NewGatewayAuthError("bKash authentication failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Errorw("bKash token grant rejected", "status", resp.StatusCode)
		return "", 0, errors.NewGatewayAuthError("bKash authentication failed",
			fmt.Sprintf("grant returned status %d", resp.StatusCode))
	}

	var grant grantResponse
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return "", 0, errors.NewGatewayAuthError("bKash authentication failed", "malformed grant response")
	}
	if grant.IDToken == "" {
		return "", 0, errors.NewGatewayAuthError("bKash authentication failed", "grant response missing id_token")
	}

	return grant.IDToken, grant.ExpiresIn, nil
}
