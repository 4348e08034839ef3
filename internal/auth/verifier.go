package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
)

// Verifier confirms the validity of a caller's credential and returns the
// caller's identity. Implementations are the only place credentials are
// checked; the router never verifies them itself.
type Verifier interface {
	// Verify checks the given Authorization header value against the
	// verifier, forwarding the original Host header. It returns the
	// verified user id, or an error when verification fails for any
	// reason (network error, rejection, malformed response).
	Verify(ctx context.Context, authorization, host string) (string, error)
}

// HTTPVerifier verifies credentials against an external auth service.
type HTTPVerifier struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewHTTPVerifier creates a verifier client for the auth service at baseURL.
func NewHTTPVerifier(baseURL string, logger zerolog.Logger) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL: baseURL,
		// No client timeout: a verification call has no deadline of its
		// own and a hung verifier hangs the request.
		httpClient: &http.Client{},
		logger:     logger.With().Str("client", "auth_verifier").Logger(),
	}
}

type verifyResponse struct {
	UserID string `json:"userId"`
}

// Verify issues GET {baseURL}/auth/verify forwarding the Authorization and
// Host headers. Any failure is terminal; there is no retry.
func (v *HTTPVerifier) Verify(ctx context.Context, authorization, host string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/auth/verify", v.baseURL), nil)
	if err != nil {
		v.logger.Error().Err(err).Msg("failed to build verification request")
		return "", model.ErrAuthFailed
	}
	req.Header.Set("Authorization", authorization)
	req.Host = host

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.logger.Warn().Err(err).Msg("auth service unreachable")
		return "", model.ErrAuthFailed
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		v.logger.Warn().Int("status", resp.StatusCode).Msg("auth service rejected credentials")
		return "", model.ErrAuthFailed
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		v.logger.Warn().Err(err).Msg("malformed auth service response")
		return "", model.ErrAuthFailed
	}

	if body.UserID == "" {
		v.logger.Warn().Msg("auth service response missing userId")
		return "", model.ErrAuthFailed
	}

	return body.UserID, nil
}
