// Package auth establishes the validated BetaHub session for the process.
//
// A Session is created once at startup by Initialize and stays read-only
// for the process lifetime. There is no refresh or rotation; an invalid
// token fails the process fast.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/motemen/go-loghttp"

	"github.com/betahubio/betahub-mcp/config"
	"github.com/betahubio/betahub-mcp/log"
)

// ErrorCode defines error types for authentication
type ErrorCode string

const (
	// ErrMissingToken is returned when neither the command line nor the
	// environment provides a credential
	ErrMissingToken ErrorCode = "MissingToken"
	// ErrTokenRejected is returned when auth/verify rejects the credential
	ErrTokenRejected ErrorCode = "TokenRejected"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

const (
	// PATPrefix marks a personal access token
	PATPrefix = "pat-"
	// ProjectTokenPrefix marks a token scoped to a single project
	ProjectTokenPrefix = "tkn-"
)

var httpClient = &http.Client{Transport: loghttp.DefaultTransport}

// TokenUser identifies the user a personal access token belongs to.
type TokenUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TokenProject identifies the project a project token is scoped to.
type TokenProject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TokenInfo is the auth/verify response payload.
type TokenInfo struct {
	Valid     bool          `json:"valid"`
	TokenType string        `json:"token_type"`
	User      *TokenUser    `json:"user,omitempty"`
	Project   *TokenProject `json:"project,omitempty"`
	ExpiresAt string        `json:"expires_at,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// Session is the validated credential descriptor.
type Session struct {
	Token     string
	TokenType string
	User      *TokenUser
	Project   *TokenProject
	ExpiresAt string
}

// Load resolves the API token. A token passed on the command line takes
// precedence over the environment. An absent token is reported as
// ok=false, not as an error; Initialize decides whether that is fatal.
func Load(flagToken string) (token string, ok bool) {
	if flagToken != "" {
		return flagToken, true
	}
	if v := os.Getenv(config.TokenEnvVar); v != "" {
		return v, true
	}
	return "", false
}

// FormatAuthHeader builds the Authorization header value for a token.
// Personal access tokens and structured tokens containing a dot are sent
// with the Bearer scheme; project tokens are sent verbatim.
func FormatAuthHeader(token string) string {
	if strings.HasPrefix(token, PATPrefix) || strings.Contains(token, ".") {
		return "Bearer " + token
	}
	if strings.HasPrefix(token, ProjectTokenPrefix) {
		return token
	}
	return "Bearer " + token
}

// Validate checks the token against the auth/verify endpoint. A non-2xx
// response or a 2xx payload with valid=false both reject the token.
func Validate(ctx context.Context, cfg *config.Config, token string) (*TokenInfo, error) {
	url := cfg.APIURL("auth/verify")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Authorization", FormatAuthHeader(token))
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, failure.New(ErrTokenRejected,
			failure.Message("Token validation failed: "+err.Error()),
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, failure.New(ErrTokenRejected,
			failure.Message(fmt.Sprintf("Token validation failed with status %d", resp.StatusCode)),
		)
	}

	var info TokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, failure.New(ErrTokenRejected,
			failure.Message("Token validation failed: "+err.Error()),
		)
	}

	if !info.Valid {
		msg := info.Error
		if msg == "" {
			msg = "Token validation failed"
		}
		return nil, failure.New(ErrTokenRejected, failure.Message(msg))
	}

	return &info, nil
}

// Initialize resolves and validates the credential and returns the
// process session. It fails fast when no token is present.
func Initialize(ctx context.Context, cfg *config.Config, flagToken string) (*Session, error) {
	token, ok := Load(flagToken)
	if !ok {
		return nil, failure.New(ErrMissingToken,
			failure.Message(config.TokenEnvVar+" environment variable is required. "+
				"Set it to your BetaHub Personal Access Token (pat-xxxxx) or Project Auth Token (tkn-xxxxx)"),
		)
	}

	log.Info("Validating BetaHub token")

	info, err := Validate(ctx, cfg, token)
	if err != nil {
		return nil, err
	}

	log.Info("Token validated successfully", "token_type", info.TokenType)
	if info.User != nil {
		log.Info("Authenticated user", "name", info.User.Name, "email", info.User.Email)
	}
	if info.Project != nil {
		log.Info("Token project", "project", info.Project.Name)
	}
	if info.ExpiresAt != "" {
		log.Info("Token expiry", "expires_at", info.ExpiresAt)
	}

	return &Session{
		Token:     token,
		TokenType: info.TokenType,
		User:      info.User,
		Project:   info.Project,
		ExpiresAt: info.ExpiresAt,
	}, nil
}
