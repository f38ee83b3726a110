package coachsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the UltraCoach coaching service. It provides
// the unauthenticated operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client pointed at the given base URL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with email and password and returns a Session
// carrying the bearer token.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.postJSON(ctx, "/v1/auth/login", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, auth), nil
}

// Register creates an account and returns a Session for it.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	resp, err := c.postJSON(ctx, "/v1/auth/register", req)
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, http.StatusCreated); err != nil {
		return nil, err
	}
	return newSession(c, auth), nil
}

// NewSessionFromToken rebuilds a Session from a previously issued token.
func (c *SDKClient) NewSessionFromToken(token string, user UserInfo, expiresAt time.Time) *Session {
	return &Session{
		client:    c,
		token:     token,
		user:      user,
		expiresAt: expiresAt,
	}
}
