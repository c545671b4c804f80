package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// IdentityProvider is the hosted account service behind the login form.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*ProviderUser, error)
	SignUp(ctx context.Context, email, password string) (*ProviderUser, error)
	ResendConfirmation(ctx context.Context, email string) error
}

type ProviderUser struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
}

// ProviderError is a non-2xx reply from the identity provider.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider returned %d: %s", e.Status, e.Message)
}

// GoTrueClient talks to a GoTrue-compatible auth API (as hosted by Supabase).
type GoTrueClient struct {
	baseURL     string
	apiKey      string
	redirectURL string
	httpClient  *http.Client
}

func NewGoTrueClient(baseURL, apiKey, redirectURL string, timeout time.Duration) *GoTrueClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoTrueClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		redirectURL: redirectURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	User        ProviderUser `json:"user"`
}

func (c *GoTrueClient) SignIn(ctx context.Context, email, password string) (*ProviderUser, error) {
	var resp tokenResponse
	if err := c.post(ctx, "/token?grant_type=password", credentials{email, password}, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *GoTrueClient) SignUp(ctx context.Context, email, password string) (*ProviderUser, error) {
	path := "/signup"
	if c.redirectURL != "" {
		path += "?redirect_to=" + url.QueryEscape(c.redirectURL)
	}
	var user ProviderUser
	if err := c.post(ctx, path, credentials{email, password}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *GoTrueClient) ResendConfirmation(ctx context.Context, email string) error {
	path := "/resend"
	if c.redirectURL != "" {
		path += "?redirect_to=" + url.QueryEscape(c.redirectURL)
	}
	body := map[string]string{"type": "signup", "email": email}
	return c.post(ctx, path, body, nil)
}

func (c *GoTrueClient) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach identity provider: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read identity provider response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode identity provider response: %w", err)
	}
	return nil
}

// errorMessage picks the human-readable text out of the error shapes GoTrue
// has used across versions.
func errorMessage(data []byte) string {
	var body struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		for _, s := range []string{body.Msg, body.Message, body.ErrorDescription, body.Error} {
			if s != "" {
				return s
			}
		}
	}
	return strings.TrimSpace(string(data))
}
