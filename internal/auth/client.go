package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cookit/internal/domain"
)

const DefaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// APIError is an error reported by the auth provider, such as
// EMAIL_NOT_FOUND or INVALID_ID_TOKEN.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("auth provider: %d %s", e.Status, e.Message)
}

// Reason is the message code without the optional " : detail" suffix.
func (e *APIError) Reason() string {
	reason, _, _ := strings.Cut(e.Message, " ")
	return reason
}

// Client talks to a Firebase Auth compatible Identity Toolkit endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logger.With("component", "auth"),
	}
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrNoEmailOrPassword
	}

	var resp tokenResponse
	err := c.call(ctx, "accounts:signUp", passwordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", mapError(err, domain.ErrSignInFailed))
	}

	return newSession(resp, domain.ProviderEmail), nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrNoEmailOrPassword
	}

	var resp tokenResponse
	err := c.call(ctx, "accounts:signInWithPassword", passwordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", mapError(err, domain.ErrSignInFailed))
	}

	return newSession(resp, domain.ProviderEmail), nil
}

func (c *Client) SignInAnonymously(ctx context.Context) (*domain.Session, error) {
	var resp tokenResponse
	if err := c.call(ctx, "accounts:signUp", passwordRequest{ReturnSecureToken: true}, &resp); err != nil {
		return nil, fmt.Errorf("sign in anonymously: %w", mapError(err, domain.ErrSignInFailed))
	}

	return newSession(resp, ""), nil
}

func (c *Client) SignInWithGoogle(ctx context.Context, googleIDToken string) (*domain.Session, error) {
	return c.signInWithIdp(ctx, "", domain.ProviderGoogle, googleIDToken, "")
}

func (c *Client) SignInWithApple(ctx context.Context, appleIDToken, nonce string) (*domain.Session, error) {
	return c.signInWithIdp(ctx, "", domain.ProviderApple, appleIDToken, nonce)
}

// LinkEmail attaches email and password credentials to the user of idToken,
// typically an anonymous one.
func (c *Client) LinkEmail(ctx context.Context, idToken, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrNoEmailOrPassword
	}

	var resp tokenResponse
	err := c.call(ctx, "accounts:update", passwordRequest{
		IDToken:           idToken,
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("link email: %w", mapError(err, domain.ErrSignInFailed))
	}

	return newSession(resp, domain.ProviderEmail), nil
}

func (c *Client) LinkGoogle(ctx context.Context, idToken, googleIDToken string) (*domain.Session, error) {
	return c.signInWithIdp(ctx, idToken, domain.ProviderGoogle, googleIDToken, "")
}

func (c *Client) LinkApple(ctx context.Context, idToken, appleIDToken, nonce string) (*domain.Session, error) {
	return c.signInWithIdp(ctx, idToken, domain.ProviderApple, appleIDToken, nonce)
}

// signInWithIdp signs in with a provider credential, or links it to the
// user of idToken when idToken is set.
func (c *Client) signInWithIdp(ctx context.Context, idToken string, provider domain.AuthProvider, credential, nonce string) (*domain.Session, error) {
	failure := domain.ErrGoogleSignInFailed
	if provider == domain.ProviderApple {
		failure = domain.ErrAppleSignInFailed
	}
	if credential == "" {
		return nil, fmt.Errorf("%w: missing id token", failure)
	}

	body := url.Values{}
	body.Set("id_token", credential)
	body.Set("providerId", string(provider))
	if nonce != "" {
		body.Set("nonce", nonce)
	}

	var resp tokenResponse
	err := c.call(ctx, "accounts:signInWithIdp", idpRequest{
		PostBody:            body.Encode(),
		RequestURI:          "http://localhost",
		IDToken:             idToken,
		ReturnSecureToken:   true,
		ReturnIdpCredential: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("sign in with %s: %w", provider, mapError(err, failure))
	}

	return newSession(resp, provider), nil
}

// Lookup resolves an ID token to the user it was issued for.
func (c *Client) Lookup(ctx context.Context, idToken string) (*domain.AuthUser, error) {
	if idToken == "" {
		return nil, domain.ErrUnauthenticated
	}

	var resp lookupResponse
	if err := c.call(ctx, "accounts:lookup", tokenRequest{IDToken: idToken}, &resp); err != nil {
		return nil, fmt.Errorf("lookup user: %w", mapError(err, domain.ErrUnauthenticated))
	}
	if len(resp.Users) == 0 {
		return nil, fmt.Errorf("lookup user: %w", domain.ErrUnauthenticated)
	}

	u := resp.Users[0]
	user := &domain.AuthUser{
		UID:       u.LocalID,
		Email:     u.Email,
		Providers: providers(u.ProviderUserInfo, ""),
	}
	user.IsAnonymous = len(user.Providers) == 0
	return user, nil
}

func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrNoEmailOrPassword
	}

	err := c.call(ctx, "accounts:sendOobCode", oobRequest{
		RequestType: "PASSWORD_RESET",
		Email:       email,
	}, nil)
	if err != nil {
		return fmt.Errorf("send password reset: %w", mapError(err, domain.ErrSignInFailed))
	}
	return nil
}

func (c *Client) UpdateEmail(ctx context.Context, idToken, email string) (*domain.Session, error) {
	if email == "" {
		return nil, domain.ErrNoEmailOrPassword
	}
	return c.update(ctx, passwordRequest{IDToken: idToken, Email: email, ReturnSecureToken: true})
}

func (c *Client) UpdatePassword(ctx context.Context, idToken, password string) (*domain.Session, error) {
	if password == "" {
		return nil, domain.ErrNoEmailOrPassword
	}
	return c.update(ctx, passwordRequest{IDToken: idToken, Password: password, ReturnSecureToken: true})
}

func (c *Client) update(ctx context.Context, req passwordRequest) (*domain.Session, error) {
	var resp tokenResponse
	if err := c.call(ctx, "accounts:update", req, &resp); err != nil {
		return nil, fmt.Errorf("update account: %w", mapError(err, domain.ErrUnauthenticated))
	}
	return newSession(resp, ""), nil
}

func (c *Client) Delete(ctx context.Context, idToken string) error {
	if err := c.call(ctx, "accounts:delete", tokenRequest{IDToken: idToken}, nil); err != nil {
		return fmt.Errorf("delete account: %w", mapError(err, domain.ErrUnauthenticated))
	}
	return nil
}

func (c *Client) call(ctx context.Context, endpoint string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	u := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error.Message == "" {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		c.logger.Debug("auth request rejected",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"reason", e.Error.Message,
		)
		return &APIError{Status: resp.StatusCode, Message: e.Error.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w: %w", domain.ErrNoData, err)
	}
	return nil
}

// mapError puts rejections by the provider into the domain taxonomy. Transport
// failures are returned as they are.
func mapError(err error, failure error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.Reason() {
	case "INVALID_ID_TOKEN", "TOKEN_EXPIRED", "USER_DISABLED", "CREDENTIAL_TOO_OLD_LOGIN_AGAIN":
		return fmt.Errorf("%w: %w", domain.ErrUnauthenticated, apiErr)
	case "MISSING_EMAIL", "MISSING_PASSWORD", "INVALID_EMAIL":
		return fmt.Errorf("%w: %w", domain.ErrNoEmailOrPassword, apiErr)
	}
	if apiErr.Status >= 500 {
		return apiErr
	}
	return fmt.Errorf("%w: %w", failure, apiErr)
}

func newSession(resp tokenResponse, provider domain.AuthProvider) *domain.Session {
	if provider == "" {
		provider = domain.AuthProvider(resp.ProviderID)
	}
	user := domain.AuthUser{
		UID:       resp.LocalID,
		Email:     resp.Email,
		Providers: providers(resp.ProviderUserInfo, provider),
	}
	user.IsAnonymous = len(user.Providers) == 0

	expiresIn, _ := strconv.Atoi(resp.ExpiresIn)

	return &domain.Session{
		User:         user,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    expiresIn,
	}
}

// providers lists the linked providers, adding fallback when the response
// did not include it.
func providers(infos []providerInfo, fallback domain.AuthProvider) []domain.AuthProvider {
	out := make([]domain.AuthProvider, 0, len(infos)+1)
	seen := make(map[domain.AuthProvider]bool)
	for _, info := range infos {
		p := domain.AuthProvider(info.ProviderID)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	if fallback != "" && !seen[fallback] {
		out = append(out, fallback)
	}
	return out
}
