package auth0

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// passwordConnection is the identity provider's username/password
// connection; social connections manage their own credentials.
const passwordConnection = "Username-Password-Authentication"

type Config struct {
	// Domain is the Auth0 tenant domain, with or without scheme.
	Domain string `json:"domain"`

	// ClientID identifies this application to the tenant.
	ClientID string `json:"clientId"`
}

type Client struct {
	// baseURL is the tenant endpoint, e.g. https://tenant.auth0.com.
	baseURL string

	// clientID is sent with every change-password request.
	clientID string

	// hc is the http client.
	hc *http.Client
}

// New creates an Auth0 client for the configured tenant.
func New(c *Config) (*Client, error) {
	if c == nil || c.Domain == "" {
		return nil, errors.New("auth0: domain is required")
	}

	domain := strings.TrimPrefix(strings.TrimPrefix(c.Domain, "https://"), "http://")
	return &Client{
		baseURL:  "https://" + strings.TrimRight(domain, "/"),
		clientID: c.ClientID,

		// set http client with timeout.
		hc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

type changePasswordRequest struct {
	ClientID   string `json:"client_id"`
	Email      string `json:"email"`
	Connection string `json:"connection"`
}

// SendChangePasswordEmail asks the tenant to deliver a password-reset
// email for a username/password account. A rejection's response body is
// returned verbatim so the caller can surface it.
func (c *Client) SendChangePasswordEmail(ctx context.Context, email string) error {
	if email == "" {
		return errors.New("no email found on account")
	}

	payload, err := json.Marshal(changePasswordRequest{
		ClientID:   c.clientID,
		Email:      email,
		Connection: passwordConnection,
	})
	if err != nil {
		return fmt.Errorf("encoding change password request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/dbconnections/change_password", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building change password request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("sending change password request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = "failed to send password reset email"
		}
		return errors.New(msg)
	}
	return nil
}
