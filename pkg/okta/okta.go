// Package okta provides a minimal HTTP client for the Okta user management API.
package okta

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heal-clinic/heal_backend/config"
)

var (
	ErrUserAlreadyExists  = errors.New("okta: user with this login already exists")
	ErrUserNotFound       = errors.New("okta: user not found")
	ErrUnexpectedResponse = errors.New("okta: unexpected response from identity provider")
)

// Client is a lightweight Okta management API client.
type Client struct {
	orgURL     string
	apiToken   string
	groupID    string
	httpClient *http.Client
}

// User is the subset of an Okta user record the application cares about.
type User struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreateUserRequest carries the profile of a user to be created and activated.
type CreateUserRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// New creates a Client from config.
func New(cfg config.OktaConfig) *Client {
	timeout := 30 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		orgURL:     strings.TrimRight(cfg.OrgURL, "/"),
		apiToken:   cfg.APIToken,
		groupID:    cfg.GroupID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// UserExists reports whether a user with the given login (email) already
// exists in the identity provider.
func (c *Client) UserExists(ctx context.Context, email string) (bool, error) {
	res, err := c.do(ctx, http.MethodGet, "/api/v1/users/"+url.PathEscape(email), nil)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w (status=%d)", ErrUnexpectedResponse, res.StatusCode)
	}
}

// CreateUser creates an activated user and returns the provider-assigned
// subject id. A duplicate login yields ErrUserAlreadyExists.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (string, error) {
	body := map[string]any{
		"profile": map[string]string{
			"firstName": req.FirstName,
			"lastName":  req.LastName,
			"email":     req.Email,
			"login":     req.Email,
		},
		"credentials": map[string]any{
			"password": map[string]string{"value": req.Password},
		},
	}
	if c.groupID != "" {
		body["groupIds"] = []string{c.groupID}
	}

	res, err := c.do(ctx, http.MethodPost, "/api/v1/users?activate=true", body)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusBadRequest || res.StatusCode == http.StatusConflict {
		// Okta reports duplicate logins as a 400 with error code E0000001.
		var apiErr struct {
			ErrorCode    string `json:"errorCode"`
			ErrorSummary string `json:"errorSummary"`
		}
		raw, _ := io.ReadAll(res.Body)
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil &&
			strings.Contains(strings.ToLower(apiErr.ErrorSummary), "already exists") {
			return "", ErrUserAlreadyExists
		}
		return "", fmt.Errorf("%w (status=%d, body=%s)", ErrUnexpectedResponse, res.StatusCode, raw)
	}

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w (status=%d)", ErrUnexpectedResponse, res.StatusCode)
	}

	var user User
	if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if user.ID == "" {
		return "", ErrUnexpectedResponse
	}

	return user.ID, nil
}

// GetUser fetches a user record by login or subject id.
func (c *Client) GetUser(ctx context.Context, loginOrID string) (*User, error) {
	res, err := c.do(ctx, http.MethodGet, "/api/v1/users/"+url.PathEscape(loginOrID), nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w (status=%d)", ErrUnexpectedResponse, res.StatusCode)
	}

	var user User
	if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &user, nil
}

// do sends a request with the SSWS authorization header and JSON body.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.orgURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "SSWS "+c.apiToken)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return res, nil
}
