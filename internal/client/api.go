package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"legal-qa-bot/internal/domain"
)

// APIError carries the server's "detail" text for user-facing display.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// API is the typed HTTP client for the demo backend.
type API struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPI(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &API{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Login exchanges credentials for a bearer token.
func (a *API) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	err := a.doJSON(ctx, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &APIError{StatusCode: http.StatusOK, Detail: "Токен не получен"}
	}
	return resp.Token, nil
}

// Register creates an account.
func (a *API) Register(ctx context.Context, email, password, name string) error {
	return a.doJSON(ctx, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	}, nil)
}

// Query asks the answer service one question.
func (a *API) Query(ctx context.Context, token, query string) (domain.Answer, error) {
	var answer domain.Answer
	err := a.doJSON(ctx, http.MethodPost, "/api/query", token, map[string]string{
		"query": query,
	}, &answer)
	return answer, err
}

// FetchProfile loads the profile behind the token.
func (a *API) FetchProfile(ctx context.Context, token string) (domain.User, error) {
	var user domain.User
	err := a.doJSON(ctx, http.MethodGet, "/api/users/me", token, nil, &user)
	return user, err
}

// UpdateProfile replaces name and photo on the server.
func (a *API) UpdateProfile(ctx context.Context, token, name, photo string) (domain.User, error) {
	var user domain.User
	err := a.doJSON(ctx, http.MethodPut, "/api/users/me", token, map[string]string{
		"name":  name,
		"photo": photo,
	}, &user)
	return user, err
}

// RequestUpgrade submits a status-upgrade request.
func (a *API) RequestUpgrade(ctx context.Context, token string, requested domain.UserStatus, message string) error {
	return a.doJSON(ctx, http.MethodPost, "/api/status/upgrade", token, map[string]string{
		"requested_status": string(requested),
		"message":          message,
	}, nil)
}

func (a *API) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
