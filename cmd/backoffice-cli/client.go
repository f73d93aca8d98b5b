package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/samira-travel/backoffice/jamaah"
)

// apiClient talks to the back-office HTTP API with a bearer token.
type apiClient struct {
	baseUrl string
	token   string
	http    *http.Client
}

func newApiClient(baseUrl string) *apiClient {
	return &apiClient{
		baseUrl: baseUrl,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type staffUser struct {
	UUID  string `json:"uuid"`
	Email string `json:"email"`
	Nama  string `json:"nama"`
}

type jsonEnvelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	ErrCode string          `json:"code"`
	ErrMsg  string          `json:"message"`
}

func (c *apiClient) call(method, path string, body any, out any) error {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, c.baseUrl+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var envelope jsonEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if envelope.Status != "success" {
		if envelope.ErrMsg != "" {
			return fmt.Errorf("%s", envelope.ErrMsg)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

func (c *apiClient) login(email, password string) (staffUser, error) {
	var data struct {
		Token string    `json:"token"`
		User  staffUser `json:"user"`
	}
	err := c.call(http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &data)
	if err != nil {
		return staffUser{}, err
	}
	c.token = data.Token
	return data.User, nil
}

// logout is best-effort; the token is dropped locally either way.
func (c *apiClient) logout() {
	_ = c.call(http.MethodPost, "/auth/logout", nil, nil)
	c.token = ""
}

// listSubmissions fetches the whole collection once; searching happens
// locally as a pure derivation over the returned list.
func (c *apiClient) listSubmissions() ([]jamaah.Submission, error) {
	var subs []jamaah.Submission
	if err := c.call(http.MethodGet, "/jamaah", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (c *apiClient) getSubmission(id string) (jamaah.SubmissionDetail, error) {
	var detail jamaah.SubmissionDetail
	err := c.call(http.MethodGet, "/jamaah/"+url.PathEscape(id), nil, &detail)
	return detail, err
}
