package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TestContext holds the HTTP client and the last response of a scenario.
type TestContext struct {
	BaseURL     string
	AdminToken  string
	BearerToken string

	client   *http.Client
	status   int
	body     []byte
	response map[string]any
}

func NewTestContext(baseURL, adminToken, bearerToken string) *TestContext {
	return &TestContext{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		AdminToken:  adminToken,
		BearerToken: bearerToken,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Reset clears the previous response between scenarios.
func (tc *TestContext) Reset() {
	tc.status = 0
	tc.body = nil
	tc.response = nil
}

func (tc *TestContext) Do(method, path string, body any, headers map[string]string) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, tc.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	tc.status = resp.StatusCode
	tc.body, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	tc.response = nil
	if len(tc.body) > 0 {
		_ = json.Unmarshal(tc.body, &tc.response)
	}
	return nil
}

func (tc *TestContext) StatusCode() int {
	return tc.status
}

// ResponseField returns a top-level field, or a dotted path into nested objects.
func (tc *TestContext) ResponseField(path string) (any, error) {
	var cur any = tc.response
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q not found in %s", path, tc.body)
		}
		if cur, ok = m[part]; !ok {
			return nil, fmt.Errorf("field %q not found in %s", path, tc.body)
		}
	}
	return cur, nil
}

func (tc *TestContext) Body() string {
	return string(tc.body)
}

func (tc *TestContext) AdminHeaders() map[string]string {
	return map[string]string{"X-Admin-Token": tc.AdminToken}
}

func (tc *TestContext) BearerHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + tc.BearerToken}
}
