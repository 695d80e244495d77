// Package payments talks to the Paystack transaction-verification API.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://api.paystack.co"

// ErrNoSecret means the gateway secret key was never configured. Callers
// surface this as a generic payment failure, not a crash.
var ErrNoSecret = errors.New("paystack secret key not set")

type Client struct {
	secret  string
	baseURL string
	http    *http.Client
}

func NewClient(secret, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{secret: secret, baseURL: baseURL, http: &http.Client{}}
}

// VerifyResult mirrors the gateway's verify response. Success requires the
// outer status flag AND data.status == "success"; everything else (declined,
// pending, abandoned) is a failed payment.
type VerifyResult struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

func (r VerifyResult) Success() bool {
	return r.Status && r.Data.Status == "success"
}

// Verify confirms one payment reference with the gateway. Transport errors,
// non-2xx responses and malformed bodies are returned as errors; the caller
// treats them all as verification failures.
func (c *Client) Verify(ctx context.Context, reference string) (VerifyResult, error) {
	if c.secret == "" {
		return VerifyResult{}, ErrNoSecret
	}
	u := c.baseURL + "/transaction/verify/" + url.PathEscape(reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return VerifyResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)

	resp, err := c.http.Do(req)
	if err != nil {
		return VerifyResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return VerifyResult{}, fmt.Errorf("paystack verify: unexpected status %d", resp.StatusCode)
	}
	var out VerifyResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return VerifyResult{}, fmt.Errorf("paystack verify: decode: %w", err)
	}
	return out, nil
}
