package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	apperrors "inputguard/pkg/errors"
	httputil "inputguard/pkg/http"
	"inputguard/pkg/model"
)

// CheckClient calls a running checks service. Failed checks come back as
// *apperrors.AppError carrying the service's code, message and status.
type CheckClient struct {
	httpClient *HttpClient
}

func NewCheckClient(baseURL string) *CheckClient {
	return &CheckClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *CheckClient) HTTP() *HttpClient {
	return c.httpClient
}

func (c *CheckClient) Check(ctx context.Context, kind string, req *model.CheckRequest) (*model.CheckResult, error) {
	resp, err := c.httpClient.POST(ctx, "/api/v1/checks/"+url.PathEscape(kind), req)
	if err != nil {
		return nil, err
	}

	var result model.CheckResult
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *CheckClient) CompareSequences(ctx context.Context, a, b any) (bool, error) {
	return c.compare(ctx, "/api/v1/compare/sequences", a, b)
}

func (c *CheckClient) CompareRecords(ctx context.Context, a, b any) (bool, error) {
	return c.compare(ctx, "/api/v1/compare/records", a, b)
}

func (c *CheckClient) compare(ctx context.Context, path string, a, b any) (bool, error) {
	resp, err := c.httpClient.POST(ctx, path, model.CompareRequest{A: a, B: b})
	if err != nil {
		return false, err
	}

	var result model.CompareResult
	if err := decode(resp, &result); err != nil {
		return false, err
	}
	return result.Equal, nil
}

// Stringify posts Extended JSON and returns the relaxed Extended JSON reply.
func (c *CheckClient) Stringify(ctx context.Context, extJSON []byte) ([]byte, error) {
	resp, err := c.httpClient.POSTRaw(ctx, "/api/v1/documents/stringify", extJSON)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := decode(resp, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decode(resp *Response, target any) error {
	if resp.StatusCode != http.StatusOK {
		return errorFrom(resp)
	}

	envelope := httputil.SuccessResponse{Data: target}
	if err := resp.DecodeJSON(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func errorFrom(resp *Response) error {
	var body apperrors.ErrorResponse
	if err := resp.DecodeJSON(&body); err != nil || body.Code == "" {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(resp.Body))
	}
	return apperrors.New(body.Code, body.Message, resp.StatusCode).WithDetails(body.Details)
}
