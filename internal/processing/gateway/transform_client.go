// Package gateway provides clients for internal downstream services.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/winwin/textproc/internal/errors"
	"github.com/winwin/textproc/internal/processing/domain"
)

// internalTokenHeader carries the shared secret that authenticates
// service-to-service calls to the transform service.
const internalTokenHeader = "X-Internal-Token"

// TransformGateway defines the client contract for the internal transform service.
type TransformGateway interface {
	// Transform sends text to the transform service and returns the result.
	// Transport failures, timeouts and non-200 responses all map to
	// domain.ErrTransformUnavailable.
	Transform(ctx context.Context, text string) (string, error)
}

// transformRequest is the wire format of the transform call.
type transformRequest struct {
	Text string `json:"text"`
}

// transformResponse is the wire format of the transform result.
type transformResponse struct {
	Result string `json:"result"`
}

// transformClient implements TransformGateway over HTTP.
type transformClient struct {
	baseURL       string
	internalToken string
	httpClient    *http.Client
	logger        *slog.Logger
}

// Transform calls POST {baseURL}/api/transform with the shared internal token.
//
// The request timeout bounds how long a hung downstream can stall a caller;
// there are no retries, the caller decides how to surface the failure.
func (t *transformClient) Transform(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(transformRequest{Text: text})
	if err != nil {
		return "", apperrors.Wrap(err, "failed to marshal transform request")
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		t.baseURL+"/api/transform",
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to build transform request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(internalTokenHeader, t.internalToken)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Error("transform service request failed",
			slog.String("error", err.Error()))
		return "", domain.ErrTransformUnavailable
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.logger.Error("transform service returned unexpected status",
			slog.Int("status", resp.StatusCode))
		return "", domain.ErrTransformUnavailable
	}

	var result transformResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.logger.Error("failed to decode transform response",
			slog.String("error", err.Error()))
		return "", domain.ErrTransformUnavailable
	}

	return result.Result, nil
}

// NewTransformClient creates a new TransformGateway targeting baseURL.
// The timeout applies to the whole request including body read.
func NewTransformClient(baseURL, internalToken string, timeout time.Duration, logger *slog.Logger) TransformGateway {
	return &transformClient{
		baseURL:       baseURL,
		internalToken: internalToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}
