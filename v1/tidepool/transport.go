package tidepool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Doer is the transport capability the client depends on. *http.Client
// satisfies it; tests substitute counting or canned transports.
//
// Implementations must be safe for concurrent use — the client performs no
// locking of its own because it holds no contended state.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// service endpoint wraps one base URL with the transport used to reach it.
type endpoint struct {
	baseURL string
	doer    Doer
}

func newEndpoint(baseURL string, doer Doer) endpoint {
	return endpoint{baseURL: strings.TrimRight(baseURL, "/"), doer: doer}
}

// requestJSON performs a single request/response exchange: marshal the body
// (if any), send, and return the raw response bytes on 2xx. Non-2xx statuses
// are mapped into typed errors; network failures surface as ErrTransport.
// There are no retries — every call is one atomic round trip.
func (e endpoint) requestJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, e.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.doer.Do(req)
	if err != nil {
		// Context cancellation must stay visible to errors.Is(err, ctx.Err()).
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrTransport, ctx.Err())
		}
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mapStatusError(resp.StatusCode, data)
	}
	if resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil, nil
	}
	return data, nil
}
