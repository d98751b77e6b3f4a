package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
)

// GetJSON issues a GET to reqURL and decodes a 200 response body into result.
// Every failure is returned as *interfaces.CollaboratorError tagged with service and op.
func GetJSON(ctx context.Context, client *http.Client, service, op, reqURL string, header http.Header, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &interfaces.CollaboratorError{Service: service, Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return &interfaces.CollaboratorError{Service: service, Op: op, Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &interfaces.CollaboratorError{
			Service:    service,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &interfaces.CollaboratorError{Service: service, Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}
