package tidepool

import (
	"time"

	"github.com/tidepool-db/tidepool-go/v1/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured, and emits a debug log line when a logger is attached.
//
// Notes:
//   - resource: the namespace the operation acted on ("" for global calls)
//   - subResource: the service name for health probes
func (c *Client) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil {
		return
	}

	if c.logger != nil {
		fields := map[string]interface{}{
			"operation":   operation,
			"namespace":   resource,
			"duration_ms": duration.Milliseconds(),
		}
		if err != nil {
			c.logger.Debug("tidepool operation failed", err, fields)
		} else {
			c.logger.Debug("tidepool operation completed", nil, fields)
		}
	}

	if c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "tidepool",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
