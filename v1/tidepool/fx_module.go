package tidepool

import (
	"context"

	"go.uber.org/fx"

	"github.com/tidepool-db/tidepool-go/v1/observability"
)

// FXModule is an fx.Module that provides and configures the tidepool clients.
// This module registers the sync and async clients with the Fx dependency
// injection framework, making them available to other components in the
// application.
//
// The module:
//  1. Provides the client factory functions
//  2. Invokes the lifecycle registration to release transport resources on
//     shutdown
//
// Usage:
//
//	app := fx.New(
//	    tidepool.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A *tidepool.Config instance must be available in the dependency injection
//   container (NewConfig builds one from the environment)
// - Logger and observability.Observer instances are optional
var FXModule = fx.Module("tidepool",
	fx.Provide(
		NewClientWithDI,
		NewAsyncClientFromClient,
	),
	fx.Invoke(RegisterTidepoolLifecycle),
)

// TidepoolParams groups the dependencies needed to create a tidepool client.
type TidepoolParams struct {
	fx.In

	Config   *Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI creates a new tidepool client using dependency injection.
// Dependencies are automatically provided via the TidepoolParams struct; an
// optional logger and observer are attached when present in the container.
func NewClientWithDI(params TidepoolParams) (*Client, error) {
	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}
	if params.Logger != nil {
		client.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		client.WithObserver(params.Observer)
	}
	return client, nil
}

// NewAsyncClientFromClient wraps the injected sync client in its async façade
// so both share one transport and configuration.
func NewAsyncClientFromClient(client *Client) *AsyncClient {
	return &AsyncClient{sync: client}
}

// RegisterTidepoolLifecycle ensures the client releases its transport
// resources on application shutdown.
//
// Note: This function is automatically invoked by the FXModule and does not
// need to be called directly in application code.
func RegisterTidepoolLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
