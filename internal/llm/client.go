// Package llm defines the completion service contract used by the
// delegated translator. Adapters live in the subpackages.
package llm

import (
	"context"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// Client sends a single prompt to a text-completion service.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}
