// Package client issues signed requests to the Landscape API.
package client

import (
	"context"

	"github.com/landscapectl/landscapectl/internal/api"
)

// Interface defines the API client interface for dependency injection and testing
type Interface interface {
	GetComputers(ctx context.Context, action api.GetComputers) ([]api.Computer, error)
	GetScripts(ctx context.Context, action api.GetScripts) ([]api.Script, error)
	GetScript(ctx context.Context, title string) (*api.Script, error)
	GetScriptAttachments(ctx context.Context, title string) ([]string, error)
	ExecuteScript(ctx context.Context, action api.ExecuteScript) (*api.Activity, error)
	CreateScriptAttachment(ctx context.Context, action api.CreateScriptAttachment) (int, error)
	RemoveScriptAttachment(ctx context.Context, action api.RemoveScriptAttachment) error
}

// Compile-time check to ensure Client implements Interface
var _ Interface = (*Client)(nil)
