package providers

import (
	"context"
)

// Config represents the configuration for a single completion request
type Config struct {
	Model       string
	Temperature float64
	Prompt      string
}

// Provider defines the interface for an LLM provider
type Provider interface {
	Complete(ctx context.Context, config Config) (string, error)
}
