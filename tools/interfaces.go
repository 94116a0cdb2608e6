package tools

import "context"

// Tool defines the interface for all agent tools
type Tool interface {
	// Name returns the unique name of the tool (e.g. "calculator")
	Name() string

	// Description returns a description of what the tool does and its input
	Description() string

	// Execute runs the tool with the given input string
	Execute(ctx context.Context, input string) (string, error)
}
