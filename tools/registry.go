package tools

import (
	"context"
	"fmt"
)

// ErrUnknownTool is returned when executing a name nothing registered under.
var ErrUnknownTool = fmt.Errorf("tool not found")

// Registry manages the registration of agent tools
type Registry struct {
	tools  []Tool
	byName map[string]Tool
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools:  make([]Tool, 0),
		byName: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. Registration order is preserved.
func (r *Registry) Register(tool Tool) {
	r.tools = append(r.tools, tool)
	r.byName[tool.Name()] = tool
}

// GetTools returns all registered tools in registration order
func (r *Registry) GetTools() []Tool {
	return r.tools
}

// ExecuteTool runs a registered tool by name
func (r *Registry) ExecuteTool(ctx context.Context, name, input string) (string, error) {
	tool, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return tool.Execute(ctx, input)
}
