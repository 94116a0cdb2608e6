package tools

import (
	"context"
	"strings"
)

// PlannerName is the registry name of the planner tool.
const PlannerName = "planner"

var planBullets = []string{
	"Clarify the goal + success criteria (1-2 sentences).",
	"List the smallest demo-able user flow (3-5 steps).",
	"Pick 1-2 tools/APIs (or mock them) to support the flow.",
	"Build the UI skeleton first (inputs, buttons, results).",
	"Wire the agent loop (decide -> tool -> observe -> answer).",
	"Add a short 'demo script' and 2-3 example prompts.",
}

// PlannerTool produces a fixed generic plan. The goal text is accepted and
// recorded but does not vary the output yet; it is kept in the signature so a
// goal-conditioned planner can slot in without touching callers.
type PlannerTool struct{}

// NewPlannerTool creates a PlannerTool and registers it
func NewPlannerTool(registry *Registry) *PlannerTool {
	t := &PlannerTool{}
	if registry != nil {
		registry.Register(t)
	}
	return t
}

func (t *PlannerTool) Name() string {
	return PlannerName
}

func (t *PlannerTool) Description() string {
	return "Returns a short step-by-step plan for the stated goal."
}

func (t *PlannerTool) Execute(ctx context.Context, input string) (string, error) {
	return t.Plan(input), nil
}

// Plan returns the fixed bullet list.
func (t *PlannerTool) Plan(goal string) string {
	var b strings.Builder
	b.WriteString("Here's a quick plan:")
	for _, bullet := range planBullets {
		b.WriteString("\n- ")
		b.WriteString(bullet)
	}
	return b.String()
}
