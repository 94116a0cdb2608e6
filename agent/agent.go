// Package agent contains the rule-based dispatcher: it inspects one user
// utterance with simple extraction heuristics, invokes the matching tools
// through the registry, and composes their outputs into a single reply.
package agent

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/va6996/tinyagent/log"
	"github.com/va6996/tinyagent/tools"
)

// ToolInvocation records one tool call made during a turn, in call order.
type ToolInvocation struct {
	Tool   string `json:"tool"`
	Input  string `json:"input"`
	Result string `json:"result"`
}

// Reply is the sole output of a turn.
type Reply struct {
	Text        string           `json:"text"`
	Invocations []ToolInvocation `json:"invocations"`
}

const helpText = "I'm a tiny agent demo. I can use tools like **calculator**, **time lookup**, and a **planner**.\n\n" +
	"Try:\n" +
	"- `What time is it in Tokyo and London?`\n" +
	"- `What is (12*7)/3?`\n" +
	"- `Give me a plan to demo an agentic model in 24 hours`"

// Agent dispatches user text to tools. It holds no per-turn state; Run may
// be called repeatedly.
type Agent struct {
	registry *tools.Registry
}

// New creates an Agent backed by the given tool registry. The registry must
// contain the clock, calculator and planner tools.
func New(registry *tools.Registry) *Agent {
	return &Agent{registry: registry}
}

// Run handles one turn. The three checks (timezones, arithmetic, plan) always
// all run; none short-circuits another. Sections are appended in that fixed
// order and joined with blank lines, and every tool call is recorded. Run
// never fails: any tool-level problem becomes text inside the reply.
func (a *Agent) Run(ctx context.Context, userText, defaultZone string) *Reply {
	reply := &Reply{}
	var sections []string

	titler := cases.Title(language.English)

	for _, req := range FindTimezones(userText, defaultZone) {
		result := a.invoke(ctx, reply, tools.ClockName, req.ZoneID)
		sections = append(sections, fmt.Sprintf("🕒 **%s**: %s", titler.String(req.Label), result))
	}

	if expr, ok := FindExpression(userText); ok {
		result := a.invoke(ctx, reply, tools.CalculatorName, expr)
		sections = append(sections, fmt.Sprintf("🧮 **%s** = `%s`", expr, result))
	}

	if WantsPlan(userText) {
		result := a.invoke(ctx, reply, tools.PlannerName, userText)
		sections = append(sections, result)
	}

	if len(sections) == 0 {
		sections = append(sections, helpText)
	}

	reply.Text = strings.Join(sections, "\n\n")
	log.Debugf(ctx, "turn complete: %d tool call(s), %d section(s)", len(reply.Invocations), len(sections))
	return reply
}

// invoke runs one tool, records the invocation and returns its result text.
// Registry-level failures (a missing tool) degrade to a message as well.
func (a *Agent) invoke(ctx context.Context, reply *Reply, name, input string) string {
	result, err := a.registry.ExecuteTool(ctx, name, input)
	if err != nil {
		log.Errorf(ctx, "tool %s failed: %v", name, err)
		result = fmt.Sprintf("The %s tool is unavailable right now.", name)
	}
	reply.Invocations = append(reply.Invocations, ToolInvocation{Tool: name, Input: input, Result: result})
	return result
}
