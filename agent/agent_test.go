package agent

import (
	"context"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/va6996/tinyagent/tools"
)

// newTestAgent builds an agent whose clock is pinned to 2026-01-01 12:00 UTC.
func newTestAgent(t *testing.T) *Agent {
	t.Helper()
	registry := tools.NewRegistry()
	clock := tools.NewClockTool(registry)
	clock.Now = func() time.Time {
		return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	tools.NewCalculatorTool(registry)
	tools.NewPlannerTool(registry)
	return New(registry)
}

func TestRun_TimeQuestion(t *testing.T) {
	a := newTestAgent(t)

	reply := a.Run(context.Background(), "What time is it in Tokyo and London?", "UTC")

	require.Len(t, reply.Invocations, 2)
	assert.Equal(t, tools.ClockName, reply.Invocations[0].Tool)
	assert.Equal(t, "Europe/London", reply.Invocations[0].Input)
	assert.Equal(t, "Asia/Tokyo", reply.Invocations[1].Input)

	sections := strings.Split(reply.Text, "\n\n")
	require.Len(t, sections, 2)
	assert.Equal(t, "🕒 **London**: 2026-01-01 12:00:00 (GMT)", sections[0])
	assert.Equal(t, "🕒 **Tokyo**: 2026-01-01 21:00:00 (JST)", sections[1])
}

func TestRun_FallbackTimezone(t *testing.T) {
	a := newTestAgent(t)

	reply := a.Run(context.Background(), "what is the date?", "UTC")

	require.Len(t, reply.Invocations, 1)
	assert.Equal(t, "UTC", reply.Invocations[0].Input)
	assert.Equal(t, "🕒 **Your Timezone**: 2026-01-01 12:00:00 (UTC)", reply.Text)
}

func TestRun_Calculation(t *testing.T) {
	a := newTestAgent(t)

	reply := a.Run(context.Background(), "What is (12*7)/3?", "UTC")

	require.Len(t, reply.Invocations, 1)
	assert.Equal(t, tools.CalculatorName, reply.Invocations[0].Tool)
	assert.Equal(t, "(12*7)/3", reply.Invocations[0].Input)
	assert.Equal(t, "28", reply.Invocations[0].Result)
	assert.Equal(t, "🧮 **(12*7)/3** = `28`", reply.Text)
}

func TestRun_PlanOnly(t *testing.T) {
	a := newTestAgent(t)

	reply := a.Run(context.Background(), "Give me a plan to demo an agentic model in 24 hours", "UTC")

	// "24" alone carries no operator and "in 24 hours" is not a time
	// question, so the planner is the only tool that fires.
	require.Len(t, reply.Invocations, 1)
	assert.Equal(t, tools.PlannerName, reply.Invocations[0].Tool)
	assert.True(t, strings.HasPrefix(reply.Text, "Here's a quick plan:"))
	assert.NotContains(t, reply.Text, "🕒")
	assert.NotContains(t, reply.Text, "🧮")
}

func TestRun_Help(t *testing.T) {
	a := newTestAgent(t)

	reply := a.Run(context.Background(), "how are you?", "UTC")

	assert.Empty(t, reply.Invocations)
	assert.Equal(t, helpText, reply.Text)
}

func TestRun_SectionOrder(t *testing.T) {
	a := newTestAgent(t)

	reply := a.Run(context.Background(), "What time is it in Paris? Also 2+2 and plan my day", "UTC")

	require.Len(t, reply.Invocations, 3)
	assert.Equal(t, tools.ClockName, reply.Invocations[0].Tool)
	assert.Equal(t, tools.CalculatorName, reply.Invocations[1].Tool)
	assert.Equal(t, tools.PlannerName, reply.Invocations[2].Tool)

	sections := strings.Split(reply.Text, "\n\n")
	require.Len(t, sections, 3)
	assert.Contains(t, sections[0], "🕒")
	assert.Contains(t, sections[1], "🧮")
	assert.True(t, strings.HasPrefix(sections[2], "Here's a quick plan:"))
}

func TestRun_EvaluationFailureStaysInReply(t *testing.T) {
	a := newTestAgent(t)

	reply := a.Run(context.Background(), "what is 1/0?", "UTC")

	require.Len(t, reply.Invocations, 1)
	assert.Equal(t, "Could not evaluate: division by zero.", reply.Invocations[0].Result)
	assert.Contains(t, reply.Text, "division by zero")
}

func TestRun_MissingToolDegradesToText(t *testing.T) {
	// An agent over an empty registry still answers.
	a := New(tools.NewRegistry())

	reply := a.Run(context.Background(), "what is 2+2?", "UTC")

	require.Len(t, reply.Invocations, 1)
	assert.Contains(t, reply.Invocations[0].Result, "unavailable")
}
