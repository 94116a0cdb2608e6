package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/va6996/tinyagent/calc"
	"github.com/va6996/tinyagent/log"
)

// CalculatorName is the registry name of the calculator tool.
const CalculatorName = "calculator"

// CalculatorTool evaluates restricted arithmetic expressions via the calc
// package. It always answers in text: evaluation failures are rendered as
// short explanatory messages rather than returned as errors, so a garbled
// expression degrades the reply instead of aborting the turn.
type CalculatorTool struct{}

// NewCalculatorTool creates a CalculatorTool and registers it
func NewCalculatorTool(registry *Registry) *CalculatorTool {
	t := &CalculatorTool{}
	if registry != nil {
		registry.Register(t)
	}
	return t
}

func (t *CalculatorTool) Name() string {
	return CalculatorName
}

func (t *CalculatorTool) Description() string {
	return "Evaluates an arithmetic expression. Supports + - * / // % ** and parentheses; no variables or functions."
}

func (t *CalculatorTool) Execute(ctx context.Context, input string) (string, error) {
	result, err := calc.Evaluate(input)
	if err != nil {
		log.Debugf(ctx, "calculator: %q rejected: %v", input, err)
		return calcErrorMessage(err), nil
	}
	return result, nil
}

func calcErrorMessage(err error) string {
	switch {
	case errors.Is(err, calc.ErrTooLong):
		return "Expression too long."
	case errors.Is(err, calc.ErrDivisionByZero):
		return "Could not evaluate: division by zero."
	case errors.Is(err, calc.ErrUnsupported):
		return "Could not evaluate: unsupported expression."
	default:
		return fmt.Sprintf("Could not evaluate: %v.", err)
	}
}
