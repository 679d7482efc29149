package exec

import (
	"context"
	"time"
)

// MockCall records one command invocation received by MockCommandRunner.
type MockCall struct {
	Name    string
	Args    []string
	Timeout time.Duration
}

// MockCommandRunner implements CommandRunner for testing without executing
// external commands.
type MockCommandRunner struct {
	// Calls records every invocation in order.
	Calls []MockCall

	// Results maps command names to canned results. Commands without an
	// entry use Default.
	Results map[string]*CommandResult

	// Default is returned for commands without a Results entry.
	Default *CommandResult
}

// NewMockCommandRunner creates a MockCommandRunner that succeeds by default.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		Results: map[string]*CommandResult{},
		Default: &CommandResult{},
	}
}

// Run records the call and returns the canned result.
func (m *MockCommandRunner) Run(_ context.Context, name string, args ...string) *CommandResult {
	m.Calls = append(m.Calls, MockCall{Name: name, Args: args})

	return m.result(name)
}

// RunWithTimeout records the call and returns the canned result.
func (m *MockCommandRunner) RunWithTimeout(timeout time.Duration, name string, args ...string) *CommandResult {
	m.Calls = append(m.Calls, MockCall{Name: name, Args: args, Timeout: timeout})

	return m.result(name)
}

func (m *MockCommandRunner) result(name string) *CommandResult {
	if r, ok := m.Results[name]; ok {
		return r
	}

	if m.Default != nil {
		return m.Default
	}

	return &CommandResult{}
}

// CallsTo returns the recorded calls for one command name.
func (m *MockCommandRunner) CallsTo(name string) []MockCall {
	var calls []MockCall

	for _, c := range m.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}

	return calls
}

// MockToolChecker implements ToolChecker with a fixed set of available tools.
type MockToolChecker struct {
	// Available lists the tools reported as present in PATH.
	Available map[string]bool
}

// NewMockToolChecker creates a MockToolChecker with the given tools available.
func NewMockToolChecker(tools ...string) *MockToolChecker {
	available := make(map[string]bool, len(tools))
	for _, t := range tools {
		available[t] = true
	}

	return &MockToolChecker{Available: available}
}

// IsAvailable reports whether the tool was marked available.
func (m *MockToolChecker) IsAvailable(tool string) bool {
	return m.Available[tool]
}

// RequireTool returns ToolNotFoundError for unavailable tools.
func (m *MockToolChecker) RequireTool(tool string) error {
	if !m.IsAvailable(tool) {
		return &ToolNotFoundError{Tool: tool}
	}

	return nil
}

// FindTool returns the first available tool from the alternatives.
func (m *MockToolChecker) FindTool(alternatives ...string) string {
	for _, tool := range alternatives {
		if m.IsAvailable(tool) {
			return tool
		}
	}

	return ""
}
