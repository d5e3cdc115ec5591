package cmd

import (
	"context"
	"errors"

	"github.com/landscapectl/landscapectl/internal/api"
)

// mockClientInterface is a manual mock for testing
type mockClientInterface struct {
	getComputersFunc           func(ctx context.Context, action api.GetComputers) ([]api.Computer, error)
	getScriptsFunc             func(ctx context.Context, action api.GetScripts) ([]api.Script, error)
	getScriptFunc              func(ctx context.Context, title string) (*api.Script, error)
	getScriptAttachmentsFunc   func(ctx context.Context, title string) ([]string, error)
	executeScriptFunc          func(ctx context.Context, action api.ExecuteScript) (*api.Activity, error)
	createScriptAttachmentFunc func(ctx context.Context, action api.CreateScriptAttachment) (int, error)
	removeScriptAttachmentFunc func(ctx context.Context, action api.RemoveScriptAttachment) error
}

func (m *mockClientInterface) GetComputers(ctx context.Context, action api.GetComputers) ([]api.Computer, error) {
	if m.getComputersFunc != nil {
		return m.getComputersFunc(ctx, action)
	}
	return nil, errors.New("not implemented")
}

func (m *mockClientInterface) GetScripts(ctx context.Context, action api.GetScripts) ([]api.Script, error) {
	if m.getScriptsFunc != nil {
		return m.getScriptsFunc(ctx, action)
	}
	return nil, errors.New("not implemented")
}

func (m *mockClientInterface) GetScript(ctx context.Context, title string) (*api.Script, error) {
	if m.getScriptFunc != nil {
		return m.getScriptFunc(ctx, title)
	}
	return nil, errors.New("not implemented")
}

func (m *mockClientInterface) GetScriptAttachments(ctx context.Context, title string) ([]string, error) {
	if m.getScriptAttachmentsFunc != nil {
		return m.getScriptAttachmentsFunc(ctx, title)
	}
	return nil, errors.New("not implemented")
}

func (m *mockClientInterface) ExecuteScript(ctx context.Context, action api.ExecuteScript) (*api.Activity, error) {
	if m.executeScriptFunc != nil {
		return m.executeScriptFunc(ctx, action)
	}
	return nil, errors.New("not implemented")
}

func (m *mockClientInterface) CreateScriptAttachment(
	ctx context.Context, action api.CreateScriptAttachment,
) (int, error) {
	if m.createScriptAttachmentFunc != nil {
		return m.createScriptAttachmentFunc(ctx, action)
	}
	return 0, errors.New("not implemented")
}

func (m *mockClientInterface) RemoveScriptAttachment(ctx context.Context, action api.RemoveScriptAttachment) error {
	if m.removeScriptAttachmentFunc != nil {
		return m.removeScriptAttachmentFunc(ctx, action)
	}
	return errors.New("not implemented")
}

// mockOutputInterface is a manual mock for testing
type mockOutputInterface struct {
	calls      []call
	promptFunc func(prompt string) string
}

type call struct {
	method string
	args   []any
}

func (m *mockOutputInterface) Infof(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Infof", args: []any{format, a}})
}
func (m *mockOutputInterface) Errorf(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Errorf", args: []any{format, a}})
}
func (m *mockOutputInterface) Successf(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Successf", args: []any{format, a}})
}
func (m *mockOutputInterface) Warningf(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Warningf", args: []any{format, a}})
}
func (m *mockOutputInterface) Table(headers []string, rows [][]string) {
	m.calls = append(m.calls, call{method: "Table", args: []any{headers, rows}})
}
func (m *mockOutputInterface) Blank() {
	m.calls = append(m.calls, call{method: "Blank", args: []any{}})
}
func (m *mockOutputInterface) Bold(text string) string {
	return text
}
func (m *mockOutputInterface) Cyan(text string) string {
	return text
}
func (m *mockOutputInterface) KeyValue(key, value string) {
	m.calls = append(m.calls, call{method: "KeyValue", args: []any{key, value}})
}
func (m *mockOutputInterface) JSON(v any) {
	m.calls = append(m.calls, call{method: "JSON", args: []any{v}})
}
func (m *mockOutputInterface) Prompt(prompt string) string {
	m.calls = append(m.calls, call{method: "Prompt", args: []any{prompt}})
	if m.promptFunc != nil {
		return m.promptFunc(prompt)
	}
	return ""
}

// methodCalls returns the recorded calls matching the given method name.
func (m *mockOutputInterface) methodCalls(method string) []call {
	var matched []call
	for _, c := range m.calls {
		if c.method == method {
			matched = append(matched, c)
		}
	}
	return matched
}
