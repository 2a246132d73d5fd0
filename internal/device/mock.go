package device

import (
	"context"
	"sync"
)

// InstallCall records a single InstallVersion invocation on a MockClient.
type InstallCall struct {
	Version string
	Restart bool
}

// MockClient is a configurable mock implementation of Client for testing.
// Set the function fields to control behavior; unset fields use benign
// defaults. Every call is recorded.
type MockClient struct {
	ExecuteFunc        func(ctx context.Context, cmd string) (*Response, error)
	InstallVersionFunc func(ctx context.Context, version string, restart bool) error

	mu       sync.Mutex
	commands []string
	installs []InstallCall
}

// Execute implements Client.
func (m *MockClient) Execute(ctx context.Context, cmd string) (*Response, error) {
	m.mu.Lock()
	m.commands = append(m.commands, cmd)
	m.mu.Unlock()

	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &Response{Status: "success"}, nil
}

// InstallVersion implements Client.
func (m *MockClient) InstallVersion(ctx context.Context, version string, restart bool) error {
	m.mu.Lock()
	m.installs = append(m.installs, InstallCall{Version: version, Restart: restart})
	m.mu.Unlock()

	if m.InstallVersionFunc != nil {
		return m.InstallVersionFunc(ctx, version, restart)
	}
	return nil
}

// Commands returns the executed command bodies in order.
func (m *MockClient) Commands() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.commands...)
}

// Installs returns the recorded InstallVersion calls in order.
func (m *MockClient) Installs() []InstallCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]InstallCall(nil), m.installs...)
}

// SubmissionResponse builds a success response carrying a job identifier, as
// returned when a long-running command is submitted.
func SubmissionResponse(jobID string) *Response {
	return &Response{
		Status: "success",
		Result: responseResult{Job: &jobentry{Text: jobID}},
	}
}

// JobStatusResponse builds a success response for a job status query with the
// given result field.
func JobStatusResponse(jobID, result string) *Response {
	return &Response{
		Status: "success",
		Result: responseResult{Job: &jobentry{ID: jobID, Status: "FIN", Result: result}},
	}
}

// TextResponse builds a success response whose result is a plain text body,
// as returned by the readiness query.
func TextResponse(text string) *Response {
	return &Response{
		Status: "success",
		Result: responseResult{Text: text},
	}
}
