package skillz_test

import (
	"context"
	"sync"

	"github.com/devanshioza/skillfolio/genai"
	"github.com/devanshioza/skillfolio/skillz"
)

// mockLLMClient is a stand-in for the real model backend. It either
// returns the fixed response/error pair or delegates to respond, which
// lets a test vary the answer per request.
type mockLLMClient struct {
	mu       sync.Mutex
	response string
	err      error
	respond  func(req genai.GenerateRequest) (string, error)
	requests []genai.GenerateRequest
}

func (m *mockLLMClient) Generate(ctx context.Context, req genai.GenerateRequest) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.respond != nil {
		return m.respond(req)
	}
	return m.response, m.err
}

func (m *mockLLMClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func prompt(req genai.GenerateRequest) string {
	if len(req.History) == 0 {
		return ""
	}
	return req.History[len(req.History)-1].Content
}

// fakeDirectory is an in-memory skillz.ProfileDirectory.
type fakeDirectory struct {
	mu       sync.Mutex
	profiles map[string]skillz.UserProfileContext
	err      error
	lookups  []string
}

func (d *fakeDirectory) GetStudentContext(ctx context.Context, userID string) (skillz.UserProfileContext, error) {
	d.mu.Lock()
	d.lookups = append(d.lookups, userID)
	d.mu.Unlock()
	if d.err != nil {
		return skillz.UserProfileContext{}, d.err
	}
	return d.profiles[userID], nil
}
