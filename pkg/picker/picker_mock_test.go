package picker_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/textfx/pkg/picker"
)

// mockGenerator is a scripted Generator for exercising the fallback chain
// without touching the network.
type mockGenerator struct {
	models  []picker.ModelInfo
	listErr error

	// responses maps model name to its scripted reply.
	responses map[string]mockResponse

	listCalls int
	genCalls  []string
	prompts   []string
}

type mockResponse struct {
	out string
	err error
}

func (m *mockGenerator) ListModels(_ context.Context) ([]picker.ModelInfo, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.models, nil
}

func (m *mockGenerator) GenerateText(_ context.Context, model, prompt string) (string, error) {
	m.genCalls = append(m.genCalls, model)
	m.prompts = append(m.prompts, prompt)

	resp, ok := m.responses[model]
	if !ok {
		return "", fmt.Errorf("mock: no scripted response for %s", model)
	}
	return resp.out, resp.err
}

// generating builds a ModelInfo that supports free-text generation.
func generating(name string) picker.ModelInfo {
	return picker.ModelInfo{Name: name, Actions: []string{"generateContent", "countTokens"}}
}

// quotaErr simulates a per-model rate limit.
func quotaErr() error {
	return fmt.Errorf("mock transport: %w", picker.ErrQuotaExceeded)
}

var errTransport = errors.New("mock transport: connection reset")
