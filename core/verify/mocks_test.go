package verify

import (
	"context"

	"newsverify-api/core/domain"
)

// mockSearchProvider is a mock implementation of the SearchProvider interface
type mockSearchProvider struct {
	searchFunc func(ctx context.Context, query string, num int) ([]domain.SearchResult, error)
}

func (m *mockSearchProvider) Search(ctx context.Context, query string, num int) ([]domain.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, num)
	}
	return nil, nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	warnings []string
	debugs   []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	m.debugs = append(m.debugs, msg)
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings = append(m.warnings, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
