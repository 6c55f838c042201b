package cli

import (
	"context"

	"github.com/custodia-labs/membank/internal/core/domain"
	"github.com/custodia-labs/membank/internal/core/ports/driving"
)

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	report *driving.QueryReport
	err    error
}

func (m *mockQueryService) RunQuery(
	_ context.Context,
	_ string,
	_ *int,
) (*driving.QueryReport, error) {
	return m.report, m.err
}

// mockExtractService is a mock implementation of driving.ExtractService.
type mockExtractService struct {
	result *driving.ExtractResult
	err    error
}

func (m *mockExtractService) Extract(
	_ context.Context,
	_ driving.ExtractRequest,
) (*driving.ExtractResult, error) {
	return m.result, m.err
}

// mockTableService is a mock implementation of driving.TableService.
type mockTableService struct {
	infos []driving.TableInfo
	err   error
}

func (m *mockTableService) ListTables(_ context.Context) ([]driving.TableInfo, error) {
	return m.infos, m.err
}

// setupTestServices injects mock services and returns a cleanup function
// that restores the uninitialized state and resets command flags.
func setupTestServices() func() {
	queryService = &mockQueryService{report: &driving.QueryReport{
		Strategy:  domain.IntentBalanced,
		Limit:     domain.BalancedLimit,
		QueryType: "SELECT",
	}}
	extractService = &mockExtractService{result: &driving.ExtractResult{
		Table:    "documents_v2",
		Tag:      "📄",
		Key:      "abc-123",
		Title:    "Deploy Notes",
		Content:  "full content",
		SafeName: "deploy_notes_abc-123.md",
	}}
	tableService = &mockTableService{}

	return func() {
		queryService = nil
		extractService = nil
		tableService = nil

		extractKey = ""
		extractTitle = ""
		extractTable = ""
		extractOut = ""
		extractJSON = false
		queryJSON = false
		tablesJSON = false
		queryMaxContentLength = 0
	}
}
