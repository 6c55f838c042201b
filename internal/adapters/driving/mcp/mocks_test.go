package mcp

import (
	"context"

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
