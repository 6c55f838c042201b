package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/membank/internal/core/domain"
	"github.com/custodia-labs/membank/internal/core/ports/driving"
)

// QueryInput is the input schema for the query tool.
type QueryInput struct {
	Query            string `json:"query" jsonschema:"the SQL query to run against the content tables"`
	MaxContentLength *int   `json:"max_content_length,omitempty" jsonschema:"override for the content truncation limit; 0 disables truncation"`
}

// SuggestionOutput is one follow-up lookup instruction.
type SuggestionOutput struct {
	Kind        string `json:"kind"`
	Instruction string `json:"instruction"`
}

// QueryOutput is the output schema for the query tool.
type QueryOutput struct {
	Strategy    string             `json:"strategy"`
	QueryType   string             `json:"query_type"`
	Limit       int                `json:"limit"`
	Rows        []map[string]any   `json:"rows"`
	Count       int                `json:"count"`
	Truncated   bool               `json:"truncated"`
	Suggestions []SuggestionOutput `json:"suggestions,omitempty"`
}

// ExtractInput is the input schema for the extract tool.
type ExtractInput struct {
	Key   string `json:"key,omitempty" jsonschema:"exact or shortened record identifier"`
	Title string `json:"title,omitempty" jsonschema:"title fragment to match when no key is known"`
	Table string `json:"table,omitempty" jsonschema:"restrict the search to one source table"`
}

// ExtractOutput is the output schema for the extract tool.
type ExtractOutput struct {
	Found       bool     `json:"found"`
	Table       string   `json:"table,omitempty"`
	Tag         string   `json:"tag,omitempty"`
	Key         string   `json:"key,omitempty"`
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	SafeName    string   `json:"safe_name,omitempty"`
	MatchKind   string   `json:"match_kind,omitempty"`
	TablesTried []string `json:"tables_tried,omitempty"`
}

// ListTablesInput is the (empty) input schema for the list_tables tool.
type ListTablesInput struct{}

// TableOutput describes one source table.
type TableOutput struct {
	Name    string `json:"name"`
	Tag     string `json:"tag"`
	Rank    int    `json:"rank"`
	Records int    `json:"records"`
}

// ListTablesOutput is the output schema for the list_tables tool.
type ListTablesOutput struct {
	Tables []TableOutput `json:"tables"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query",
		Description: "Run a read query against the content tables with smart truncation",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract",
		Description: "Retrieve the complete, untruncated content of one record by key or title",
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_tables",
		Description: "List the configured content tables in search priority order",
	}, s.handleListTables)
}

// handleQuery handles the query tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	report, err := s.ports.Query.RunQuery(ctx, input.Query, input.MaxContentLength)
	if err != nil {
		return nil, QueryOutput{}, err
	}

	output := QueryOutput{
		Strategy:  string(report.Strategy),
		QueryType: report.QueryType,
		Limit:     report.Limit,
		Rows:      make([]map[string]any, len(report.Rows)),
		Count:     len(report.Rows),
		Truncated: report.Truncated,
	}
	for i, row := range report.Rows {
		output.Rows[i] = row
	}
	for _, sug := range report.Suggestions {
		output.Suggestions = append(output.Suggestions, SuggestionOutput{
			Kind:        string(sug.Kind),
			Instruction: sug.Instruction,
		})
	}

	return nil, output, nil
}

// handleExtract handles the extract tool invocation. A miss is reported as a
// structured not-found payload, not a tool error.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	result, err := s.ports.Extract.Extract(ctx, driving.ExtractRequest{
		Key:           input.Key,
		TitleFragment: input.Title,
		Table:         input.Table,
	})

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return nil, ExtractOutput{
			Found:       false,
			TablesTried: notFound.TablesTried,
		}, nil
	}
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	return nil, ExtractOutput{
		Found:     true,
		Table:     result.Table,
		Tag:       result.Tag,
		Key:       result.Key,
		Title:     result.Title,
		Content:   result.Content,
		SafeName:  result.SafeName,
		MatchKind: string(result.MatchKind),
	}, nil
}

// handleListTables handles the list_tables tool invocation.
func (s *Server) handleListTables(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListTablesInput,
) (*mcp.CallToolResult, ListTablesOutput, error) {
	if s.ports.Tables == nil {
		return nil, ListTablesOutput{Tables: []TableOutput{}}, nil
	}

	infos, err := s.ports.Tables.ListTables(ctx)
	if err != nil {
		return nil, ListTablesOutput{}, err
	}

	output := ListTablesOutput{Tables: make([]TableOutput, len(infos))}
	for i, info := range infos {
		output.Tables[i] = TableOutput{
			Name:    info.Name,
			Tag:     info.Tag,
			Rank:    info.Rank,
			Records: info.Records,
		}
	}
	return nil, output, nil
}
