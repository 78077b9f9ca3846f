package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/openapigen/openapigen/generator"
)

type inspectInput struct {
	Spec     specInput   `json:"spec"               jsonschema:"The OpenAPI description to inspect"`
	Config   configInput `json:"config,omitempty"   jsonschema:"Optional shared-type configuration"`
	Tag      string      `json:"tag,omitempty"      jsonschema:"Only list operations of this tag (case-insensitive)"`
	Method   string      `json:"method,omitempty"   jsonschema:"Only list operations with this HTTP method (case-insensitive)"`
	Path     string      `json:"path,omitempty"     jsonschema:"Only list operations whose path matches this pattern (* matches one segment)"`
	GroupBy  string      `json:"group_by,omitempty" jsonschema:"Group results and return counts. Values: tag, method, status"`
	NoRepair bool        `json:"no_repair,omitempty" jsonschema:"Disable substitution of typed sibling components for untyped ones"`
	Offset   int         `json:"offset,omitempty"   jsonschema:"Skip the first N results (for pagination)"`
	Limit    int         `json:"limit,omitempty"    jsonschema:"Maximum number of results to return (default 100)"`
}

type operationInfo struct {
	Method   string   `json:"method"`
	Path     string   `json:"path"`
	Tag      string   `json:"tag"`
	Function string   `json:"function"`
	Statuses []string `json:"statuses"`
	Bearer   bool     `json:"bearer,omitempty"`
}

type inspectOutput struct {
	SourceVersion string            `json:"source_version"`
	Files         []string          `json:"files"`
	SharedTypes   []string          `json:"shared_types,omitempty"`
	Total         int               `json:"total"`
	Matched       int               `json:"matched"`
	Returned      int               `json:"returned"`
	Operations    []operationInfo   `json:"operations,omitempty"`
	Groups        []groupCount      `json:"groups,omitempty"`
	Warnings      []issueInfo       `json:"warnings,omitempty"`
	Replacements  []replacementInfo `json:"replacements,omitempty"`
}

var inspectGroupBy = []string{"tag", "method", "status"}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	if err := validateGroupBy(input.GroupBy, inspectGroupBy); err != nil {
		return errResult(err), inspectOutput{}, nil
	}
	if err := validateGlobPattern(input.Path); err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	c, err := input.Config.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}
	result, err := runGenerator(input.Spec, c, !input.NoRepair && cfg.Repair)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	var matched []generator.OperationSummary
	for _, op := range result.Operations {
		if input.Tag != "" && !strings.EqualFold(op.Tag, input.Tag) {
			continue
		}
		if input.Method != "" && !strings.EqualFold(op.Method, input.Method) {
			continue
		}
		if !matchPath(input.Path, op.Path) {
			continue
		}
		matched = append(matched, op)
	}

	output := inspectOutput{
		SourceVersion: result.SourceVersion,
		SharedTypes:   c.Names(),
		Total:         len(result.Operations),
		Matched:       len(matched),
		Warnings:      warningInfos(result),
	}
	output.Files = makeSlice[string](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, f.Name)
	}
	output.Replacements = makeSlice[replacementInfo](len(result.Replacements))
	for _, r := range result.Replacements {
		output.Replacements = append(output.Replacements, replacementInfo{From: r.From, To: r.To})
	}

	if input.GroupBy != "" {
		output.Groups = groupAndSort(matched, func(op generator.OperationSummary) []string {
			switch strings.ToLower(input.GroupBy) {
			case "tag":
				return []string{op.Tag}
			case "method":
				return []string{strings.ToUpper(op.Method)}
			default:
				return op.Statuses
			}
		})
		return nil, output, nil
	}

	page := paginate(matched, input.Offset, input.Limit)
	output.Returned = len(page)
	output.Operations = makeSlice[operationInfo](len(page))
	for _, op := range page {
		output.Operations = append(output.Operations, operationInfo{
			Method:   strings.ToUpper(op.Method),
			Path:     op.Path,
			Tag:      op.Tag,
			Function: op.Function,
			Statuses: op.Statuses,
			Bearer:   op.Bearer,
		})
	}
	return nil, output, nil
}
