package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/openapigen/openapigen/config"
	"github.com/openapigen/openapigen/generator"
	"github.com/openapigen/openapigen/parser"
)

type generateInput struct {
	Spec      specInput   `json:"spec"                jsonschema:"The OpenAPI description to generate a client from"`
	Config    configInput `json:"config,omitempty"    jsonschema:"Optional shared-type configuration"`
	OutputDir string      `json:"output_dir"          jsonschema:"Directory to write generated files to; purged before writing"`
	NoRepair  bool        `json:"no_repair,omitempty" jsonschema:"Disable substitution of typed sibling components for untyped ones"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Tag  string `json:"tag,omitempty"`
	Size int    `json:"size"`
}

type issueInfo struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type replacementInfo struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type generateOutput struct {
	Success             bool                `json:"success"`
	OutputDir           string              `json:"output_dir"`
	SourceVersion       string              `json:"source_version"`
	FileCount           int                 `json:"file_count"`
	Files               []generatedFileInfo `json:"files"`
	GeneratedTypes      int                 `json:"generated_types"`
	GeneratedOperations int                 `json:"generated_operations"`
	WarningCount        int                 `json:"warning_count"`
	Warnings            []issueInfo         `json:"warnings,omitempty"`
	Replacements        []replacementInfo   `json:"replacements,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	c, err := input.Config.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	result, err := runGenerator(input.Spec, c, !input.NoRepair && cfg.Repair)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if err := result.PurgeAndWriteFiles(input.OutputDir); err != nil {
		return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
	}

	output := generateOutput{
		Success:             result.Success,
		OutputDir:           input.OutputDir,
		SourceVersion:       result.SourceVersion,
		FileCount:           len(result.Files),
		GeneratedTypes:      result.GeneratedTypes,
		GeneratedOperations: result.GeneratedOperations,
		WarningCount:        result.WarningCount,
		Warnings:            warningInfos(result),
	}

	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{
			Name: f.Name,
			Tag:  f.Tag,
			Size: len(f.Content),
		})
	}
	output.Replacements = makeSlice[replacementInfo](len(result.Replacements))
	for _, r := range result.Replacements {
		output.Replacements = append(output.Replacements, replacementInfo{From: r.From, To: r.To})
	}

	return nil, output, nil
}

// runGenerator resolves the description and generates the client in memory.
func runGenerator(spec specInput, c *config.Config, repair bool) (*generator.GenerateResult, error) {
	parseResult, err := spec.resolve()
	if err != nil {
		return nil, err
	}

	g := generator.New()
	g.Repair = repair
	g.IncludeInfo = false
	g.Logger = parser.NopLogger{}
	return g.GenerateParsed(*parseResult, c)
}

func warningInfos(result *generator.GenerateResult) []issueInfo {
	warnings := result.Warnings()
	out := makeSlice[issueInfo](len(warnings))
	for _, w := range warnings {
		out = append(out, issueInfo{Path: w.Path, Message: w.Message})
	}
	return out
}
