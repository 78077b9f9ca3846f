package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inspect(t *testing.T, input inspectInput) inspectOutput {
	t.Helper()
	specCache.reset()
	if input.Spec == (specInput{}) {
		input.Spec = specInput{Content: petStore}
	}
	res, output, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, res)
	return output
}

func TestInspectTool_ListsOperations(t *testing.T) {
	output := inspect(t, inspectInput{})

	assert.Equal(t, "3.0.3", output.SourceVersion)
	assert.Equal(t, []string{"__shared_schemas__.ts", "Pets.ts", "Default.ts"}, output.Files)
	assert.Equal(t, 4, output.Total)
	assert.Equal(t, 4, output.Matched)
	assert.Equal(t, 4, output.Returned)
	require.Len(t, output.Operations, 4)

	assert.Equal(t, operationInfo{
		Method:   "GET",
		Path:     "/pets",
		Tag:      "Pets",
		Function: "getPets",
		Statuses: []string{"200", "default"},
	}, output.Operations[0])
	assert.Equal(t, "postPets", output.Operations[1].Function)
	assert.True(t, output.Operations[1].Bearer)
	assert.Equal(t, "getPetsId", output.Operations[2].Function)
	assert.Equal(t, []string{"200", "404"}, output.Operations[2].Statuses)
	assert.Equal(t, "Default", output.Operations[3].Tag)
}

func TestInspectTool_Filters(t *testing.T) {
	tests := []struct {
		name      string
		input     inspectInput
		functions []string
	}{
		{"tag", inspectInput{Tag: "default"}, []string{"getHealth"}},
		{"method", inspectInput{Method: "POST"}, []string{"postPets"}},
		{"exact path", inspectInput{Path: "/pets"}, []string{"getPets", "postPets"}},
		{"path glob", inspectInput{Path: "/pets/*"}, []string{"getPetsId"}},
		{"combined", inspectInput{Tag: "Pets", Method: "get"}, []string{"getPets", "getPetsId"}},
		{"no match", inspectInput{Tag: "Stores"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := inspect(t, tt.input)
			var got []string
			for _, op := range output.Operations {
				got = append(got, op.Function)
			}
			assert.Equal(t, tt.functions, got)
			assert.Equal(t, len(tt.functions), output.Matched)
		})
	}
}

func TestInspectTool_Pagination(t *testing.T) {
	output := inspect(t, inspectInput{Offset: 1, Limit: 2})
	assert.Equal(t, 4, output.Matched)
	assert.Equal(t, 2, output.Returned)
	require.Len(t, output.Operations, 2)
	assert.Equal(t, "postPets", output.Operations[0].Function)
	assert.Equal(t, "getPetsId", output.Operations[1].Function)
}

func TestInspectTool_GroupBy(t *testing.T) {
	output := inspect(t, inspectInput{GroupBy: "tag"})
	assert.Empty(t, output.Operations)
	assert.Equal(t, []groupCount{{Key: "Pets", Count: 3}, {Key: "Default", Count: 1}}, output.Groups)

	output = inspect(t, inspectInput{GroupBy: "method"})
	assert.Equal(t, []groupCount{{Key: "GET", Count: 3}, {Key: "POST", Count: 1}}, output.Groups)

	output = inspect(t, inspectInput{GroupBy: "status"})
	assert.Equal(t, []groupCount{
		{Key: "200", Count: 3},
		{Key: "201", Count: 1},
		{Key: "404", Count: 1},
		{Key: "default", Count: 1},
	}, output.Groups)
}

func TestInspectTool_SharedTypes(t *testing.T) {
	output := inspect(t, inspectInput{Config: configInput{Content: problemConfig}})
	assert.Equal(t, []string{"Problem"}, output.SharedTypes)
}

func TestInspectTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input inspectInput
	}{
		{"bad group_by", inspectInput{Spec: specInput{Content: petStore}, GroupBy: "operation"}},
		{"bad glob", inspectInput{Spec: specInput{Content: petStore}, Path: "/pets/["}},
		{"missing spec", inspectInput{}},
		{"unsupported version", inspectInput{Spec: specInput{Content: "swagger: \"2.0\"\ninfo: {title: x, version: \"1\"}\npaths: {}\n"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specCache.reset()
			res, _, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
		})
	}
}
