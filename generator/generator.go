package generator

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/openapigen/openapigen/config"
	"github.com/openapigen/openapigen/internal/issues"
	"github.com/openapigen/openapigen/internal/naming"
	"github.com/openapigen/openapigen/internal/schemautil"
	"github.com/openapigen/openapigen/internal/severity"
	"github.com/openapigen/openapigen/parser"
	"github.com/openapigen/openapigen/resolver"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates best-effort substitutions such as component repair
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates a problem that aborted generation
	SeverityError = severity.SeverityError
)

// GenerateIssue represents a single non-fatal generation issue
type GenerateIssue = issues.Issue

// SharedFileName is the module holding the configured shared types.
const SharedFileName = "__shared_schemas__.ts"

const sharedModule = "./__shared_schemas__"

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "__shared_schemas__.ts", "Pets.ts")
	Name string
	// Tag is the operation tag the file was generated for, empty for the
	// shared module
	Tag string
	// Content is the generated TypeScript source
	Content []byte
}

// GenerateResult contains the results of generating a client
type GenerateResult struct {
	// Files contains the shared module first, then one module per tag in
	// first-seen order
	Files []GeneratedFile
	// SourceVersion is the declared openapi version
	SourceVersion string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// SourcePath is where the document was read from
	SourcePath string
	// Issues contains the non-fatal issues raised during generation
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// Success is true when every operation was emitted
	Success bool
	// Replacements lists the component repairs in the order they were made
	Replacements []resolver.Replacement
	// Operations describes every generated function in emission order
	Operations []OperationSummary
	// Tags lists the operation tags in first-seen order
	Tags []string
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the source document
	Stats parser.DocumentStats
	// GeneratedTypes is the count of exported type aliases
	GeneratedTypes int
	// GeneratedOperations is the count of exported functions
	GeneratedOperations int
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Warnings returns the warning-level issues.
func (r *GenerateResult) Warnings() []GenerateIssue {
	var out []GenerateIssue
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			out = append(out, i)
		}
	}
	return out
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator turns a parsed document into a TypeScript axios client.
type Generator struct {
	// Repair enables the component reference repair pass.
	// Default: true
	Repair bool

	// IncludeInfo determines whether to include informational messages
	// Default: true
	IncludeInfo bool

	// Logger is the structured logger. If nil, logging is disabled.
	Logger parser.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		Repair:      true,
		IncludeInfo: true,
	}
}

func (g *Generator) log() parser.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return parser.NopLogger{}
}

// Generate parses the document at specPath and generates a client from it.
// A nil cfg means no shared types.
func (g *Generator) Generate(specPath string, cfg *config.Config) (*GenerateResult, error) {
	p := parser.New()
	p.Logger = g.Logger
	parseResult, err := p.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse description: %w", err)
	}
	return g.GenerateParsed(*parseResult, cfg)
}

// GenerateParsed generates a client from an already-parsed document. The
// run is atomic: on error no result is returned.
func (g *Generator) GenerateParsed(parseResult parser.ParseResult, cfg *config.Config) (*GenerateResult, error) {
	startTime := time.Now()
	doc := parseResult.Document
	if doc == nil {
		return nil, fmt.Errorf("generator: parse result has no document")
	}
	if cfg == nil {
		cfg = config.Empty()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	e, err := newEmitter(doc, cfg, g.Repair, g.log())
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	result := &GenerateResult{
		SourceVersion: parseResult.Version,
		SourceFormat:  parseResult.SourceFormat,
		SourcePath:    parseResult.SourcePath,
		LoadTime:      parseResult.LoadTime,
		SourceSize:    parseResult.SourceSize,
		Stats:         parseResult.Stats,
	}

	shared, err := e.emitShared(cfg)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	result.Files = append(result.Files, GeneratedFile{Name: SharedFileName, Content: shared})

	modules, err := e.emitModules(result)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	header := moduleHeader(cfg.Names())
	for _, m := range modules {
		content := make([]byte, 0, len(header)+m.body.Len()+32)
		content = fmt.Appendf(content, "// === %s ===\n", m.tag)
		content = append(content, header...)
		content = append(content, m.body.Bytes()...)
		result.Files = append(result.Files, GeneratedFile{Name: m.file, Tag: m.tag, Content: content})
		result.Tags = append(result.Tags, m.tag)
		putBuffer(m.body)
	}

	result.Replacements = e.rctx.Replacements()
	for _, r := range result.Replacements {
		g.log().Debug("component replaced", "from", r.From, "to", r.To)
		e.issues = append(e.issues, issues.Warning("components.schemas."+r.From, "component %s replaced with %s", r.From, r.To))
	}

	result.Issues = e.issues
	if !g.IncludeInfo {
		filtered := make([]GenerateIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
	}
	result.InfoCount = issues.Count(result.Issues, SeverityInfo)
	result.WarningCount = issues.Count(result.Issues, SeverityWarning)
	result.GeneratedTypes = e.typeCount
	result.GeneratedOperations = len(result.Operations)
	result.GenerateTime = time.Since(startTime)
	result.Success = true

	g.log().Info("generated client",
		"files", len(result.Files),
		"operations", result.GeneratedOperations,
		"types", result.GeneratedTypes,
		"warnings", result.WarningCount,
	)
	return result, nil
}

// moduleHeader is the import block shared by every tag module.
func moduleHeader(shared []string) []byte {
	var b bytes.Buffer
	b.WriteString("/* eslint-disable @typescript-eslint/no-unused-vars */\n")
	b.WriteString("import type { AxiosInstance } from \"axios\"\n")
	if len(shared) == 0 {
		fmt.Fprintf(&b, "import type {} from %q\n", sharedModule)
	} else {
		fmt.Fprintf(&b, "import type { %s } from %q\n", strings.Join(shared, ", "), sharedModule)
	}
	b.WriteByte('\n')
	return b.Bytes()
}

// emitter holds the state of one generation run.
type emitter struct {
	doc       *parser.Document
	resolver  *resolver.Resolver
	rctx      *resolver.Context
	shared    *schemautil.SharedTypes
	logger    parser.Logger
	expanding map[string]bool
	issues    []GenerateIssue
	typeCount int
}

func newEmitter(doc *parser.Document, cfg *config.Config, repair bool, logger parser.Logger) (*emitter, error) {
	shared, err := schemautil.NewSharedTypes(cfg.SharedSchemas)
	if err != nil {
		return nil, err
	}
	var components *parser.OrderedMap[parser.Schema]
	if doc.Components != nil {
		components = doc.Components.Schemas
	}
	return &emitter{
		doc:       doc,
		resolver:  resolver.New(components, resolver.WithRepair(repair), resolver.WithLogger(logger)),
		rctx:      resolver.NewContext(),
		shared:    shared,
		logger:    logger,
		expanding: make(map[string]bool),
	}, nil
}

// tagModule accumulates the operations of one tag.
type tagModule struct {
	tag       string
	file      string
	body      *bytes.Buffer
	functions map[string]int
}

// uniqueName returns base, or base with a numeric suffix when an earlier
// operation of the module already produced it.
func (m *tagModule) uniqueName(base string) (string, bool) {
	n := m.functions[base]
	m.functions[base] = n + 1
	if n == 0 {
		return "", false
	}
	return strconv.Itoa(n + 1), true
}

// emitModules walks paths in document order and methods in get, post, put,
// delete, patch order, appending each operation to its tag module.
func (e *emitter) emitModules(result *GenerateResult) ([]*tagModule, error) {
	var modules []*tagModule
	byTag := make(map[string]*tagModule)
	files := map[string]bool{SharedFileName: true}

	for path, item := range e.doc.Paths.All() {
		for method, op := range item.Operations() {
			tag := op.Tag()
			m, ok := byTag[tag]
			if !ok {
				m = &tagModule{
					tag:       tag,
					file:      uniqueFileName(naming.FileName(tag), files),
					body:      getBuffer(),
					functions: make(map[string]int),
				}
				byTag[tag] = m
				modules = append(modules, m)
			}

			t := &operationTarget{
				Path:     path,
				Method:   method,
				Tag:      tag,
				Item:     item,
				Op:       op,
				Function: naming.FunctionName(method, path),
				TypeBase: naming.TypeBase(method, path),
			}
			if suffix, dup := m.uniqueName(t.Function); dup {
				e.issues = append(e.issues, issues.Issue{
					Path:      t.issuePath(),
					Message:   fmt.Sprintf("function name %s already used in module %s, emitted as %s", t.Function, tag, t.Function+suffix),
					Severity:  SeverityWarning,
					Operation: t.context(),
				})
				t.Function += suffix
				t.TypeBase += suffix
			}

			summary, err := e.emitOperation(m.body, t)
			if err != nil {
				for _, m := range modules {
					putBuffer(m.body)
				}
				return nil, err
			}
			result.Operations = append(result.Operations, *summary)
		}
	}
	return modules, nil
}

// uniqueFileName returns name with a ".ts" extension, suffixed when a
// previous module already claimed it.
func uniqueFileName(name string, taken map[string]bool) string {
	file := name + ".ts"
	for i := 2; taken[file]; i++ {
		file = name + "_" + strconv.Itoa(i) + ".ts"
	}
	taken[file] = true
	return file
}
