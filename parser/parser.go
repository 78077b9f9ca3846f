package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/openapigen/openapigen/oaserrors"
)

// Parser handles OpenAPI description parsing
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source description file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed document and metadata about the load.
//
// Callers should treat ParseResult as read-only after parsing; the generator
// assumes the document does not change during a run.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// When the source was not a file, it is "ParseBytes.<format>" or
	// "ParseReader.<format>".
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the declared openapi version string
	Version string
	// Document is the decoded description
	Document *Document
	// LoadTime is the time taken to read and decode the source
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats summarizes the document
	Stats DocumentStats
}

// Parse parses the description at path
func (p *Parser) Parse(path string) (*ParseResult, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	format := detectFormatFromPath(path)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	return p.parse(data, path, format, start)
}

// ParseReader parses a description read from r
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: "ParseReader", Message: "failed to read input", Cause: err}
	}
	format := detectFormatFromContent(data)
	return p.parse(data, "ParseReader."+string(format), format, start)
}

// ParseBytes parses a description held in memory
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	start := time.Now()
	format := detectFormatFromContent(data)
	return p.parse(data, "ParseBytes."+string(format), format, start)
}

func (p *Parser) parse(data []byte, source string, format SourceFormat, start time.Time) (*ParseResult, error) {
	root, err := DecodeNode(data)
	if err != nil {
		return nil, withSourcePath(err, source)
	}
	doc, err := DecodeDocument(root)
	if err != nil {
		return nil, withSourcePath(err, source)
	}

	result := &ParseResult{
		SourcePath:   source,
		SourceFormat: format,
		Version:      doc.OpenAPI,
		Document:     doc,
		LoadTime:     time.Since(start),
		SourceSize:   int64(len(data)),
		Stats:        GetDocumentStats(doc),
	}
	p.log().Info("parsed document",
		"source", source,
		"format", format,
		"version", result.Version,
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount,
		"schemas", result.Stats.SchemaCount,
		"size", FormatBytes(result.SourceSize),
		"duration", result.LoadTime,
	)
	return result, nil
}

// DecodeNode decodes JSON or YAML text into a node tree that keeps key order.
func DecodeNode(data []byte) (*yaml.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oaserrors.ParseError{Message: "empty document"}
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Message: "invalid JSON or YAML", Cause: err}
	}
	return &root, nil
}

// withSourcePath fills in the source of a ParseError that was raised
// without one.
func withSourcePath(err error, source string) error {
	var pe *oaserrors.ParseError
	if errors.As(err, &pe) && pe.Path == "" {
		pe.Path = source
		return err
	}
	return fmt.Errorf("%s: %w", source, err)
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes
// JSON typically starts with '{' or '[', while YAML does not
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
