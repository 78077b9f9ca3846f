// Package oaserrors provides structured error types for the openapigen library.
//
// Import path: github.com/openapigen/openapigen/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// so callers can tell a malformed description apart from an unsupported shape
// or a bad command line.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON decoding failures and structural issues
//   - [ReferenceError]: $ref targets that are missing or loop back on themselves
//   - [UnsupportedShapeError]: schemas or media types the emitters cannot render
//   - [ConfigError]: invalid shared-type configuration or conflicting options
//   - [UsageError]: wrong command-line usage (exit code 5)
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrUnsupportedShape]: Matches any [UnsupportedShapeError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrUsage]: Matches any [UsageError]
//
// # Usage Examples
//
//	result, err := generator.GenerateWithOptions(generator.WithFilePath("api.yaml"))
//	if errors.Is(err, oaserrors.ErrUnsupportedShape) {
//	    // The description uses a media type or schema the generator cannot render
//	}
//
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("Failed to resolve ref: %s\n", refErr.Ref)
//	}
package oaserrors
