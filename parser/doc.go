// Package parser decodes OpenAPI 3.0 and 3.1 descriptions into the model the
// generator consumes.
//
// Schemas are represented as a closed union: every node is exactly one of
// [Ref], [Composed], [Array], [Object], [Enum] or [Primitive], and each
// carries the shared keywords in [Meta]. Maps that are emitted in order
// (properties, paths, responses, content, components) are [OrderedMap]
// values, so declaration order survives decoding.
//
// JSON and YAML sources are both read through yaml.Node, which keeps key
// order without a second pass.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for path, item := range result.Document.Paths.All() {
//		for method, op := range item.Operations() {
//			fmt.Println(method, path, op.Tag())
//		}
//	}
//
// # Encoding
//
// [Document] and every schema variant implement json.Marshaler. Encoding
// keeps declaration order; decoding the output yields the same paths and
// components.
package parser
