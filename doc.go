// Package openapigen turns OpenAPI 3.0/3.1 descriptions into typed TypeScript
// clients for axios.
//
// # Overview
//
// The library is organised as a pipeline, leaves first:
//
//   - parser: the Schema tagged union and the Document model, decoded from
//     JSON or YAML with declaration order preserved
//   - config: the shared-type table used for structural deduplication
//   - resolver: $ref following, composed-schema inheritance and the
//     best-effort repair of untyped nullable components
//   - generator: TypeScript type and function emission, grouped by tag
//
// # Quick Start
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("openapi.json"),
//		generator.WithConfigPath("shared.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.PurgeAndWriteFiles("./client"); err != nil {
//		log.Fatal(err)
//	}
//
// The generated directory contains __shared_schemas__.ts with the configured
// shared types and one <Tag>.ts file per operation tag. Every operation
// becomes an async function returning a status-tagged tuple:
//
//	const [status, body] = await postUsers(axios, request)
//	switch (status) {
//	case 200: ...
//	case 400: ...
//	}
//
// # Command line
//
//	openapigen [flags] [<configuration-file>] <openapi-file> <output-dir>
//
// The output directory is purged before the files are written. A usage error
// exits with status 5, any other failure with 1. The mcp subcommand serves
// the generator as MCP tools over stdio.
package openapigen
