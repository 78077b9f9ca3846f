// Package generator emits a TypeScript client for the axios HTTP library
// from a parsed OpenAPI 3.x document.
//
// # Quick Start
//
// Generate a client using functional options:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("openapi.yaml"),
//		generator.WithConfigPath("shared.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.PurgeAndWriteFiles("./client"); err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.Repair = false
//	result, _ := g.Generate("openapi.yaml", nil)
//
// # Generated Files
//
//   - __shared_schemas__.ts: one type alias per configured shared type
//   - <Tag>.ts: one module per first operation tag ("Default" when untagged)
//
// Every tag module imports AxiosInstance and the shared types, then holds
// per operation a request type alias, one response type alias per declared
// status and an async function:
//
//	export async function getPetsId(axios: AxiosInstance, id: number): Promise<[200, PetsIdGet200Response] | [404, PetsIdGet404Response]> {
//
// The result is a [status, data] tuple. A declared "default" response is
// returned with status 0; without one, an undeclared status throws.
//
// # Type Mapping
//
//   - string → string (format binary → File)
//   - integer, number → number
//   - boolean → boolean
//   - array → Array<T>
//   - object → { name?: T } with an index signature for additionalProperties
//   - enum → union of literals
//   - anyOf/oneOf → union of alternatives
//   - nullable → null | T
//
// A schema structurally equal to a shared type (ignoring nullable) is
// emitted as that type's name wherever it occurs.
//
// See the exported GenerateResult and GenerateIssue types for complete details.
package generator
