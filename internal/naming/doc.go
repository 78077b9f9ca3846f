// Package naming derives TypeScript identifiers from OpenAPI paths, methods,
// parameter names and tags.
//
// Function and type names follow a fixed scheme: path segments lose every
// non-alphanumeric character and are capitalized (first letter upper, rest
// lower), so "/user-accounts/{id}" yields the segments "Useraccounts" and
// "Id". The function name is the method followed by the segments
// ("getUseraccountsId"); the type base is the segments followed by the
// capitalized method ("UseraccountsIdGet").
package naming
