package naming

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
	nonLetter       = regexp.MustCompile(`[^a-zA-Z]`)
	unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	identifier      = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// Capitalize upper-cases the first letter of s and lower-cases the rest.
// Example: "userID" -> "Userid"
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return cases.Title(language.Und).String(s)
}

// PathSegments splits a path template into capitalized segments with
// non-alphanumeric characters removed. Empty segments are dropped.
// Example: "/users/{user_id}/posts" -> ["Users", "Userid", "Posts"]
func PathSegments(path string) []string {
	var out []string
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		part = nonAlphanumeric.ReplaceAllString(part, "")
		if part == "" {
			continue
		}
		out = append(out, Capitalize(part))
	}
	return out
}

// FunctionName returns the client function name for an operation.
// Example: ("get", "/users/{id}") -> "getUsersId"
func FunctionName(method, path string) string {
	return strings.ToLower(method) + strings.Join(PathSegments(path), "")
}

// TypeBase returns the prefix of the request and response type names.
// Example: ("get", "/users/{id}") -> "UsersIdGet"
func TypeBase(method, path string) string {
	return strings.Join(PathSegments(path), "") + Capitalize(method)
}

// StatusName returns the type-name fragment for a response status.
// The "default" status becomes "Default".
func StatusName(status string) string {
	if status == "default" {
		return "Default"
	}
	return nonAlphanumeric.ReplaceAllString(status, "")
}

// LettersOnly removes everything but ASCII letters.
// Example: "PetDto2_nullable" -> "PetDtonullable"
func LettersOnly(name string) string {
	return nonLetter.ReplaceAllString(name, "")
}

// IsIdentifier reports whether s is a valid TypeScript identifier name.
// Reserved words are not rejected; see IsReserved.
func IsIdentifier(s string) bool {
	return identifier.MatchString(s)
}

// IsReserved reports whether s is a TypeScript reserved word or a name the
// generated function bodies use for themselves.
func IsReserved(s string) bool {
	_, ok := reservedWords[s]
	return ok
}

// Identifier converts an arbitrary parameter name into a usable variable
// name. Valid, unreserved identifiers are returned unchanged; anything else
// is camel-cased on its non-alphanumeric boundaries and suffixed with "_"
// when it would start with a digit or collide with a reserved word.
// Example: "page-size" -> "pageSize", "class" -> "class_"
func Identifier(name string) string {
	id := name
	if !IsIdentifier(id) {
		id = ToCamelCase(id)
	}
	if id == "" {
		return "_"
	}
	if unicode.IsDigit(rune(id[0])) {
		id = "_" + id
	}
	if IsReserved(id) {
		id += "_"
	}
	return id
}

// PropertyKey renders an object property name for a type literal: bare when
// it is an identifier, double-quoted otherwise.
// Example: "id" -> id, "content-type" -> "content-type"
func PropertyKey(name string) string {
	if IsIdentifier(name) {
		return name
	}
	return Quote(name)
}

// Accessor renders a member access on obj for a property name.
// Example: ("request", "file") -> request.file, ("request", "a-b") -> request["a-b"]
func Accessor(obj, name string) string {
	if IsIdentifier(name) {
		return obj + "." + name
	}
	return obj + "[" + Quote(name) + "]"
}

// Quote renders s as a double-quoted string literal.
func Quote(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(data)
}

// FileName returns a file-system safe base name for a tag module.
// Characters outside [A-Za-z0-9_.-] become underscores.
func FileName(tag string) string {
	name := unsafeFileChars.ReplaceAllString(tag, "_")
	if strings.Trim(name, ".") == "" {
		name = strings.ReplaceAll(name, ".", "_")
	}
	if name == "" {
		return "Default"
	}
	return name
}

// ToPascalCase converts a string to PascalCase.
// Every non-alphanumeric character is a separator that triggers
// capitalization of the next letter.
// Example: "user_profile" -> "UserProfile"
// Example: "api-client" -> "ApiClient"
func ToPascalCase(s string) string {
	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "X-Request-ID" -> "xRequestID"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

var reservedWords = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {}, "continue": {},
	"debugger": {}, "default": {}, "delete": {}, "do": {}, "else": {}, "enum": {},
	"export": {}, "extends": {}, "false": {}, "finally": {}, "for": {}, "function": {},
	"if": {}, "import": {}, "in": {}, "instanceof": {}, "new": {}, "null": {},
	"return": {}, "super": {}, "switch": {}, "this": {}, "throw": {}, "true": {},
	"try": {}, "typeof": {}, "var": {}, "void": {}, "while": {}, "with": {},
	"implements": {}, "interface": {}, "let": {}, "package": {}, "private": {},
	"protected": {}, "public": {}, "static": {}, "yield": {}, "await": {},
	"arguments": {}, "eval": {},
	// names used by the generated function bodies
	"axios": {}, "bearer": {}, "request": {}, "__query__": {}, "__queryString__": {},
	"__form__": {}, "__response__": {}, "__item__": {},
}
