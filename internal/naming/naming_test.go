package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"users", "Users"},
		{"userID", "Userid"},
		{"ORDERS", "Orders"},
		{"a", "A"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Capitalize(tt.input))
		})
	}
}

func TestPathSegments(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"root", "/", nil},
		{"simple", "/users", []string{"Users"}},
		{"template", "/users/{user_id}/posts", []string{"Users", "Userid", "Posts"}},
		{"hyphen", "/user-accounts", []string{"Useraccounts"}},
		{"trailing slash", "/a/b/", []string{"A", "B"}},
		{"symbol-only segment dropped", "/a/{-}/b", []string{"A", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PathSegments(tt.path))
		})
	}
}

func TestOperationNames(t *testing.T) {
	tests := []struct {
		method, path string
		fn, base     string
	}{
		{"get", "/users/{id}", "getUsersId", "UsersIdGet"},
		{"post", "/api/v1/Upload-File", "postApiV1Uploadfile", "ApiV1UploadfilePost"},
		{"delete", "/", "delete", "Delete"},
		{"PATCH", "/items", "patchItems", "ItemsPatch"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.fn, FunctionName(tt.method, tt.path))
			assert.Equal(t, tt.base, TypeBase(tt.method, tt.path))
		})
	}
}

func TestStatusName(t *testing.T) {
	assert.Equal(t, "200", StatusName("200"))
	assert.Equal(t, "Default", StatusName("default"))
}

func TestLettersOnly(t *testing.T) {
	assert.Equal(t, "PetDtonullable", LettersOnly("PetDto2_nullable"))
	assert.Equal(t, "", LettersOnly("123"))
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"id", "id"},
		{"page_size", "page_size"},
		{"page-size", "pageSize"},
		{"X-Request-ID", "xRequestID"},
		{"class", "class_"},
		{"request", "request_"},
		{"1st", "_1st"},
		{"$filter", "$filter"},
		{"---", "_"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Identifier(tt.input))
		})
	}
}

func TestPropertyKey(t *testing.T) {
	assert.Equal(t, "name", PropertyKey("name"))
	assert.Equal(t, "_links", PropertyKey("_links"))
	assert.Equal(t, `"content-type"`, PropertyKey("content-type"))
	assert.Equal(t, `"2fa"`, PropertyKey("2fa"))
	assert.Equal(t, `"with \"quote\""`, PropertyKey(`with "quote"`))
}

func TestAccessor(t *testing.T) {
	assert.Equal(t, "request.file", Accessor("request", "file"))
	assert.Equal(t, `request["file-name"]`, Accessor("request", "file-name"))
}

func TestFileName(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"Users", "Users"},
		{"User Accounts", "User_Accounts"},
		{"a/b", "a_b"},
		{"v1.2-beta_x", "v1.2-beta_x"},
		{"..", "__"},
		{"", "Default"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.tag))
		})
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"user_profile", "UserProfile"},
		{"api-client", "ApiClient"},
		{"com.example.api", "ComExampleApi"},
		{"/api/v1/users", "ApiV1Users"},
		{"UserProfile", "UserProfile"},
		{"über_user", "ÜberUser"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "", ToCamelCase(""))
	assert.Equal(t, "userProfile", ToCamelCase("user_profile"))
	assert.Equal(t, "userProfile", ToCamelCase("UserProfile"))
}
