package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sand97/nest-responses-generator/internal/diagnostic"
	"github.com/sand97/nest-responses-generator/internal/shape"
)

func manifestFixture() *Manifest {
	diags := diagnostic.NewCollector(false, false)
	users := GenerateDeclarations("UsersService", "src/users/users.service.ts", []Member{
		{Name: "findAll", Shape: shape.Array(userShape())},
	}, diags)
	auth := GenerateDeclarations("AuthService", "src/auth/auth.service.ts", []Member{
		{Name: "login", Shape: shape.Object(
			shape.Field{Name: "accessToken", Type: shape.Prim(shape.String)},
		)},
	}, diags)

	table := NewLookupTable()
	table.Add(sampleMapping("UsersController", "findAll"))
	login := sampleMapping("AuthController", "login")
	login.Unit = "AuthService"
	login.LookupObject = "AuthServiceResponses"
	login.Ref = "AuthServiceResponses.login"
	login.Module = "src/auth/auth.service.responses"
	table.Add(login)

	// Units passed out of order; BuildManifest must sort them.
	return BuildManifest([]*DeclarationModule{users, auth, nil}, table)
}

func TestBuildManifest_Sorted(t *testing.T) {
	m := manifestFixture()
	if m.Version != ManifestVersion {
		t.Errorf("Version = %d", m.Version)
	}
	if len(m.Units) != 2 || m.Units[0].Unit != "AuthService" || m.Units[1].Unit != "UsersService" {
		t.Errorf("units not sorted: %+v", m.Units)
	}
	if len(m.Endpoints) != 2 || m.Endpoints[0].Endpoint != "AuthController" {
		t.Errorf("endpoints not sorted: %+v", m.Endpoints)
	}
}

func TestManifestJSON_Deterministic(t *testing.T) {
	first, err := ManifestJSON(manifestFixture())
	if err != nil {
		t.Fatal(err)
	}
	second, err := ManifestJSON(manifestFixture())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two identical runs produced different manifest bytes")
	}
	if !bytes.HasSuffix(first, []byte("\n")) {
		t.Error("manifest missing trailing newline")
	}
}

func TestManifestJSON_OmitsRenderedSource(t *testing.T) {
	out, err := ManifestJSON(manifestFixture())
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if strings.Contains(s, "Generated by nest-responses") {
		t.Error("manifest embeds rendered TypeScript source")
	}
	for _, want := range []string{`"version": 1`, `"unit": "UsersService"`, `"fileBase": "users.service.responses"`, `"endpoint": "AuthController"`} {
		if !strings.Contains(s, want) {
			t.Errorf("manifest missing %q\n%s", want, s)
		}
	}
}
