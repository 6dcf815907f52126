package analyzer_test

import (
	"testing"

	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/sand97/nest-responses-generator/internal/analyzer"
	"github.com/sand97/nest-responses-generator/internal/parse"
)

// firstClass parses inline source and returns the first class declaration.
func firstClass(t *testing.T, src string) *ast.Node {
	t.Helper()
	sf := parse.File("test.ts", src)
	for _, stmt := range sf.Statements.Nodes {
		if stmt.Kind == ast.KindClassDeclaration {
			return stmt
		}
	}
	t.Fatal("no class declaration in source")
	return nil
}

func TestParseDecorator_Simple(t *testing.T) {
	class := firstClass(t, `@Injectable class S {}`)
	info := analyzer.ParseDecorator(class.Decorators()[0])
	if info == nil || info.Name != "Injectable" {
		t.Errorf("got %+v", info)
	}
}

func TestParseDecorator_StringArg(t *testing.T) {
	class := firstClass(t, `@Controller('users') class C {}`)
	info := analyzer.ParseDecorator(class.Decorators()[0])
	if info == nil || info.Name != "Controller" {
		t.Fatalf("got %+v", info)
	}
	if len(info.Args) != 1 || info.Args[0] != "users" {
		t.Errorf("Args = %v", info.Args)
	}
}

func TestParseDecorator_NumericArg(t *testing.T) {
	m := method(t, `class C { @Post() @HttpCode(204) f() {} }`, "f")
	info := analyzer.FindDecorator(m, "HttpCode")
	if info == nil || info.NumericArg == nil || *info.NumericArg != 204 {
		t.Errorf("got %+v", info)
	}
}

func TestParseDecorator_ObjectArg(t *testing.T) {
	m := method(t, `class C { @InferResponse({ status: 'created', isArray: true }) f() {} }`, "f")
	info := analyzer.FindDecorator(m, "InferResponse")
	if info == nil || info.ObjectArg == nil {
		t.Fatalf("got %+v", info)
	}
	status, ok := info.ObjectArg["status"]
	if !ok || status.Kind != ast.KindStringLiteral || status.AsStringLiteral().Text != "created" {
		t.Errorf("status = %+v", status)
	}
	isArray, ok := info.ObjectArg["isArray"]
	if !ok || isArray.Kind != ast.KindTrueKeyword {
		t.Errorf("isArray = %+v", isArray)
	}
}

func TestHTTPVerbFor(t *testing.T) {
	cases := map[string]string{
		"Get":     "GET",
		"Post":    "POST",
		"Put":     "PUT",
		"Delete":  "DELETE",
		"Patch":   "PATCH",
		"Head":    "HEAD",
		"Options": "OPTIONS",
		"Sse":     "",
		"":        "",
	}
	for name, want := range cases {
		if got := analyzer.HTTPVerbFor(name); got != want {
			t.Errorf("HTTPVerbFor(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestMethodHTTPVerb(t *testing.T) {
	m := method(t, `class C { @Get(':id') findOne(id) {} }`, "findOne")
	if got := analyzer.MethodHTTPVerb(m); got != "GET" {
		t.Errorf("got %q", got)
	}

	m = method(t, `class C { helper() {} }`, "helper")
	if got := analyzer.MethodHTTPVerb(m); got != "" {
		t.Errorf("got %q for undecorated method", got)
	}
}

func TestFindDecorator_ClassLevel(t *testing.T) {
	class := firstClass(t, `@InferResponse() @Controller('users') class C {}`)
	if info := analyzer.FindDecorator(class, "InferResponse"); info == nil {
		t.Error("class-level marker not found")
	}
	if info := analyzer.FindDecorator(class, "Missing"); info != nil {
		t.Errorf("found nonexistent decorator: %+v", info)
	}
}
