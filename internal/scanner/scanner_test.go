package scanner

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/sand97/nest-responses-generator/internal/config"
	"github.com/sand97/nest-responses-generator/internal/diagnostic"
	"github.com/sand97/nest-responses-generator/internal/testutil"
)

const testRoot = "/proj"

// memFSFromTxtar seeds a MemFS with a txtar fixture, rooted at testRoot.
func memFSFromTxtar(t *testing.T, name string) *testutil.MemFS {
	t.Helper()
	archive, err := txtar.ParseFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	files := make(map[string]string, len(archive.Files))
	for _, f := range archive.Files {
		files[testRoot+"/"+f.Name] = string(f.Data)
	}
	return testutil.NewMemFS(files)
}

func newTestPass(fs *testutil.MemFS) (*Pass, *diagnostic.Collector) {
	cfg := config.DefaultConfig()
	diags := diagnostic.NewCollector(false, false)
	return NewPass(fs, testRoot, &cfg, diags), diags
}

func TestPass_GenerateDeclarations(t *testing.T) {
	fs := memFSFromTxtar(t, "users.txtar")
	pass, diags := newTestPass(fs)

	processed, err := pass.GenerateDeclarations()
	if err != nil {
		t.Fatal(err)
	}
	if processed != 1 {
		t.Errorf("processed = %d", processed)
	}
	if diags.HasErrors() {
		t.Errorf("unexpected errors:\n%s", diags.FormatAll())
	}

	out, ok := fs.ReadFile(testRoot + "/src/users/users.service.responses.ts")
	if !ok {
		t.Fatalf("declaration module not written; writes: %v", fs.Writes())
	}
	for _, want := range []string{
		"// Source: src/users/users.service.ts",
		"export class UsersServiceFindAllResponseItem {",
		"export type UsersServiceFindAllResponse = UsersServiceFindAllResponseItem[];",
		"export class UsersServiceFindOneResponse {",
		"export class UsersServiceRemoveResponse {",
		"@ApiProperty({ example: true })",
		"deleted: boolean;",
		"export const UsersServiceResponses = {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	// Private members are not analyzable.
	if strings.Contains(out, "audit") {
		t.Errorf("private member leaked into output:\n%s", out)
	}

	mod, ok := pass.UnitModule("UsersService")
	if !ok || len(mod.Members) != 4 {
		t.Errorf("UnitModule = %+v, %v", mod, ok)
	}
}

func TestPass_EndpointWiring(t *testing.T) {
	fs := memFSFromTxtar(t, "users.txtar")
	pass, diags := newTestPass(fs)

	if _, err := pass.GenerateDeclarations(); err != nil {
		t.Fatal(err)
	}
	table, err := pass.GenerateEndpointWiring()
	if err != nil {
		t.Fatal(err)
	}
	if diags.HasErrors() {
		t.Errorf("unexpected errors:\n%s", diags.FormatAll())
	}

	findAll, ok := table.Find("UsersController", "findAll")
	if !ok {
		t.Fatal("findAll mapping missing")
	}
	if !findAll.IsArray || findAll.Status != 200 || findAll.Verb != "GET" {
		t.Errorf("findAll = %+v", findAll)
	}
	if findAll.Description != "Returns all users." {
		t.Errorf("description = %q", findAll.Description)
	}
	if findAll.Module != "src/users/users.service.responses" {
		t.Errorf("module = %q", findAll.Module)
	}

	create, _ := table.Find("UsersController", "create")
	if create.Status != 201 || create.Verb != "POST" {
		t.Errorf("create = %+v", create)
	}
	remove, _ := table.Find("UsersController", "remove")
	if remove.IsArray || remove.Status != 200 {
		t.Errorf("remove = %+v", remove)
	}

	mapSrc, ok := fs.ReadFile(testRoot + "/src/responses.map.ts")
	if !ok {
		t.Fatal("responses.map.ts not written")
	}
	if !strings.Contains(mapSrc, "import { UsersServiceResponses } from './users/users.service.responses';") {
		t.Errorf("lookup module import wrong:\n%s", mapSrc)
	}
	if !strings.Contains(mapSrc, "export function InferResponse(") {
		t.Errorf("runtime marker missing:\n%s", mapSrc)
	}

	manifest, ok := fs.ReadFile(testRoot + "/src/responses.manifest.json")
	if !ok {
		t.Fatal("manifest not written")
	}
	if !strings.Contains(manifest, `"endpoint": "UsersController"`) {
		t.Errorf("manifest missing endpoint:\n%s", manifest)
	}
}

func TestPass_ManifestDisabled(t *testing.T) {
	fs := memFSFromTxtar(t, "users.txtar")
	cfg := config.DefaultConfig()
	off := false
	cfg.Output.Manifest = &off
	diags := diagnostic.NewCollector(false, false)
	pass := NewPass(fs, testRoot, &cfg, diags)

	if _, err := pass.GenerateDeclarations(); err != nil {
		t.Fatal(err)
	}
	if _, err := pass.GenerateEndpointWiring(); err != nil {
		t.Fatal(err)
	}
	if fs.FileExists(testRoot + "/src/responses.manifest.json") {
		t.Error("manifest written despite output.manifest=false")
	}
}

func TestPass_StalenessGate(t *testing.T) {
	fs := memFSFromTxtar(t, "users.txtar")

	pass, _ := newTestPass(fs)
	if _, err := pass.GenerateDeclarations(); err != nil {
		t.Fatal(err)
	}
	firstWrites := len(fs.Writes())
	if firstWrites == 0 {
		t.Fatal("first run wrote nothing")
	}

	// Second run over unchanged sources writes nothing, but the unit still
	// counts as processed.
	pass, _ = newTestPass(fs)
	processed, err := pass.GenerateDeclarations()
	if err != nil {
		t.Fatal(err)
	}
	if processed != 1 {
		t.Errorf("processed = %d on fresh run", processed)
	}
	if len(fs.Writes()) != firstWrites {
		t.Errorf("second run rewrote fresh output: %v", fs.Writes())
	}

	// Touching the source makes the output stale again.
	fs.Tick()
	source := testRoot + "/src/users/users.service.ts"
	text, _ := fs.ReadFile(source)
	if err := fs.WriteFile(source, text, false); err != nil {
		t.Fatal(err)
	}
	fs.Tick()
	pass, _ = newTestPass(fs)
	if _, err := pass.GenerateDeclarations(); err != nil {
		t.Fatal(err)
	}
	if len(fs.Writes()) != firstWrites+2 {
		t.Errorf("stale output not rewritten: %v", fs.Writes())
	}

	// Force bypasses the gate regardless of mtimes.
	pass, _ = newTestPass(fs)
	pass.Force = true
	if _, err := pass.GenerateDeclarations(); err != nil {
		t.Fatal(err)
	}
	if len(fs.Writes()) != firstWrites+3 {
		t.Errorf("force run skipped rewrite: %v", fs.Writes())
	}
}

func TestPass_ListHeuristics(t *testing.T) {
	fs := testutil.NewMemFS(map[string]string{
		testRoot + "/src/orders/orders.service.ts": `export class OrdersService {
  getAllOrders() {
    return this.repo.find() || [];
  }

  findAllPaginated(page: number) {
    return { items: [], total: 0, page, limit: 20 };
  }

  findAllPagedIds(): string[] {
    return this.repo.ids();
  }
}
`,
		testRoot + "/src/orders/orders.controller.ts": `import { Controller, Get } from '@nestjs/common';

@Controller('orders')
export class OrdersController {
  @Get()
  getAllOrders() {
    return this.ordersService.getAllOrders();
  }

  @Get('paged')
  findAllPaginated(page) {
    return this.ordersService.findAllPaginated(page);
  }

  @Get('paged/ids')
  findAllPagedIds() {
    return this.ordersService.findAllPagedIds();
  }
}
`,
	})
	pass, _ := newTestPass(fs)
	if _, err := pass.GenerateDeclarations(); err != nil {
		t.Fatal(err)
	}
	table, err := pass.GenerateEndpointWiring()
	if err != nil {
		t.Fatal(err)
	}

	all, ok := table.Find("OrdersController", "getAllOrders")
	if !ok || !all.IsArray {
		t.Errorf("getAllOrders = %+v, %v", all, ok)
	}
	paged, ok := table.Find("OrdersController", "findAllPaginated")
	if !ok || paged.IsArray {
		t.Errorf("findAllPaginated = %+v, %v", paged, ok)
	}
	// The paged exemption also overrides an array-proven shape.
	ids, ok := table.Find("OrdersController", "findAllPagedIds")
	if !ok || ids.IsArray {
		t.Errorf("findAllPagedIds = %+v, %v", ids, ok)
	}
}

func TestPass_UnpairedControllerWarns(t *testing.T) {
	fs := testutil.NewMemFS(map[string]string{
		testRoot + "/src/orphan/orphan.controller.ts": `import { Controller, Get } from '@nestjs/common';

@Controller('orphan')
export class OrphanController {
  @Get()
  findAll() {
    return [];
  }
}
`,
	})
	pass, diags := newTestPass(fs)
	if _, err := pass.GenerateDeclarations(); err != nil {
		t.Fatal(err)
	}
	table, err := pass.GenerateEndpointWiring()
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Mappings) != 0 {
		t.Errorf("orphan controller produced mappings: %+v", table.Mappings)
	}
	warned := false
	for _, d := range diags.Diagnostics() {
		if d.Category == diagnostic.CategoryConfigurationFailure {
			warned = true
		}
	}
	if !warned {
		t.Error("expected a configuration-failure warning")
	}
	if fs.FileExists(testRoot + "/src/responses.map.ts") {
		t.Error("lookup module written without any mappings")
	}
}

func TestPass_ServiceWithoutMembersSkipped(t *testing.T) {
	fs := testutil.NewMemFS(map[string]string{
		testRoot + "/src/empty/empty.service.ts": `export class EmptyService {
  private helper() {
    return 1;
  }
}
`,
	})
	pass, _ := newTestPass(fs)
	processed, err := pass.GenerateDeclarations()
	if err != nil {
		t.Fatal(err)
	}
	if processed != 0 {
		t.Errorf("processed = %d", processed)
	}
	if fs.FileExists(testRoot + "/src/empty/empty.service.responses.ts") {
		t.Error("empty unit produced an output file")
	}
}

func TestPass_RewriteEndpoints(t *testing.T) {
	fs := memFSFromTxtar(t, "users.txtar")
	pass, diags := newTestPass(fs)

	if _, err := pass.GenerateDeclarations(); err != nil {
		t.Fatal(err)
	}
	table, err := pass.GenerateEndpointWiring()
	if err != nil {
		t.Fatal(err)
	}
	changed := pass.RewriteEndpoints(table)
	if changed != 1 {
		t.Errorf("changed = %d", changed)
	}
	if diags.HasErrors() {
		t.Errorf("unexpected errors:\n%s", diags.FormatAll())
	}

	out, _ := fs.ReadFile(testRoot + "/src/users/users.controller.ts")
	if strings.Contains(out, "@InferResponse()") {
		t.Errorf("markers survived rewrite:\n%s", out)
	}
	for _, want := range []string{
		"@ApiOkResponse({ type: UsersServiceResponses.findAll, isArray: true, description: 'Returns all users.' })",
		"@ApiCreatedResponse({ type: UsersServiceResponses.create })",
		"import { UsersServiceResponses } from './users.service.responses';",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rewritten controller missing %q\n%s", want, out)
		}
	}

	// A second rewrite pass is a no-op.
	changed = pass.RewriteEndpoints(table)
	if changed != 0 {
		t.Errorf("second rewrite changed %d file(s)", changed)
	}
}

func TestDiscoverSources(t *testing.T) {
	fs := testutil.NewMemFS(map[string]string{
		testRoot + "/src/users/users.service.ts":          "",
		testRoot + "/src/users/users.controller.ts":       "",
		testRoot + "/src/users/users.service.spec.ts":     "",
		testRoot + "/src/users/users.d.ts":                "",
		testRoot + "/node_modules/pkg/lib.service.ts":     "",
		testRoot + "/src/node_modules/pkg/bad.service.ts": "",
	})
	cfg := config.DefaultConfig()
	cfg.Services.Exclude = []string{"**/*.spec.ts"}

	got := DiscoverSources(fs, testRoot, cfg.Services)
	if len(got) != 1 || got[0] != testRoot+"/src/users/users.service.ts" {
		t.Errorf("DiscoverSources = %v", got)
	}
}
