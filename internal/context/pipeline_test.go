package context

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestRunCleanFile(t *testing.T) {
	path := writeTemp(t, "ok.mini", "int x = 1;\nwhile x < 5 do x = x + 1; end")

	ctx := New(nil)
	file, err := ctx.AddFile(path)
	if err != nil {
		t.Fatalf("AddFile: %v", err)
	}

	if !ctx.Run() {
		t.Fatalf("clean run reported errors: %v", ctx.Diagnostics.Diagnostics())
	}
	if len(file.Tokens) == 0 {
		t.Error("no tokens produced")
	}
	if file.AST == nil {
		t.Fatal("no tree produced")
	}
	if len(file.AST.Statements) != 2 {
		t.Errorf("got %d statements, want 2", len(file.AST.Statements))
	}
}

func TestRunReportsLexicalAndSyntaxErrors(t *testing.T) {
	ctx := New(nil)
	file := ctx.AddSource("<mem>", "int x = @;")

	if ctx.Run() {
		t.Fatal("run with defects reported success")
	}
	if !ctx.HasErrors() {
		t.Fatal("HasErrors is false")
	}
	// One illegal character plus one syntax error where the
	// initializer should be.
	if got := len(ctx.Diagnostics.Diagnostics()); got != 2 {
		t.Errorf("got %d diagnostics, want 2: %v", got, ctx.Diagnostics.Diagnostics())
	}
	// Even a broken run leaves tokens behind for inspection.
	if len(file.Tokens) == 0 {
		t.Error("no tokens produced")
	}
}

func TestAddFileMissing(t *testing.T) {
	ctx := New(nil)
	if _, err := ctx.AddFile("/no/such/file.mini"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestRunMultipleFiles(t *testing.T) {
	ctx := New(nil)
	good := ctx.AddSource("a.mini", "x = 1;")
	bad := ctx.AddSource("b.mini", "end")

	if ctx.Run() {
		t.Fatal("expected errors from b.mini")
	}
	if good.AST == nil || len(good.AST.Statements) != 1 {
		t.Errorf("a.mini did not parse independently: %#v", good.AST)
	}
	if bad.AST == nil {
		t.Error("b.mini produced no tree at all")
	}
	if !ctx.Diagnostics.HasFatal() {
		t.Error("stray end must surface as fatal")
	}
}

func TestGetAllFilesPreservesOrder(t *testing.T) {
	ctx := New(nil)
	ctx.AddSource("first.mini", "")
	ctx.AddSource("second.mini", "")
	ctx.AddSource("third.mini", "")

	files := ctx.GetAllFiles()
	want := []string{"first.mini", "second.mini", "third.mini"}
	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d", len(files), len(want))
	}
	for i, file := range files {
		if file.Path != want[i] {
			t.Errorf("file %d: got %s, want %s", i, file.Path, want[i])
		}
	}
}
