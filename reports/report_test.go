package reports

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeReport struct{ name string }

func (r fakeReport) Name() string           { return r.name }
func (r fakeReport) Synopsis() string       { return "fake report" }
func (r fakeReport) ConfigFile() string     { return r.name + ".yml" }
func (r fakeReport) Run(ctx *Context) error { return nil }

func TestRegisterLookupAll(t *testing.T) {
	before := len(All())
	Register(fakeReport{name: "zz-test-b"})
	Register(fakeReport{name: "zz-test-a"})

	if Lookup("zz-test-a") == nil {
		t.Error("Lookup failed for registered report")
	}
	if Lookup("no-such-report") != nil {
		t.Error("Lookup returned a report for an unregistered name")
	}

	all := All()
	if len(all) != before+2 {
		t.Errorf("All() returned %d reports, want %d", len(all), before+2)
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name() >= all[i].Name() {
			t.Errorf("All() not sorted: %q before %q", all[i-1].Name(), all[i].Name())
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(fakeReport{name: "zz-test-dup"})
	Register(fakeReport{name: "zz-test-dup"})
}

func TestContextWrite(t *testing.T) {
	ctx := &Context{OutputDir: t.TempDir()}
	if err := ctx.Write("out.txt", func(w io.Writer) error {
		_, err := io.WriteString(w, "hello\n")
		return err
	}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(ctx.Path("out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\n" {
		t.Errorf("output = %q", data)
	}
}

func TestContextCreateEscape(t *testing.T) {
	ctx := &Context{OutputDir: t.TempDir()}
	if _, err := ctx.Create(filepath.Join("..", "escape.txt")); err == nil {
		t.Error("path escaping the output directory was allowed")
	} else if !strings.Contains(err.Error(), "escapes") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestContextCreateMakesOutputDir(t *testing.T) {
	ctx := &Context{OutputDir: filepath.Join(t.TempDir(), "sub", "dir")}
	f, err := ctx.Create("out.txt")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	if _, err := os.Stat(ctx.Path("out.txt")); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}
