package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/mathdoc/internal/pdftest"
)

func notesPDF(t *testing.T) string {
	t.Helper()
	return pdftest.WriteFile(t, "apuntes.pdf", "",
		pdftest.Page{Lines: []pdftest.Line{
			{Text: "Conjuntos", X: 72, Y: 700, Size: 24},
			{Text: "Teorema 1 Todo conjunto", X: 72, Y: 650, Size: 12},
			{Text: "Demostracion trivial", X: 72, Y: 630, Size: 12},
		}},
		pdftest.Page{Lines: []pdftest.Line{
			{Text: "Ejercicio 1", X: 72, Y: 700, Size: 12},
		}},
	)
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvert(t *testing.T) {
	input := notesPDF(t)
	output := filepath.Join(t.TempDir(), "out.html")

	stdout, _, err := run(t, "convert", input, "-o", output, "--date", "octubre 19, 2026", "--title", "Apuntes")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(stdout, output) || !strings.Contains(stdout, "Apuntes") {
		t.Errorf("summary missing output path or title:\n%s", stdout)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<h1>Apuntes</h1>",
		"<h2>Conjuntos</h2>",
		`<div class="teorema">Teorema 1 Todo conjunto</div>`,
		`<div class="ejercicio">Ejercicio 1</div>`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected html to contain %q:\n%s", want, data)
		}
	}
}

func TestConvert_DefaultOutput(t *testing.T) {
	input := notesPDF(t)
	if _, _, err := run(t, "convert", input, "--lang", "en"); err != nil {
		t.Fatalf("convert: %v", err)
	}
	data, err := os.ReadFile(strings.TrimSuffix(input, ".pdf") + ".html")
	if err != nil {
		t.Fatalf("default output not written: %v", err)
	}
	if !strings.Contains(string(data), `<html lang="en">`) || !strings.Contains(string(data), "<title>apuntes</title>") {
		t.Errorf("unexpected html:\n%s", data)
	}
}

func TestLines_Plain(t *testing.T) {
	input := notesPDF(t)
	stdout, _, err := run(t, "lines", input, "--plain", "--show-pages")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	want := strings.Join([]string{
		"   1  Heading      Conjuntos",
		"   1  Theorem      Teorema 1 Todo conjunto",
		"   1  Paragraph    Demostracion trivial",
		"   2  Exercise     Ejercicio 1",
		"",
	}, "\n")
	if stdout != want {
		t.Errorf("lines output = %q, want %q", stdout, want)
	}
}

func TestLines_Filter(t *testing.T) {
	input := notesPDF(t)
	stdout, _, err := run(t, "lines", input, "--category", "theorem,exercise", "--pages", "2")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if !strings.Contains(stdout, "Ejercicio 1") || strings.Contains(stdout, "Teorema") {
		t.Errorf("unexpected filtered output:\n%s", stdout)
	}

	if _, _, err := run(t, "lines", input, "--category", "corollary"); err == nil {
		t.Error("expected unknown category error")
	}
}

func TestLines_SortByPosition(t *testing.T) {
	input := pdftest.WriteFile(t, "orden.pdf", "", pdftest.Page{Lines: []pdftest.Line{
		{Text: "Segundo", X: 72, Y: 600, Size: 12},
		{Text: "Primero", X: 72, Y: 700, Size: 12},
	}})

	stdout, _, err := run(t, "lines", input, "--plain")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if want := "Paragraph    Segundo\nParagraph    Primero\n"; stdout != want {
		t.Errorf("default order = %q, want %q", stdout, want)
	}

	stdout, _, err = run(t, "lines", input, "--plain", "--sort-by-position")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if want := "Paragraph    Primero\nParagraph    Segundo\n"; stdout != want {
		t.Errorf("sorted order = %q, want %q", stdout, want)
	}
}

func TestFlags_Errors(t *testing.T) {
	input := notesPDF(t)
	if _, _, err := run(t, "lines", input, "--metric", "median"); err == nil {
		t.Error("expected unknown metric error")
	}
	if _, _, err := run(t, "convert"); err == nil {
		t.Error("expected missing argument error")
	}
	if _, _, err := run(t, "convert", filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("expected missing file error")
	}
}

func TestDefaultOutput(t *testing.T) {
	tests := map[string]string{
		"notes.pdf":        "notes.html",
		"dir/scan.tiff":    "dir/scan.html",
		"no-extension":     "no-extension.html",
		"archive.v2/notes": "archive.v2/notes.html",
	}
	for in, want := range tests {
		if got := defaultOutput(in); got != want {
			t.Errorf("defaultOutput(%q) = %q, want %q", in, got, want)
		}
	}
}
