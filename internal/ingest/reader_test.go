package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "SBI_home_loan_mitc.txt", "Processing fee: 0.50%\r\nInterest   rate: 8.5% p.a.\r\n\r\n\r\n\r\nContact us.\n")

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if doc.Filename != "SBI_home_loan_mitc.txt" {
		t.Errorf("filename = %s", doc.Filename)
	}
	if doc.BankHint != "SBI" {
		t.Errorf("bank hint = %q, want SBI", doc.BankHint)
	}
	if len(doc.ID) != 16 {
		t.Errorf("id = %q, want 16 hex chars", doc.ID)
	}
	if strings.Contains(doc.Text, "\r") {
		t.Error("carriage returns survived cleaning")
	}
	if strings.Contains(doc.Text, "Interest   rate") {
		t.Error("space runs survived cleaning")
	}
	if strings.Contains(doc.Text, "\n\n\n") {
		t.Error("blank-line runs survived cleaning")
	}
}

func TestLoadFileStableID(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "a.txt", "same content")
	p2 := writeFile(t, dir, "b.txt", "same content")

	d1, err := LoadFile(p1)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := LoadFile(p2)
	if err != nil {
		t.Fatal(err)
	}
	if d1.ID != d2.ID {
		t.Error("identical content produced different IDs")
	}
}

func TestLoadFileHTML(t *testing.T) {
	dir := t.TempDir()
	page := `<html><head><style>body{color:red}</style><script>alert(1)</script></head>
<body><h1>HDFC Home Loan</h1>
<table><tr><td>Processing fee</td><td>0.50% or Rs.3,000 whichever is higher</td></tr>
<tr><td>Foreclosure</td><td>NIL for floating rate</td></tr></table>
</body></html>`
	path := writeFile(t, dir, "hdfc_mitc.html", page)

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if doc.BankHint != "HDFC" {
		t.Errorf("bank hint = %q", doc.BankHint)
	}
	if strings.Contains(doc.Text, "alert(1)") || strings.Contains(doc.Text, "color:red") {
		t.Error("script/style content leaked into text")
	}
	if !strings.Contains(doc.Text, "0.50% or Rs.3,000 whichever is higher") {
		t.Errorf("table cell text missing:\n%s", doc.Text)
	}
	// table rows must stay on separate lines for the row-oriented patterns
	feeLine := ""
	for _, line := range strings.Split(doc.Text, "\n") {
		if strings.Contains(line, "Processing fee") {
			feeLine = line
		}
	}
	if strings.Contains(feeLine, "Foreclosure") {
		t.Error("separate table rows merged into one line")
	}
}

func TestLoadFileUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.pdf", "%PDF-1.4")

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "b")
	writeFile(t, dir, "a.html", "<p>a</p>")
	writeFile(t, dir, "ignore.pdf", "x")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	paths, err := ListDocuments(dir)
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2: %v", len(paths), paths)
	}
	if filepath.Base(paths[0]) != "a.html" || filepath.Base(paths[1]) != "b.txt" {
		t.Errorf("paths not sorted: %v", paths)
	}
}
