// Package ingest loads policy documents from disk and turns them into
// plain text ready for extraction. Supported inputs are pre-extracted text
// (.txt), markdown (.md) and saved HTML policy pages (.html/.htm); PDF
// conversion is expected to happen upstream.
package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/ppiankov/loanlens/internal/llm"
)

// Document is one loaded policy document
type Document struct {
	// ID is a stable content-derived identifier
	ID string
	// Filename is the base name of the source file
	Filename string
	// BankHint is the issuing bank guessed from the filename, if any
	BankHint string
	// Text is the cleaned document text
	Text string
}

var supportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
}

var (
	crlfRe      = regexp.MustCompile(`\r\n?`)
	trailingRe  = regexp.MustCompile(`[ \t]+\n`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
	spaceRunRe  = regexp.MustCompile(`[ \t]{2,}`)
	scriptStyle = map[string]bool{"script": true, "style": true, "noscript": true}
)

// LoadFile reads and cleans one document
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, fmt.Errorf("unsupported document type %q (want .txt, .md or .html)", ext)
	}

	text := string(data)
	if ext == ".html" || ext == ".htm" {
		text, err = visibleText(text)
		if err != nil {
			return nil, fmt.Errorf("parse html: %w", err)
		}
	}
	text = cleanText(text)

	filename := filepath.Base(path)
	hash := sha256.Sum256([]byte(text))

	return &Document{
		ID:       hex.EncodeToString(hash[:])[:16],
		Filename: filename,
		BankHint: llm.DetectBankHint(filename),
		Text:     text,
	}, nil
}

// ListDocuments returns the supported document files directly inside dir,
// sorted by name so batch runs are deterministic.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// cleanText normalizes line endings and squeezes runaway whitespace while
// keeping line structure, which the extraction patterns rely on.
func cleanText(text string) string {
	text = crlfRe.ReplaceAllString(text, "\n")
	text = trailingRe.ReplaceAllString(text, "\n")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// visibleText extracts the rendered text of an HTML page, dropping script
// and style subtrees. Block-ish elements become line breaks so tables and
// lists keep one entry per line.
func visibleText(src string) (string, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if scriptStyle[n.Data] {
				return
			}
		case html.TextNode:
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElement(n.Data) {
			b.WriteString("\n")
		}
	}
	walk(root)
	return b.String(), nil
}

func blockElement(tag string) bool {
	switch tag {
	case "p", "div", "br", "li", "tr", "td", "th", "table",
		"h1", "h2", "h3", "h4", "h5", "h6", "section", "article", "ul", "ol":
		return true
	}
	return false
}
