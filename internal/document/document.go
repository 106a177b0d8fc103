// Package document turns letter files into plain text. Plain text and
// markdown pass through unchanged; HTML and PDF drafts have their text
// extracted first.
package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// Format identifies how a file's bytes are turned into text.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// FormatOf picks the format from the file extension. Unknown extensions
// are read as text.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	case ".pdf":
		return FormatPDF
	default:
		return FormatText
	}
}

// ReadText reads path and returns its letter text.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Extract(FormatOf(path), data)
}

// Extract converts data in the given format to plain text.
func Extract(format Format, data []byte) (string, error) {
	switch format {
	case FormatHTML:
		return extractHTML(data)
	case FormatPDF:
		return extractPDF(data)
	default:
		return string(data), nil
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}
	return buf.String(), nil
}

// blockElements start a new paragraph in extracted HTML text.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "blockquote": true, "pre": true, "address": true,
	"header": true, "footer": true, "table": true, "tr": true,
}

// extractHTML keeps the visible text of an HTML draft. Block elements become
// blank-line separated paragraphs and <br> becomes a line break, so the
// structure analyser still sees the greeting, body and sign-off.
func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}
	doc.Find("head, script, style, noscript, template").Remove()

	var (
		paras []string
		cur   strings.Builder
	)
	flush := func() {
		if p := normaliseLines(cur.String()); p != "" {
			paras = append(paras, p)
		}
		cur.Reset()
	}

	var walk func(sel *goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, s *goquery.Selection) {
			name := goquery.NodeName(s)
			switch {
			case name == "#text":
				cur.WriteString(strings.Map(flattenSpace, s.Text()))
			case name == "br":
				cur.WriteByte('\n')
			case blockElements[name]:
				flush()
				walk(s)
				flush()
			default:
				walk(s)
			}
		})
	}
	walk(doc.Selection)
	flush()

	return strings.Join(paras, "\n\n"), nil
}

// flattenSpace turns source-formatting whitespace into plain spaces.
func flattenSpace(r rune) rune {
	switch r {
	case '\n', '\r', '\t', '\f', ' ':
		return ' '
	}
	return r
}

// normaliseLines collapses runs of spaces on each line and drops empty lines.
func normaliseLines(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if l := strings.Join(strings.Fields(line), " "); l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}
