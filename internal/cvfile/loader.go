// Package cvfile reads CV documents off disk and turns them into plain
// text the analysis pipeline can consume. Format is decided by extension.
package cvfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/dleonov/go_skillgap/internal/engine"
)

// MaxFileSize caps CV uploads at 10 MB.
const MaxFileSize = 10 << 20

// Load reads a CV file and extracts its text. Supported: .txt, .md (raw),
// .pdf, .docx, .html, .htm.
func Load(path string) (string, error) {
	engine.IncrFileLoads()

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat cv file: %w", err)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("cv file %s is empty", path)
	}
	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("cv file %s exceeds %d bytes", path, MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read cv file: %w", err)
	}

	switch Ext(path) {
	case ".txt", ".md":
		return string(data), nil
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".html", ".htm":
		return extractHTML(data)
	default:
		return "", fmt.Errorf("unsupported cv file type: %s", Ext(path))
	}
}

// Ext returns the lowercased file extension.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()
	return doc.Editable().GetContent(), nil
}

// extractHTML converts markup to Markdown, which keeps section headers and
// bullet structure the extractor relies on.
func extractHTML(data []byte) (string, error) {
	text, err := htmltomarkdown.ConvertString(string(data))
	if err != nil {
		return "", fmt.Errorf("convert html: %w", err)
	}
	return text, nil
}
