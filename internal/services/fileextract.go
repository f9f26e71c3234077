package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

const docxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// FileExtractService turns document attachments into plain text so they can
// be sent to Gemini as text parts.
type FileExtractService struct{}

func NewFileExtractService() *FileExtractService {
	return &FileExtractService{}
}

type documentKind int

const (
	kindUnsupported documentKind = iota
	kindTXT
	kindPDF
	kindDOCX
)

func classifyDocument(contentType, filename string) documentKind {
	mime := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	switch mime {
	case "text/plain":
		return kindTXT
	case "application/pdf":
		return kindPDF
	case docxMimeType:
		return kindDOCX
	}

	// Check by extension as fallback
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return kindTXT
	case ".pdf":
		return kindPDF
	case ".docx":
		return kindDOCX
	}
	return kindUnsupported
}

// CanExtract reports whether ExtractText knows the document format.
func (s *FileExtractService) CanExtract(contentType, filename string) bool {
	return classifyDocument(contentType, filename) != kindUnsupported
}

func (s *FileExtractService) ExtractText(data []byte, contentType, filename string) (string, error) {
	switch classifyDocument(contentType, filename) {
	case kindTXT:
		return s.extractTXT(data)
	case kindPDF:
		return s.extractPDF(data)
	case kindDOCX:
		return s.extractDOCX(data)
	default:
		return "", fmt.Errorf("unsupported file type for text extraction: %s", contentType)
	}
}

func (s *FileExtractService) extractTXT(data []byte) (string, error) {
	text := normalizeExtractedText(string(data))
	if text == "" {
		return "", fmt.Errorf("text file is empty")
	}

	return text, nil
}

func (s *FileExtractService) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	text := normalizeExtractedText(b.String())
	if text == "" {
		return "", fmt.Errorf("no extractable text found in pdf")
	}

	return text, nil
}

func (s *FileExtractService) extractDOCX(data []byte) (string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var documentXML []byte
	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		documentXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}

	if len(documentXML) == 0 {
		return "", fmt.Errorf("docx document.xml not found")
	}

	text := normalizeExtractedText(stripDOCXML(documentXML))
	if text == "" {
		return "", fmt.Errorf("no extractable text found in docx")
	}

	return text, nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

func stripDOCXML(src []byte) string {
	s := string(src)

	// DOCX paragraphs and line breaks
	s = strings.ReplaceAll(s, "</w:p>", "\n")
	s = strings.ReplaceAll(s, "<w:br/>", "\n")
	s = strings.ReplaceAll(s, "<w:br />", "\n")
	s = strings.ReplaceAll(s, "<w:tab/>", "\t")

	s = xmlTagPattern.ReplaceAllString(s, "")

	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
	return replacer.Replace(s)
}

// normalizeExtractedText trims every line and collapses runs of blank lines
// into one.
func normalizeExtractedText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	buf := bytes.Buffer{}

	emptyCount := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			emptyCount++
			if emptyCount > 1 {
				continue
			}
			buf.WriteString("\n")
			continue
		}
		emptyCount = 0
		buf.WriteString(trimmed)
		buf.WriteString("\n")
	}

	return strings.TrimSpace(buf.String())
}
