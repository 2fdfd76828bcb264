package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-analytics/internal/shared/util"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?1?\s?)?(\d{3}[-.\s]?)?\d{3}[-.\s]?\d{4}`)
	spaceRun     = regexp.MustCompile(`\s+`)
)

// Parsed is the text view of an uploaded resume.
type Parsed struct {
	RawText     string
	CleanedText string
	WordCount   int
	Email       string
	Phone       string
}

// MimeFor maps an accepted file name to its content type.
func MimeFor(fileName string) (string, error) {
	switch util.LowerExt(fileName) {
	case ".pdf":
		return MimePDF, nil
	case ".docx":
		return MimeDOCX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, fileName)
	}
}

// ExtractTextFromBytes extracts text from an in-memory payload, dispatching on
// the file extension.
func ExtractTextFromBytes(ctx context.Context, data []byte, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	mime, err := MimeFor(fileName)
	if err != nil {
		return "", err
	}
	switch mime {
	case MimePDF:
		return extractPDF(data)
	default:
		return extractDOCX(data)
	}
}

// Parse extracts and normalizes resume text and pulls contact details.
func Parse(ctx context.Context, data []byte, fileName string) (Parsed, error) {
	raw, err := ExtractTextFromBytes(ctx, data, fileName)
	if err != nil {
		return Parsed{}, err
	}
	return ParseText(raw), nil
}

// ParseText builds a Parsed from already extracted text.
func ParseText(raw string) Parsed {
	cleaned := CleanText(raw)
	return Parsed{
		RawText:     raw,
		CleanedText: cleaned,
		WordCount:   len(strings.Fields(cleaned)),
		Email:       emailPattern.FindString(raw),
		Phone:       strings.TrimSpace(phonePattern.FindString(raw)),
	}
}

// CleanText collapses whitespace, lower-cases and trims.
func CleanText(text string) string {
	return strings.TrimSpace(strings.ToLower(spaceRun.ReplaceAllString(text, " ")))
}

func extractPDF(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty pdf data")
	}
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return stripDocxXML(string(raw)), nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.StartElement:
			if t.Name.Local == "tab" {
				buf.WriteString(" ")
			}
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
