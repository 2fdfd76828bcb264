package report

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Run is a piece of text with a style from StyleMap.
type Run struct {
	Text  string
	Style string
}

// Document accumulates WordprocessingML body content.
type Document struct {
	body strings.Builder
}

func NewDocument() *Document {
	return &Document{}
}

// Paragraph appends a left-aligned paragraph made of runs.
func (d *Document) Paragraph(runs ...Run) {
	d.paragraph("", runs)
}

// Centered appends a centered paragraph.
func (d *Document) Centered(runs ...Run) {
	d.paragraph("center", runs)
}

// Heading appends a section heading.
func (d *Document) Heading(text string) {
	d.paragraph("", []Run{{Text: text, Style: "heading"}})
}

// Spacer appends an empty paragraph.
func (d *Document) Spacer() {
	d.body.WriteString("<w:p/>")
}

// Table appends a bordered table. When header is true the first row uses the
// tableHead style.
func (d *Document) Table(rows [][]string, header bool) {
	if len(rows) == 0 {
		return
	}
	d.body.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/><w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(&d.body, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="%s"/>`, side, GridColor)
	}
	d.body.WriteString(`</w:tblBorders></w:tblPr>`)
	for i, row := range rows {
		style := "tableCell"
		if header && i == 0 {
			style = "tableHead"
		}
		d.body.WriteString("<w:tr>")
		for _, cell := range row {
			d.body.WriteString("<w:tc>")
			if fill := StyleMap[style].Fill; fill != "" {
				fmt.Fprintf(&d.body, `<w:tcPr><w:shd w:val="clear" w:color="auto" w:fill="%s"/></w:tcPr>`, fill)
			}
			d.paragraph("", []Run{{Text: cell, Style: style}})
			d.body.WriteString("</w:tc>")
		}
		d.body.WriteString("</w:tr>")
	}
	d.body.WriteString("</w:tbl>")
}

func (d *Document) paragraph(align string, runs []Run) {
	d.body.WriteString("<w:p>")
	if align != "" {
		fmt.Fprintf(&d.body, `<w:pPr><w:jc w:val="%s"/></w:pPr>`, align)
	}
	for _, r := range runs {
		writeRun(&d.body, r)
	}
	d.body.WriteString("</w:p>")
}

func writeRun(b *strings.Builder, r Run) {
	style := StyleMap[r.Style]
	b.WriteString("<w:r>")
	var props strings.Builder
	if style.Bold {
		props.WriteString("<w:b/>")
	}
	if style.Italic {
		props.WriteString("<w:i/>")
	}
	if style.Color != "" {
		fmt.Fprintf(&props, `<w:color w:val="%s"/>`, style.Color)
	}
	if style.Size > 0 {
		fmt.Fprintf(&props, `<w:sz w:val="%s"/>`, strconv.Itoa(style.Size))
	}
	if props.Len() > 0 {
		b.WriteString("<w:rPr>" + props.String() + "</w:rPr>")
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	_ = xml.EscapeText(b, []byte(r.Text))
	b.WriteString("</w:t></w:r>")
}

// DocumentXML returns the word/document.xml part.
func (d *Document) DocumentXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="` + wordNS + `"><w:body>` +
		d.body.String() +
		`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="720" w:right="1080" w:bottom="720" w:left="1080" w:header="0" w:footer="0" w:gutter="0"/></w:sectPr>` +
		`</w:body></w:document>`
}

// Bytes packages the document as a .docx archive.
func (d *Document) Bytes(modified time.Time) ([]byte, error) {
	docXML := d.DocumentXML()
	if err := validateXML(docXML); err != nil {
		return nil, err
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)
	parts := []struct {
		name    string
		content string
	}{
		{name: "[Content_Types].xml", content: contentTypesXML},
		{name: "_rels/.rels", content: packageRelsXML},
		{name: "word/document.xml", content: docXML},
	}
	for _, part := range parts {
		if err := writeZipFile(writer, part.name, modified, []byte(part.content)); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func writeZipFile(writer *zip.Writer, name string, modified time.Time, content []byte) error {
	header := zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified}
	dst, err := writer.CreateHeader(&header)
	if err != nil {
		return err
	}
	_, err = dst.Write(content)
	return err
}

func validateXML(xmlText string) error {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))
	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("document.xml parse failed: %w\n%s", err, firstLines(xmlText, 5))
		}
	}
}

func firstLines(text string, count int) string {
	if count <= 0 {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) > count {
		lines = lines[:count]
	}
	return strings.Join(lines, "\n")
}
