// Copyright Open Responses Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/nguyenthenguyen/docx"
)

// extractDOCX returns the body paragraphs of a Word document joined by
// newlines. Empty paragraphs keep their (empty) line.
func extractDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	r, err := docx.ReadDocxFromMemory(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("open DOCX: %w", err)
	}

	paragraphs, err := docxParagraphs(r.Editable().GetContent())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(paragraphs, "\n")), nil
}

// docxParagraphs parses word/document.xml and returns the text of each
// top-level paragraph of the body in document order.
func docxParagraphs(documentXML string) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(documentXML); err != nil {
		return nil, fmt.Errorf("parse document.xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parse document.xml: no root element")
	}
	body := root.SelectElement("body")
	if body == nil {
		return nil, fmt.Errorf("parse document.xml: missing body")
	}

	var paragraphs []string
	for _, p := range body.SelectElements("p") {
		paragraphs = append(paragraphs, paragraphText(p))
	}
	return paragraphs, nil
}

// paragraphText returns the text of the runs of p, including runs inside
// hyperlinks. Drawings, text boxes and other embedded content are skipped.
func paragraphText(p *etree.Element) string {
	var sb strings.Builder
	for _, child := range p.ChildElements() {
		switch child.Tag {
		case "r":
			writeRunText(child, &sb)
		case "hyperlink":
			for _, r := range child.SelectElements("r") {
				writeRunText(r, &sb)
			}
		}
	}
	return sb.String()
}

// writeRunText appends the visible text of a single w:r element.
func writeRunText(r *etree.Element, sb *strings.Builder) {
	for _, child := range r.ChildElements() {
		switch child.Tag {
		case "t":
			sb.WriteString(child.Text())
		case "tab":
			sb.WriteString("\t")
		case "br", "cr":
			if typ := child.SelectAttrValue("type", "textWrapping"); typ == "textWrapping" {
				sb.WriteString("\n")
			}
		case "noBreakHyphen":
			sb.WriteString("-")
		}
	}
}
