// Copyright Open Responses Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// contentSelector lists the elements whose text is extracted, one line each.
// Nested matches are extracted again as their own line.
const contentSelector = "h1, p, li, table"

// extractHTML returns the stripped text of every content element in
// document order. Script and style elements are removed first.
func extractHTML(path string) (string, error) {
	r, err := readUTF8(path)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}
	doc.Find("script, style").Remove()

	var lines []string
	doc.Find(contentSelector).Each(func(_ int, sel *goquery.Selection) {
		var sb strings.Builder
		for _, n := range sel.Nodes {
			writeStrippedText(n, &sb)
		}
		lines = append(lines, sb.String())
	})
	return strings.Join(lines, "\n"), nil
}

// writeStrippedText concatenates the trimmed, non-empty text nodes below n
// without separators.
func writeStrippedText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(strings.TrimSpace(n.Data))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeStrippedText(c, sb)
	}
}
