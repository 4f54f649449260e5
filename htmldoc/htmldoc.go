// Package htmldoc flattens an HTML job-posting page into the plain text
// the parser consumes.
//
// The traversal keeps content blocks (headings, paragraphs, list items,
// table rows) as individual lines and drops script, style, and
// navigation boilerplate. Definition lists and two-column table rows,
// the way many posting sites lay out "label / value" pairs, are joined
// with a full-width colon so the downstream header detector sees them as
// inline label-value lines.
package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Extract parses the HTML read from r and returns the flattened posting
// text, one content block per line.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	return ExtractNode(doc), nil
}

// ExtractString is a convenience wrapper around Extract for HTML already
// held in a string.
func ExtractString(src string) (string, error) {
	return Extract(strings.NewReader(src))
}

// ExtractNode flattens an already-parsed HTML tree.
func ExtractNode(doc *html.Node) string {
	e := &extractor{}
	if body := findElement(doc, "body"); body != nil {
		e.walk(body)
	} else {
		e.walk(doc)
	}
	return strings.Join(e.lines, "\n")
}

type extractor struct {
	lines []string
}

// emit appends the non-empty lines of text, splitting on the newlines
// that <br> produces.
func (e *extractor) emit(text string) {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			e.lines = append(e.lines, trimmed)
		}
	}
}

func (e *extractor) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) || isBoilerplate(n) {
			return
		}

		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "blockquote", "figcaption":
			e.emit(textContent(n))
			return

		case "dt":
			// Paired with the following dd by the dl case; standalone dt
			// still becomes its own line.
			e.emit(textContent(n))
			return

		case "dl":
			e.walkDefinitionList(n)
			return

		case "tr":
			e.emitRow(n)
			return

		case "div":
			if !hasBlockChildren(n) {
				e.emit(textContent(n))
				return
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		e.walk(c)
	}
}

// walkDefinitionList joins each dt with its dd values as a label-value
// line ("給与：月給40万円").
func (e *extractor) walkDefinitionList(dl *html.Node) {
	var label string
	var values []string
	flush := func() {
		switch {
		case label != "" && len(values) > 0:
			e.emit(label + "：" + strings.Join(values, " "))
		case label != "":
			e.emit(label)
		}
		label = ""
		values = nil
	}

	for c := dl.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "dt":
			flush()
			label = strings.TrimSpace(textContent(c))
		case "dd":
			if v := strings.TrimSpace(textContent(c)); v != "" {
				values = append(values, v)
			}
		}
	}
	flush()
}

// emitRow flattens a table row. A two-cell row or a row led by a header
// cell becomes a label-value line; anything else joins its cells with
// spaces.
func (e *extractor) emitRow(tr *html.Node) {
	type cell struct {
		text   string
		header bool
	}
	var cells []cell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			if t := strings.TrimSpace(textContent(c)); t != "" {
				cells = append(cells, cell{text: t, header: c.Data == "th"})
			}
		}
	}

	switch {
	case len(cells) == 0:
		return
	case len(cells) == 2 && (cells[0].header || !cells[1].header):
		e.emit(cells[0].text + "：" + cells[1].text)
	default:
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = c.text
		}
		e.emit(strings.Join(parts, " "))
	}
}

// textContent gathers the text beneath n, rendering <br> as a newline so
// emit can split it back into lines.
func textContent(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if shouldSkipElement(n.Data) {
				return
			}
			if n.Data == "br" {
				b.WriteByte('\n')
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}

// shouldSkipElement reports whether an element never contributes posting
// text.
func shouldSkipElement(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed", "head":
		return true
	}
	return false
}

// isBoilerplate reports whether n is a navigation or page-chrome region:
// semantic HTML5 elements plus the usual class/id naming conventions.
func isBoilerplate(n *html.Node) bool {
	switch n.Data {
	case "nav", "aside", "footer", "header":
		return true
	}
	marker := strings.ToLower(attr(n, "class") + " " + attr(n, "id") + " " + attr(n, "role"))
	for _, pat := range []string{"navbar", "navigation", "breadcrumb", "sidebar", "footer", "cookie", "banner"} {
		if strings.Contains(marker, pat) {
			return true
		}
	}
	return false
}

// hasBlockChildren reports whether n contains nested block elements, in
// which case its text is collected from the children instead of the
// container.
func hasBlockChildren(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "div", "p", "ul", "ol", "dl", "table", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "section", "article":
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findElement returns the first element with the given tag, depth-first.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
