// Package blocks splits rendered HTML content into top-level structural
// fragments and flattens fragments to plain text for terminal display.
package blocks

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Block is one top-level structural fragment of a content body.
type Block struct {
	// HTML is the fragment markup.
	HTML string
	// Text is the fragment flattened to plain text.
	Text string
}

// Split breaks rendered content into its top-level elements. Content that
// does not parse into distinct elements comes back as a single opaque block;
// there is no recovery beyond that for malformed markup.
func Split(content string) []Block {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil
	}

	nodes, err := html.ParseFragment(strings.NewReader(trimmed), bodyContext())
	if err != nil {
		return []Block{{HTML: trimmed, Text: Text(trimmed)}}
	}

	out := make([]Block, 0, len(nodes))
	for _, node := range nodes {
		if node.Type == html.TextNode && strings.TrimSpace(node.Data) == "" {
			continue
		}
		var raw strings.Builder
		if err := html.Render(&raw, node); err != nil {
			continue
		}
		fragment := strings.TrimSpace(raw.String())
		if fragment == "" {
			continue
		}
		out = append(out, Block{HTML: fragment, Text: textOf(node)})
	}
	if len(out) == 0 {
		return []Block{{HTML: trimmed, Text: Text(trimmed)}}
	}
	return out
}

// Text flattens an HTML fragment to whitespace-normalized plain text.
func Text(fragment string) string {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), bodyContext())
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	var b strings.Builder
	for _, node := range nodes {
		collectText(node, &b)
	}
	return normalizeSpace(b.String())
}

func bodyContext() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
}

func textOf(node *html.Node) string {
	var b strings.Builder
	collectText(node, &b)
	return normalizeSpace(b.String())
}

func collectText(node *html.Node, b *strings.Builder) {
	if node.Type == html.TextNode {
		b.WriteString(node.Data)
		b.WriteByte(' ')
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, b)
	}
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
