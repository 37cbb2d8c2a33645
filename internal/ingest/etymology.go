package ingest

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/lexicaforge/backend/pkg/textsim"
)

// EtymologySection extracts the plain text of the first etymology section of
// a rendered Wiktionary page. Returns "" when the page carries none.
func EtymologySection(pageHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return "", err
	}

	heading := findEtymologyHeading(doc)
	if heading == nil {
		return "", nil
	}

	// Content of the section is everything between this heading and the
	// next one at any level.
	var parts []string
	for sibling := sectionStart(heading); sibling != nil; sibling = sibling.NextSibling {
		if isHeading(sibling) {
			break
		}
		text := strings.TrimSpace(nodeText(sibling))
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n"), nil
}

// CandidateTerms pulls the capitalized candidate words out of an etymology
// text. These feed the cognate lexicon as raw headword candidates; the
// heuristic matches single capitalized words, not a real NER pass.
func CandidateTerms(sectionText string) []string {
	return textsim.NewService().ExtractEntities(sectionText)
}

func findEtymologyHeading(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && strings.HasPrefix(attr.Val, "Etymology") {
				return n
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findEtymologyHeading(child); found != nil {
			return found
		}
	}
	return nil
}

// sectionStart returns the node after the heading container the anchor node
// belongs to. MediaWiki renders headings either as bare <hN> elements or
// wrapped in <div class="mw-heading">.
func sectionStart(anchor *html.Node) *html.Node {
	node := anchor
	for node.Parent != nil && !isHeading(node) {
		node = node.Parent
	}
	if node.Parent != nil && isHeading(node.Parent) {
		node = node.Parent
	}
	return node.NextSibling
}

func isHeading(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	case "div":
		for _, attr := range n.Attr {
			if attr.Key == "class" && strings.Contains(attr.Val, "mw-heading") {
				return true
			}
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return ""
	}
	// Reference markers and edit links add noise, not signal.
	if n.Type == html.ElementNode && (n.Data == "sup" || n.Data == "style" || n.Data == "script") {
		return ""
	}
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(nodeText(child))
	}
	return b.String()
}
