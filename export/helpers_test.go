package export

import (
	"io"

	"golang.org/x/net/html"
)

func stripAttrs(n *html.Node) {
	n.Attr = nil
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		stripAttrs(c)
	}
}

func renderNode(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}
