package export

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/docoutline/model"
)

// WriteHTML writes the outline as a standalone HTML page: the title as h1
// and the headings as nested lists, one list level per heading level.
func WriteHTML(w io.Writer, outline model.Outline) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	root.AppendChild(head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	head.AppendChild(withText(element(atom.Title), outline.Title))

	body := element(atom.Body)
	root.AppendChild(body)
	if outline.Title != "" {
		body.AppendChild(withText(element(atom.H1), outline.Title))
	}
	if len(outline.Headings) > 0 {
		nav := element(atom.Nav)
		body.AppendChild(nav)
		nav.AppendChild(tocList(outline.Headings))
	}

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

// tocList nests entries by level. Entries arrive in reading order with
// levels that never skip downward, so each deeper entry opens one list
// inside the previous item.
func tocList(entries []model.OutlineEntry) *html.Node {
	top := element(atom.Ul)

	type frame struct {
		list  *html.Node
		level int
	}
	stack := []frame{{list: top}}
	var lastItem *html.Node

	for _, e := range entries {
		level, ok := model.ParseLevel(e.Level)
		if !ok {
			level = 1
		}

		for len(stack) > 1 && level < stack[len(stack)-1].level {
			stack = stack[:len(stack)-1]
		}
		cur := stack[len(stack)-1]
		switch {
		case cur.level == 0:
			stack[len(stack)-1].level = level
		case level > cur.level && lastItem != nil:
			sub := element(atom.Ul)
			lastItem.AppendChild(sub)
			stack = append(stack, frame{list: sub, level: level})
		}

		li := element(atom.Li)
		li.Attr = []html.Attribute{
			{Key: "class", Val: "level-" + e.Level},
			{Key: "data-page", Val: strconv.Itoa(e.Page)},
		}
		withText(li, e.Text)
		stack[len(stack)-1].list.AppendChild(li)
		lastItem = li
	}
	return top
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
