package ui

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrNotFound is returned when no element has the requested id.
	ErrNotFound = errors.New("ui: element not found")
	// ErrDuplicateID is returned when appending an element whose id is already in use.
	ErrDuplicateID = errors.New("ui: duplicate element id")
)

// Node describes an element to append to a Document.
type Node struct {
	Tag   string
	ID    string
	Class string
	Attrs map[string]string
	// Inner is raw HTML parsed into the element's children.
	Inner string
}

// Document is an HTML document that can be mutated by element id from several goroutines.
type Document struct {
	mu    sync.RWMutex
	root  *html.Node
	head  *html.Node
	body  *html.Node
	title *html.Node
}

func newElement(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// NewDocument returns an empty UTF-8 document with the given title.
func NewDocument(title string) *Document {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := newElement("html", html.Attribute{Key: "lang", Val: "vi"})
	head := newElement("head")
	head.AppendChild(newElement("meta", html.Attribute{Key: "charset", Val: "utf-8"}))
	t := newElement("title")
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(t)
	body := newElement("body")

	htmlEl.AppendChild(head)
	htmlEl.AppendChild(body)
	root.AppendChild(htmlEl)
	return &Document{root: root, head: head, body: body, title: t}
}

// SetTitle replaces the document title.
func (d *Document) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for c := d.title.FirstChild; c != nil; c = d.title.FirstChild {
		d.title.RemoveChild(c)
	}
	d.title.AppendChild(&html.Node{Type: html.TextNode, Data: title})
}

// AddStylesheet links a stylesheet from the head.
func (d *Document) AddStylesheet(href string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.head.AppendChild(newElement("link",
		html.Attribute{Key: "rel", Val: "stylesheet"},
		html.Attribute{Key: "href", Val: href},
	))
}

func attrOf(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// lookup finds the first element with the id in document order. Callers hold mu.
func (d *Document) lookup(id string) *html.Node {
	if id == "" {
		return nil
	}
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := attrOf(n, "id"); ok && v == id {
				found = n
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(d.root)
	return found
}

func parseInner(context *html.Node, s string) ([]*html.Node, error) {
	if s == "" {
		return nil, nil
	}
	return html.ParseFragment(strings.NewReader(s), context)
}

// Has reports whether an element with the id exists.
func (d *Document) Has(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lookup(id) != nil
}

// Append adds an element as the last child of parentID, or of the body when parentID is empty.
func (d *Document) Append(parentID string, n Node) error {
	if n.Tag == "" {
		return errors.New("ui: empty tag")
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	parent := d.body
	if parentID != "" {
		if parent = d.lookup(parentID); parent == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, parentID)
		}
	}
	if n.ID != "" && d.lookup(n.ID) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
	}

	var attrs []html.Attribute
	if n.ID != "" {
		attrs = append(attrs, html.Attribute{Key: "id", Val: n.ID})
	}
	if n.Class != "" {
		attrs = append(attrs, html.Attribute{Key: "class", Val: n.Class})
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		if k != "id" && k != "class" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, html.Attribute{Key: k, Val: n.Attrs[k]})
	}

	el := newElement(strings.ToLower(n.Tag), attrs...)
	children, err := parseInner(el, n.Inner)
	if err != nil {
		return fmt.Errorf("ui: parse inner html of %s: %w", n.ID, err)
	}
	for _, c := range children {
		el.AppendChild(c)
	}
	parent.AppendChild(el)
	return nil
}

// SetInnerHTML replaces the children of the element with s parsed as HTML.
func (d *Document) SetInnerHTML(id, s string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	el := d.lookup(id)
	if el == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	children, err := parseInner(el, s)
	if err != nil {
		return fmt.Errorf("ui: parse inner html of %s: %w", id, err)
	}
	for c := el.FirstChild; c != nil; c = el.FirstChild {
		el.RemoveChild(c)
	}
	for _, c := range children {
		el.AppendChild(c)
	}
	return nil
}

// InnerHTML serialises the children of the element.
func (d *Document) InnerHTML(id string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	el := d.lookup(id)
	if el == nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	var b strings.Builder
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// Attr returns an attribute of the element.
func (d *Document) Attr(id, key string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	el := d.lookup(id)
	if el == nil {
		return "", false
	}
	return attrOf(el, key)
}

// Remove detaches the element and its subtree. It reports whether the element existed.
func (d *Document) Remove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	el := d.lookup(id)
	if el == nil || el.Parent == nil {
		return false
	}
	el.Parent.RemoveChild(el)
	return true
}

// ChildIDs lists the ids of the element's direct element children, in order.
// Children without an id are skipped.
func (d *Document) ChildIDs(id string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	el := d.lookup(id)
	if el == nil {
		return nil
	}
	var ids []string
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if v, ok := attrOf(c, "id"); ok {
			ids = append(ids, v)
		}
	}
	return ids
}

// Render writes the whole document.
func (d *Document) Render(w io.Writer) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return html.Render(w, d.root)
}

func (d *Document) String() string {
	var b strings.Builder
	_ = d.Render(&b)
	return b.String()
}
