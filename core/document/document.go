// ABOUTME: Document model for querying parsed HTML pages
// ABOUTME: Parses leniently with x/net/html and queries through goquery with compiled cascadia selectors

// Package document turns arbitrary HTML into a tree that can be queried with
// CSS selectors and serialized back to text.
package document

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	coreerrors "feedfinder/core/errors"
)

// Document is a parsed HTML page. A Document is owned by a single caller and
// is not safe for concurrent use.
type Document struct {
	root *html.Node
	doc  *goquery.Document
}

// Element is one node returned by a query
type Element struct {
	sel *goquery.Selection
}

// Parse builds a Document from s. Malformed markup is repaired the way a
// browser would, so Parse never fails.
func Parse(s string) *Document {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		root = &html.Node{Type: html.DocumentNode}
	}
	return &Document{
		root: root,
		doc:  goquery.NewDocumentFromNode(root),
	}
}

// Select returns the elements matching selector in document order
func (d *Document) Select(selector string) ([]Element, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, &coreerrors.QueryError{Selector: selector, Cause: err}
	}

	found := d.doc.FindMatcher(matcher)
	elements := make([]Element, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, Element{sel: s})
	})
	return elements, nil
}

// Text serializes the whole tree back to markup
func (d *Document) Text() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		// Render only fails on writer errors or invalid trees; fall back to
		// goquery's serializer for the latter.
		s, _ := d.doc.Html()
		return s
	}
	return buf.String()
}

// Attr returns the value of the named attribute and whether it is present
func (e Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}
