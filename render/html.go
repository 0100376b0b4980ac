package render

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/mathdoc/model"
)

// DefaultStylesheet is embedded in every page unless replaced.
const DefaultStylesheet = `
body {
    font-family: Arial, sans-serif;
    line-height: 1.6;
    max-width: 1200px;
    margin: 0 auto;
    padding: 20px;
}
h1, h2 {
    color: #333;
}
h1 {
    text-align: center;
}
.date {
    text-align: center;
    color: #666;
    margin-bottom: 30px;
}
.nota {
    background-color: #f9f9f9;
    padding: 15px;
    border-left: 4px solid #666;
    margin: 20px 0;
}
.ejercicio {
    margin: 20px 0;
    padding: 15px;
    border: 1px solid #ddd;
    background-color: #f5f5f5;
}
.ejemplo {
    margin: 20px 0;
    padding: 15px;
    background-color: #e9f7ef;
}
.formula {
    font-family: "Times New Roman", Times, serif;
    padding: 10px 0;
    text-indent: 20px;
}
.definición {
    background-color: #f0f7ff;
    padding: 15px;
    margin: 20px 0;
    border-left: 4px solid #0066cc;
}
.lema {
    background-color: #fff3e0;
    padding: 15px;
    margin: 20px 0;
    border-left: 4px solid #ff9800;
}
.proposición {
    background-color: #e8f4fd;
    padding: 15px;
    margin: 20px 0;
    border-left: 4px solid #2196F3;
    box-shadow: 0 1px 3px rgba(0,0,0,0.1);
}
.teorema {
    background-color: #ffcdd2;
    padding: 15px;
    margin: 20px 0;
    border-left: 4px solid #f44336;
}
.proof {
    background-color: #e0f2f1;
    padding: 15px;
    margin: 20px 0;
    border-left: 4px solid #4caf50;
    font-style: italic;
}
`

// blockClasses maps lexically detected categories to their CSS class.
var blockClasses = map[model.Category]string{
	model.CategoryExercise:    "ejercicio",
	model.CategoryExample:     "ejemplo",
	model.CategoryLemma:       "lema",
	model.CategoryNote:        "nota",
	model.CategoryDefinition:  "definición",
	model.CategoryProposition: "proposición",
	model.CategoryTheorem:     "teorema",
	model.CategoryProof:       "proof",
	model.CategoryFormula:     "formula",
}

// ClassFor returns the CSS class used for a category, or "" for categories
// that are rendered as plain elements.
func ClassFor(c model.Category) string {
	return blockClasses[c]
}

// HTMLOptions controls HTML output.
type HTMLOptions struct {
	// Lang is the html lang attribute. Defaults to "es".
	Lang string

	// Stylesheet replaces DefaultStylesheet when non-empty.
	Stylesheet string
}

// DefaultHTMLOptions returns the default HTML options.
func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{Lang: "es", Stylesheet: DefaultStylesheet}
}

// WriteHTML renders doc as a standalone HTML page. A nil or empty document
// renders an empty content container.
func WriteHTML(w io.Writer, doc *model.Document, opts HTMLOptions) error {
	if err := html.Render(w, BuildHTML(doc, opts)); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// HTML renders doc and returns the page as a string.
func HTML(doc *model.Document, opts HTMLOptions) (string, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, doc, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BuildHTML returns the page as an html.Node tree rooted at a document node.
func BuildHTML(doc *model.Document, opts HTMLOptions) *html.Node {
	if opts.Lang == "" {
		opts.Lang = "es"
	}
	if opts.Stylesheet == "" {
		opts.Stylesheet = DefaultStylesheet
	}
	var title, date string
	if doc != nil {
		title, date = doc.Title, doc.Date
	}

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	page := element(atom.Html, attr("lang", opts.Lang))
	root.AppendChild(page)

	head := element(atom.Head)
	appendBlock(head, withText(element(atom.Title), title))
	appendBlock(head, element(atom.Meta, attr("charset", "UTF-8")))
	appendBlock(head, withText(element(atom.Style), opts.Stylesheet))
	appendBlock(page, head)

	body := element(atom.Body)
	appendBlock(body, withText(element(atom.H1), title))
	appendBlock(body, withText(element(atom.Div, attr("class", "date")), date))

	content := element(atom.Div, attr("class", "content"))
	if doc != nil {
		for _, line := range doc.Lines {
			appendBlock(content, lineNode(line))
		}
	}
	appendBlock(body, content)
	appendBlock(page, body)

	return root
}

// lineNode renders one classified line.
func lineNode(line model.ClassifiedLine) *html.Node {
	var n *html.Node
	switch {
	case line.Category == model.CategoryHeading:
		n = element(atom.H2)
	case blockClasses[line.Category] != "":
		n = element(atom.Div, attr("class", blockClasses[line.Category]))
	default:
		n = element(atom.P)
	}

	for _, span := range line.SpansOrText() {
		if span.Superscript {
			n.AppendChild(withText(element(atom.Sup), span.Text))
			continue
		}
		n.AppendChild(textNode(span.Text))
	}
	return n
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a, Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(textNode(s))
	return n
}

// appendBlock appends child on its own line.
func appendBlock(parent, child *html.Node) {
	parent.AppendChild(textNode("\n"))
	parent.AppendChild(child)
}
