package transcript

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/odvcencio/furry-list/backend"
)

// Renderer converts markdown bodies to wrapped span lines.
type Renderer struct {
	md    goldmark.Markdown
	theme Theme
	code  *highlighter
}

// NewRenderer creates a renderer for theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{
		md:    goldmark.New(),
		theme: theme,
		code:  newHighlighter(theme.CodeStyle),
	}
}

// Render parses src and lays it out in lines at most width cells wide.
// Code blocks are not wrapped; the list clips them.
func (r *Renderer) Render(src string, width int) [][]Span {
	source := []byte(src)
	doc := r.md.Parser().Parse(text.NewReader(source))
	b := &blockWriter{r: r, src: source, width: max(width, 1)}
	b.blocks(doc, nil, nil)
	return b.lines
}

type blockWriter struct {
	r     *Renderer
	src   []byte
	width int
	lines [][]Span
}

// blocks writes the children of n, separating them with blank lines.
// first prefixes the first line written and rest every later line.
func (b *blockWriter) blocks(n ast.Node, first, rest []Span) {
	i := 0
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if i > 0 && !isTightItem(c) {
			b.lines = append(b.lines, append([]Span(nil), rest...))
		}
		prefix := rest
		if i == 0 {
			prefix = first
		}
		b.block(c, prefix, rest)
		i++
	}
}

func isTightItem(n ast.Node) bool {
	if _, ok := n.(*ast.ListItem); ok {
		if list, ok := n.Parent().(*ast.List); ok {
			return list.IsTight
		}
	}
	if p := n.Parent(); p != nil {
		if item, ok := p.(*ast.ListItem); ok {
			if list, ok := item.Parent().(*ast.List); ok {
				return list.IsTight
			}
		}
	}
	return false
}

func (b *blockWriter) block(n ast.Node, first, rest []Span) {
	theme := b.r.theme
	switch node := n.(type) {
	case *ast.Heading:
		marker := Span{Text: strings.Repeat("#", node.Level) + " ", Style: theme.Heading}
		spans := append([]Span{marker}, b.inline(node, theme.Heading)...)
		b.wrapped(spans, first, rest)
	case *ast.Paragraph, *ast.TextBlock:
		b.wrapped(b.inline(node, theme.Text), first, rest)
	case *ast.ThematicBreak:
		rule := Span{Text: strings.Repeat("─", max(b.width-spansWidth(first), 1)), Style: theme.Rule}
		b.lines = append(b.lines, append(append([]Span(nil), first...), rule))
	case *ast.Blockquote:
		bar := Span{Text: "│ ", Style: theme.Quote}
		b.blocks(node, append(clone(first), bar), append(clone(rest), bar))
	case *ast.List:
		b.list(node, first, rest)
	case *ast.FencedCodeBlock:
		b.code(node, string(node.Language(b.src)), first, rest)
	case *ast.CodeBlock:
		b.code(node, "", first, rest)
	case *ast.HTMLBlock:
		b.raw(node, first, rest)
	default:
		b.blocks(node, first, rest)
	}
}

func (b *blockWriter) wrapped(spans []Span, first, rest []Span) {
	b.lines = append(b.lines, wrap(spans, b.width, first, rest)...)
}

func (b *blockWriter) list(list *ast.List, first, rest []Span) {
	number := list.Start
	i := 0
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		if i > 0 && !list.IsTight {
			b.lines = append(b.lines, clone(rest))
		}
		marker := "• "
		if list.IsOrdered() {
			marker = strconv.Itoa(number) + ". "
			number++
		}
		indent := Span{Text: strings.Repeat(" ", uniseg.StringWidth(marker)), Style: b.r.theme.Text}
		head := first
		if i > 0 {
			head = rest
		}
		b.blocks(item,
			append(clone(head), Span{Text: marker, Style: b.r.theme.Text}),
			append(clone(rest), indent))
		i++
	}
}

func (b *blockWriter) code(n ast.Node, lang string, first, rest []Span) {
	var src strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		src.Write(seg.Value(b.src))
	}
	for i, line := range b.r.code.highlight(lang, src.String(), b.r.theme.Code) {
		prefix := rest
		if i == 0 {
			prefix = first
		}
		b.lines = append(b.lines, append(clone(prefix), line...))
	}
}

func (b *blockWriter) raw(n ast.Node, first, rest []Span) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		prefix := rest
		if i == 0 {
			prefix = first
		}
		body := strings.TrimRight(string(seg.Value(b.src)), "\n")
		b.lines = append(b.lines, append(clone(prefix), Span{Text: body, Style: b.r.theme.Quote}))
	}
}

// inline flattens the inline children of n into spans.
func (b *blockWriter) inline(n ast.Node, style backend.Style) []Span {
	var out []Span
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, b.inlineNode(c, style)...)
	}
	return out
}

func (b *blockWriter) inlineNode(n ast.Node, style backend.Style) []Span {
	theme := b.r.theme
	switch node := n.(type) {
	case *ast.Text:
		out := []Span{{Text: string(node.Segment.Value(b.src)), Style: style}}
		switch {
		case node.HardLineBreak():
			out = append(out, Span{Text: "\n", Style: style})
		case node.SoftLineBreak():
			out = append(out, Span{Text: " ", Style: style})
		}
		return out
	case *ast.String:
		return []Span{{Text: string(node.Value), Style: style}}
	case *ast.CodeSpan:
		var sb strings.Builder
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				sb.Write(t.Segment.Value(b.src))
			}
		}
		return []Span{{Text: sb.String(), Style: theme.Code}}
	case *ast.Emphasis:
		if node.Level >= 2 {
			return b.inline(node, style.Bold(true))
		}
		return b.inline(node, style.Italic(true))
	case *ast.Link:
		return b.inline(node, theme.Link)
	case *ast.AutoLink:
		return []Span{{Text: string(node.URL(b.src)), Style: theme.Link}}
	case *ast.Image:
		return append([]Span{{Text: "[image: ", Style: theme.Quote}},
			append(b.inline(node, theme.Quote), Span{Text: "]", Style: theme.Quote})...)
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < node.Segments.Len(); i++ {
			seg := node.Segments.At(i)
			sb.Write(seg.Value(b.src))
		}
		return []Span{{Text: sb.String(), Style: theme.Quote}}
	default:
		return b.inline(node, style)
	}
}

func clone(spans []Span) []Span {
	return append([]Span(nil), spans...)
}
