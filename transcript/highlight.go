package transcript

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/uniseg"

	"github.com/odvcencio/furry-list/backend"
)

// tabWidth is the tab stop used for code blocks. Cells have no tab
// character, so tabs become spaces before tokenizing.
const tabWidth = 4

type highlighter struct {
	style *chroma.Style
}

func newHighlighter(name string) *highlighter {
	return &highlighter{style: styles.Get(name)}
}

// highlight tokenizes code and returns one span slice per source line.
// Unknown languages are guessed from the content, then shown plain.
func (h *highlighter) highlight(lang, code string, plain backend.Style) [][]Span {
	code = expandTabs(strings.TrimRight(code, "\n"), tabWidth)
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainLines(code, plain)
	}
	var out [][]Span
	for _, line := range chroma.SplitTokensIntoLines(it.Tokens()) {
		spans := make([]Span, 0, len(line))
		for _, tok := range line {
			value := strings.TrimRight(tok.Value, "\n")
			if value == "" {
				continue
			}
			spans = append(spans, Span{Text: value, Style: h.styleFor(tok.Type, plain)})
		}
		out = append(out, spans)
	}
	for len(out) > 1 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out
}

func (h *highlighter) styleFor(t chroma.TokenType, plain backend.Style) backend.Style {
	entry := h.style.Get(t)
	st := plain
	if entry.Colour.IsSet() {
		st = st.Foreground(backend.RGBColor(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

func plainLines(code string, style backend.Style) [][]Span {
	var out [][]Span
	for _, line := range strings.Split(code, "\n") {
		out = append(out, []Span{{Text: line, Style: style}})
	}
	return out
}

// expandTabs replaces each tab with spaces up to the next multiple of
// width, measuring columns in terminal cells.
func expandTabs(code string, width int) string {
	if !strings.Contains(code, "\t") {
		return code
	}
	var sb strings.Builder
	sb.Grow(len(code))
	col := 0
	state := -1
	rest := code
	for rest != "" {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		switch cluster {
		case "\t":
			pad := width - col%width
			sb.WriteString(strings.Repeat(" ", pad))
			col += pad
		case "\n", "\r\n":
			sb.WriteString(cluster)
			col = 0
		default:
			sb.WriteString(cluster)
			col += w
		}
	}
	return sb.String()
}
