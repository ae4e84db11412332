package transcript

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/odvcencio/furry-list/backend"
)

// Span is a run of text in one style.
type Span struct {
	Text  string
	Style backend.Style
}

// Width returns the span's display width in cells.
func (s Span) Width() int {
	return uniseg.StringWidth(s.Text)
}

// spansWidth sums the widths of spans.
func spansWidth(spans []Span) int {
	w := 0
	for _, s := range spans {
		w += s.Width()
	}
	return w
}

type token struct {
	text  string
	style backend.Style
	space bool
	br    bool
}

// tokenize splits spans into words, runs of spaces and line breaks.
func tokenize(spans []Span) []token {
	var out []token
	for _, s := range spans {
		rest := s.Text
		for rest != "" {
			if rest[0] == '\n' {
				out = append(out, token{br: true})
				rest = rest[1:]
				continue
			}
			space := rest[0] == ' ' || rest[0] == '\t'
			end := strings.IndexFunc(rest, func(r rune) bool {
				isSpace := r == ' ' || r == '\t'
				return r == '\n' || isSpace != space
			})
			if end < 0 {
				end = len(rest)
			}
			text := rest[:end]
			if space {
				text = strings.Repeat(" ", len(text))
			}
			out = append(out, token{text: text, style: s.Style, space: space})
			rest = rest[end:]
		}
	}
	return out
}

// wrapper builds wrapped lines of spans.
type wrapper struct {
	width     int
	rest      []Span
	lines     [][]Span
	cur       []Span
	prefixLen int
	col       int
	avail     int
}

// wrap breaks spans into lines no wider than width. The first line starts
// with first and later lines with rest; both count toward the width.
// Words wider than a line are split between grapheme clusters.
func wrap(spans []Span, width int, first, rest []Span) [][]Span {
	w := &wrapper{width: width, rest: rest}
	w.start(first)
	for _, tok := range tokenize(spans) {
		switch {
		case tok.br:
			w.flush()
		case tok.space:
			if w.col == 0 {
				continue
			}
			if w.col+uniseg.StringWidth(tok.text) > w.avail {
				w.flush()
				continue
			}
			w.add(tok.text, tok.style)
		default:
			w.word(tok)
		}
	}
	if w.col > 0 || len(w.lines) == 0 {
		w.flush()
	}
	return w.lines
}

func (w *wrapper) start(prefix []Span) {
	w.cur = append([]Span(nil), prefix...)
	w.prefixLen = len(prefix)
	w.col = 0
	w.avail = max(w.width-spansWidth(prefix), 1)
}

func (w *wrapper) flush() {
	w.trimTrailingSpace()
	w.lines = append(w.lines, w.cur)
	w.start(w.rest)
}

func (w *wrapper) trimTrailingSpace() {
	for len(w.cur) > w.prefixLen {
		last := &w.cur[len(w.cur)-1]
		last.Text = strings.TrimRight(last.Text, " ")
		if last.Text != "" {
			return
		}
		w.cur = w.cur[:len(w.cur)-1]
	}
}

func (w *wrapper) add(text string, style backend.Style) {
	w.col += uniseg.StringWidth(text)
	if n := len(w.cur); n > w.prefixLen && w.cur[n-1].Style == style {
		w.cur[n-1].Text += text
		return
	}
	w.cur = append(w.cur, Span{Text: text, Style: style})
}

func (w *wrapper) word(tok token) {
	width := uniseg.StringWidth(tok.text)
	if w.col > 0 && w.col+width > w.avail {
		w.flush()
	}
	if width <= w.avail-w.col {
		w.add(tok.text, tok.style)
		return
	}
	// Hard-break a word that is wider than a whole line.
	var chunk strings.Builder
	chunkWidth := 0
	state := -1
	rest := tok.text
	for rest != "" {
		var cluster string
		var cw int
		cluster, rest, cw, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if w.col+chunkWidth+cw > w.avail && (w.col > 0 || chunkWidth > 0) {
			if chunkWidth > 0 {
				w.add(chunk.String(), tok.style)
				chunk.Reset()
				chunkWidth = 0
			}
			w.flush()
		}
		chunk.WriteString(cluster)
		chunkWidth += cw
	}
	if chunkWidth > 0 {
		w.add(chunk.String(), tok.style)
	}
}
