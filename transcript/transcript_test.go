package transcript

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/furry-list/backend"
	"github.com/odvcencio/furry-list/runtime"
)

func lineTexts(lines [][]Span) []string {
	out := make([]string, 0, len(lines))
	for _, spans := range lines {
		out = append(out, Line{Spans: spans}.Text())
	}
	return out
}

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestWrapBreaksAtSpaces(t *testing.T) {
	lines := wrap([]Span{{Text: "the quick brown fox jumps"}}, 10, nil, nil)
	assert.Equal(t, []string{"the quick", "brown fox", "jumps"}, lineTexts(lines))
}

func TestWrapHardBreaksLongWords(t *testing.T) {
	lines := wrap([]Span{{Text: "abcdefghij xy"}}, 4, nil, nil)
	assert.Equal(t, []string{"abcd", "efgh", "ij", "xy"}, lineTexts(lines))
}

func TestWrapKeepsWideGraphemesWhole(t *testing.T) {
	lines := wrap([]Span{{Text: "日本語テキスト"}}, 5, nil, nil)
	assert.Equal(t, []string{"日本", "語テ", "キス", "ト"}, lineTexts(lines))
}

func TestWrapPrefixesAndStyles(t *testing.T) {
	bold := backend.DefaultStyle().Bold(true)
	spans := []Span{{Text: "one "}, {Text: "two", Style: bold}, {Text: " three four"}}
	lines := wrap(spans, 10, []Span{{Text: "- "}}, []Span{{Text: "  "}})

	assert.Equal(t, []string{"- one two", "  three", "  four"}, lineTexts(lines))
	require.Len(t, lines[0], 3)
	assert.Equal(t, bold, lines[0][2].Style)
}

func TestWrapHonoursLineBreaks(t *testing.T) {
	lines := wrap([]Span{{Text: "a\nb\n"}}, 10, nil, nil)
	assert.Equal(t, []string{"a", "b"}, lineTexts(lines))
	assert.Len(t, wrap(nil, 10, nil, nil), 1)
}

func TestRendererMarkdownBlocks(t *testing.T) {
	r := NewRenderer(DefaultTheme())
	src := "# Title\n\nSome *soft* and **strong** text with `code`.\n\n- one\n- two\n\n> quoted\n\n---\n"
	got := lineTexts(r.Render(src, 40))

	assert.Equal(t, []string{
		"# Title",
		"",
		"Some soft and strong text with code.",
		"",
		"• one",
		"• two",
		"",
		"│ quoted",
		"",
		strings.Repeat("─", 40),
	}, got)
}

func TestRendererStylesInlines(t *testing.T) {
	theme := DefaultTheme()
	r := NewRenderer(theme)
	lines := r.Render("plain **bold** `x`", 40)
	require.Len(t, lines, 1)

	var bold, code bool
	for _, s := range lines[0] {
		if s.Text == "bold" && s.Style.Has(backend.AttrBold) {
			bold = true
		}
		if s.Text == "x" && s.Style == theme.Code {
			code = true
		}
	}
	assert.True(t, bold, "bold span")
	assert.True(t, code, "code span")
}

func TestRendererOrderedList(t *testing.T) {
	r := NewRenderer(DefaultTheme())
	got := lineTexts(r.Render("3. alpha beta gamma\n4. delta\n", 12))
	assert.Equal(t, []string{"3. alpha", "   beta", "   gamma", "4. delta"}, got)
}

func TestRendererHighlightsFencedCode(t *testing.T) {
	r := NewRenderer(DefaultTheme())
	lines := r.Render("```go\nfunc main() {\n\treturn\n}\n```\n", 8)

	got := lineTexts(lines)
	require.Len(t, got, 3)
	assert.Equal(t, "func main() {", got[0], "code is not wrapped")
	assert.Equal(t, "}", got[2])

	colored := false
	for _, s := range lines[0] {
		fg, _, _ := s.Style.Decompose()
		if fg.IsRGB() {
			colored = true
		}
	}
	assert.True(t, colored, "expected highlighted tokens")
}

func TestRendererExpandsTabsInCode(t *testing.T) {
	log := NewLog(LogConfig{Width: 20})
	log.AppendEntry(Entry{Role: RoleAssistant, Body: "```go\nfunc f() {\n\treturn\n}\n```\n"})
	require.Equal(t, "    return", log.Item(2).Text())

	buf := runtime.NewBuffer(20, 1)
	log.Render(log.Item(2), 2, false, runtime.NewRenderContext(buf).Sub(runtime.Rect{Width: 20, Height: 1}))
	row := make([]rune, 0, 10)
	for x := 0; x < 10; x++ {
		row = append(row, buf.Get(x, 0).Rune)
	}
	assert.Equal(t, "    return", string(row))
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "\tx", want: "    x"},
		{in: "ab\tc", want: "ab  c"},
		{in: "abcd\te", want: "abcd    e"},
		{in: "\t\tx\n\ty", want: "        x\n    y"},
		{in: "日\tx", want: "日  x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, expandTabs(tt.in, 4), "input %q", tt.in)
	}
}

func TestIDSourceIsMonotonic(t *testing.T) {
	ids := NewIDSourceWith(fixedClock(), bytes.NewReader(bytes.Repeat([]byte{7}, 64)))
	a, at, err := ids.Next()
	require.NoError(t, err)
	b, _, err := ids.Next()
	require.NoError(t, err)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, fixedClock()(), at)
}

func TestLogAppendAndReflow(t *testing.T) {
	log := NewLog(LogConfig{
		Width: 20,
		IDs:   NewIDSourceWith(fixedClock(), bytes.NewReader(bytes.Repeat([]byte{1}, 256))),
	})
	counts := []int{}
	log.Changes().Subscribe(func() { counts = append(counts, log.Count()) })

	first, err := log.Append(RoleUser, "hello there general kenobi")
	require.NoError(t, err)
	assert.Equal(t, "user 12:30:00", log.Item(0).Text())
	assert.Equal(t, "hello there general", log.Item(1).Text())
	assert.Equal(t, "kenobi", log.Item(2).Text())
	assert.Equal(t, "", log.Item(3).Text())
	assert.Equal(t, 4, log.Count())

	second, err := log.Append(RoleAssistant, "hi")
	require.NoError(t, err)
	assert.Equal(t, 7, log.Count())
	line, ok := log.LineOf(second.ID)
	require.True(t, ok)
	assert.Equal(t, 4, line)
	assert.Equal(t, second.ID, log.Item(5).Entry)

	log.SetWidth(40)
	assert.Equal(t, "hello there general kenobi", log.Item(1).Text())
	assert.Equal(t, 6, log.Count())
	assert.Equal(t, []int{4, 7, 6}, counts)

	line, ok = log.LineOf(first.ID)
	require.True(t, ok)
	assert.Equal(t, 0, line)
	assert.Len(t, log.Entries(), 2)
	assert.Equal(t, Line{}, log.Item(99))
}

func TestLogRenderDrawsSpans(t *testing.T) {
	log := NewLog(LogConfig{Width: 20})
	log.AppendEntry(Entry{Role: RoleSystem, Body: "ready"})
	buf := runtime.NewBuffer(20, 1)
	ctx := runtime.NewRenderContext(buf).Sub(runtime.Rect{Width: 20, Height: 1})

	log.Render(log.Item(1), 1, false, ctx)
	assert.Equal(t, 'r', buf.Get(0, 0).Rune)
	assert.Equal(t, 'y', buf.Get(4, 0).Rune)
	assert.Equal(t, "system", log.Item(0).Text())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "assistant", RoleAssistant.String())
	assert.Equal(t, "role(9)", Role(9).String())
}
