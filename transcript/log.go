package transcript

import (
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/furry-list/runtime"
	"github.com/odvcencio/furry-list/state"
)

// timeLayout formats entry headers.
const timeLayout = "15:04:05"

// Line is one display row of the transcript.
type Line struct {
	Entry ulid.ULID
	Spans []Span
}

// Text returns the line's text without styles.
func (l Line) Text() string {
	var n int
	for _, s := range l.Spans {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range l.Spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}

// LogConfig configures a Log.
type LogConfig struct {
	// Theme defaults to DefaultTheme when it has no role styles.
	Theme Theme
	// Width is the initial wrap width. Defaults to 80.
	Width int
	// IDs defaults to a crypto/rand backed source.
	IDs    *IDSource
	Logger *slog.Logger
}

// Log is an append-only transcript laid out as lines. It is safe for
// concurrent use: producers append from any goroutine while the UI reads
// lines through the list adapter methods.
type Log struct {
	mu       sync.Mutex
	renderer *Renderer
	theme    Theme
	ids      *IDSource
	logger   *slog.Logger
	width    int
	entries  []Entry
	blocks   [][]Line
	lines    []Line
	count    *state.Signal[int]
}

// NewLog creates an empty transcript.
func NewLog(cfg LogConfig) *Log {
	if cfg.Theme.Roles == nil {
		cfg.Theme = DefaultTheme()
	}
	if cfg.Width <= 0 {
		cfg.Width = 80
	}
	if cfg.IDs == nil {
		cfg.IDs = NewIDSource()
	}
	if cfg.Logger == nil {
		cfg.Logger = runtime.Logger()
	}
	return &Log{
		renderer: NewRenderer(cfg.Theme),
		theme:    cfg.Theme,
		ids:      cfg.IDs,
		logger:   cfg.Logger,
		width:    cfg.Width,
		count:    state.NewComparableSignal(0),
	}
}

// Append adds an entry with a new ID and returns it.
func (l *Log) Append(role Role, body string) (Entry, error) {
	id, at, err := l.ids.Next()
	if err != nil {
		return Entry{}, err
	}
	entry := Entry{ID: id, Role: role, Body: body, At: at}
	l.AppendEntry(entry)
	return entry, nil
}

// AppendEntry adds a prepared entry.
func (l *Log) AppendEntry(entry Entry) {
	l.mu.Lock()
	block := l.layout(entry, l.width)
	l.entries = append(l.entries, entry)
	l.blocks = append(l.blocks, block)
	l.lines = append(l.lines, block...)
	count := len(l.lines)
	l.mu.Unlock()
	l.logger.Debug("transcript entry appended", "id", entry.ID, "role", entry.Role, "lines", len(block))
	l.count.Set(count)
}

// SetWidth re-wraps every entry for width.
func (l *Log) SetWidth(width int) {
	width = max(width, 1)
	l.mu.Lock()
	if width == l.width {
		l.mu.Unlock()
		return
	}
	l.width = width
	l.lines = l.lines[:0]
	for i, entry := range l.entries {
		l.blocks[i] = l.layout(entry, width)
		l.lines = append(l.lines, l.blocks[i]...)
	}
	count := len(l.lines)
	l.mu.Unlock()
	l.count.Set(count)
}

// Width returns the wrap width.
func (l *Log) Width() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.width
}

// Entries returns a copy of the entries.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// LineOf returns the index of the first line of the entry with id.
func (l *Log) LineOf(id ulid.ULID) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	line := 0
	for i, entry := range l.entries {
		if entry.ID == id {
			return line, true
		}
		line += len(l.blocks[i])
	}
	return 0, false
}

// Count returns the number of lines.
func (l *Log) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

// Item returns line index, or an empty line when out of range.
func (l *Log) Item(index int) Line {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.lines) {
		return Line{}
	}
	return l.lines[index]
}

// Render draws line on the first row of ctx.
func (l *Log) Render(line Line, _ int, selected bool, ctx runtime.RenderContext) {
	x := ctx.Bounds.X
	for _, span := range line.Spans {
		style := span.Style
		if selected {
			style = style.Reverse(true)
		}
		x += ctx.SetString(x, ctx.Bounds.Y, span.Text, style)
	}
}

// Changes fires when the line count changes.
func (l *Log) Changes() state.Subscribable {
	return l.count
}

// LineCount is the line count as a signal.
func (l *Log) LineCount() state.Readable[int] {
	return l.count
}

// layout renders one entry: a header, the body and a blank separator.
func (l *Log) layout(entry Entry, width int) []Line {
	header := []Span{
		{Text: entry.Role.String(), Style: l.theme.role(entry.Role)},
		{Text: " " + entry.At.Format(timeLayout), Style: l.theme.Timestamp},
	}
	if entry.At.IsZero() {
		header = header[:1]
	}
	out := []Line{{Entry: entry.ID, Spans: header}}
	for _, spans := range l.renderer.Render(entry.Body, width) {
		out = append(out, Line{Entry: entry.ID, Spans: spans})
	}
	return append(out, Line{Entry: entry.ID})
}
