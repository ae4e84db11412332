// Package terminal defines backend-neutral input events.
package terminal

// Key identifies a non-printable key or KeyRune for text input.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyCtrlC
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyCtrlC:     "ctrl+c",
}

// String returns a short key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey returns the key for a name produced by Key.String.
func ParseKey(name string) (Key, bool) {
	for key, n := range keyNames {
		if n == name {
			return key, true
		}
	}
	return KeyNone, false
}
