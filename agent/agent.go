// Package agent drives an app on the simulated backend so tests and
// scripts can press keys, scroll and read the screen back as text.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/odvcencio/furry-list/backend/sim"
	"github.com/odvcencio/furry-list/runtime"
	"github.com/odvcencio/furry-list/terminal"
)

var (
	ErrTimeout    = errors.New("agent: operation timed out")
	ErrNoRoot     = errors.New("agent: no root widget configured")
	ErrRunning    = errors.New("agent: app already running")
	ErrNotRunning = errors.New("agent: app not running")
)

// Config configures an Agent.
type Config struct {
	// App configures the app under test. Backend is replaced with the
	// simulated backend; Root is required.
	App runtime.AppConfig

	// Sim is the simulated terminal. One of Width x Height is created when nil.
	Sim *sim.Backend

	// Width and Height default to 80x24.
	Width, Height int

	// TickRate is how often Wait* calls poll the screen. Default 10ms.
	TickRate time.Duration
}

// Snapshot is the visible screen at one point in time.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Frames    int       `json:"frames"`
	Text      string    `json:"text,omitempty"`
}

// Lines splits the captured text into rows.
func (s Snapshot) Lines() []string {
	if s.Text == "" {
		return nil
	}
	return strings.Split(s.Text, "\n")
}

// Agent runs one app against a simulated terminal.
type Agent struct {
	mu       sync.Mutex
	app      *runtime.App
	sim      *sim.Backend
	tickRate time.Duration
	cancel   context.CancelFunc
	done     chan error
}

// New creates an agent and the app it drives.
func New(cfg Config) (*Agent, error) {
	if cfg.App.Root == nil {
		return nil, ErrNoRoot
	}
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	s := cfg.Sim
	if s == nil {
		s = sim.New(width, height)
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 10 * time.Millisecond
	}
	appCfg := cfg.App
	appCfg.Backend = s
	return &Agent{
		app:      runtime.NewApp(appCfg),
		sim:      s,
		tickRate: tickRate,
	}, nil
}

// App returns the app under test.
func (a *Agent) App() *runtime.App {
	return a.app
}

// Backend returns the simulated terminal.
func (a *Agent) Backend() *sim.Backend {
	return a.sim
}

// Start runs the app in the background and waits for its first frame.
func (a *Agent) Start(ctx context.Context, timeout time.Duration) error {
	a.mu.Lock()
	if a.done != nil {
		a.mu.Unlock()
		return ErrRunning
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	a.cancel = cancel
	a.done = done
	a.mu.Unlock()

	go func() { done <- a.app.Run(runCtx) }()

	err := a.WaitFor(func(s Snapshot) bool { return s.Frames > 0 }, timeout)
	if err != nil {
		return fmt.Errorf("agent: waiting for first frame: %w", err)
	}
	return nil
}

// Stop cancels the app and waits for it to exit. A run that ended with
// context cancellation counts as a clean stop.
func (a *Agent) Stop() error {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.mu.Unlock()
	if done == nil {
		return ErrNotRunning
	}
	cancel()
	err := a.finish(<-done)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Wait blocks until the app exits on its own, for example after a Quit
// command.
func (a *Agent) Wait(timeout time.Duration) error {
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()
	if done == nil {
		return ErrNotRunning
	}
	select {
	case err := <-done:
		return a.finish(err)
	case <-time.After(timeout):
		return ErrTimeout
	}
}

func (a *Agent) finish(err error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancel()
	a.cancel = nil
	a.done = nil
	return err
}

// SendKey presses a special key.
func (a *Agent) SendKey(key terminal.Key) {
	a.sim.InjectKey(key, 0)
}

// SendRune presses a printable key.
func (a *Agent) SendRune(r rune) {
	a.sim.InjectKeyRune(r)
}

// Type presses each rune of s in order.
func (a *Agent) Type(s string) {
	for _, r := range s {
		a.sim.InjectKeyRune(r)
	}
}

// Scroll turns the mouse wheel at (x, y). Positive notches scroll down.
func (a *Agent) Scroll(x, y, notches int) {
	button := terminal.MouseWheelDown
	if notches < 0 {
		button = terminal.MouseWheelUp
		notches = -notches
	}
	for range notches {
		a.sim.InjectMouse(x, y, button)
	}
}

// Click presses the left button at (x, y).
func (a *Agent) Click(x, y int) {
	a.sim.InjectMouse(x, y, terminal.MouseLeft)
}

// Resize changes the terminal size.
func (a *Agent) Resize(width, height int) {
	a.sim.InjectResize(width, height)
}

// Snapshot captures the screen as last shown.
func (a *Agent) Snapshot() Snapshot {
	w, h := a.sim.Size()
	return Snapshot{
		Timestamp: time.Now(),
		Width:     w,
		Height:    h,
		Frames:    a.sim.ShowCount(),
		Text:      a.sim.Capture(),
	}
}

// WaitFor polls snapshots until cond holds.
func (a *Agent) WaitFor(cond func(Snapshot) bool, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if cond(a.Snapshot()) {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		time.Sleep(a.tickRate)
	}
}

// WaitForText waits until text is on screen.
func (a *Agent) WaitForText(text string, timeout time.Duration) error {
	if err := a.WaitFor(func(s Snapshot) bool { return strings.Contains(s.Text, text) }, timeout); err != nil {
		return fmt.Errorf("waiting for %q: %w", text, err)
	}
	return nil
}

// WaitForNoText waits until text is gone from the screen.
func (a *Agent) WaitForNoText(text string, timeout time.Duration) error {
	if err := a.WaitFor(func(s Snapshot) bool { return !strings.Contains(s.Text, text) }, timeout); err != nil {
		return fmt.Errorf("waiting for %q to disappear: %w", text, err)
	}
	return nil
}

// ContainsText reports whether text is on screen.
func (a *Agent) ContainsText(text string) bool {
	return a.sim.ContainsText(text)
}

// FindText returns the position of text, or (-1, -1).
func (a *Agent) FindText(text string) (x, y int) {
	return a.sim.FindText(text)
}

// CaptureText returns the screen text.
func (a *Agent) CaptureText() string {
	return a.sim.Capture()
}
