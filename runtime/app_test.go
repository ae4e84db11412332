package runtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/odvcencio/furry-list/backend"
	"github.com/odvcencio/furry-list/backend/sim"
	"github.com/odvcencio/furry-list/terminal"
)

// labelWidget draws its text on the first row and quits on 'q'.
type labelWidget struct {
	text    string
	bounds  Rect
	keys    []rune
	focused bool
}

func (w *labelWidget) Measure(c Constraints) Size {
	return c.Constrain(Size{Width: len(w.text), Height: 1})
}

func (w *labelWidget) Layout(bounds Rect) { w.bounds = bounds }

func (w *labelWidget) Render(ctx RenderContext) {
	ctx = ctx.Sub(w.bounds)
	ctx.Fill(w.bounds, ' ', backend.DefaultStyle())
	ctx.SetString(w.bounds.X, w.bounds.Y, w.text, backend.DefaultStyle())
}

func (w *labelWidget) HandleMessage(msg Message) HandleResult {
	key, ok := msg.(KeyMsg)
	if !ok || key.Key != terminal.KeyRune {
		return Unhandled()
	}
	w.keys = append(w.keys, key.Rune)
	if key.Rune == 'q' {
		return WithCommand(Quit{})
	}
	w.text = string(w.keys)
	return Handled()
}

func (w *labelWidget) Bounds() Rect    { return w.bounds }
func (w *labelWidget) CanFocus() bool  { return true }
func (w *labelWidget) Focus()          { w.focused = true }
func (w *labelWidget) Blur()           { w.focused = false }
func (w *labelWidget) IsFocused() bool { return w.focused }

func runApp(t *testing.T, app *App, ctx context.Context) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	return done
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestAppRunRendersAndQuits(t *testing.T) {
	be := sim.New(20, 3)
	root := &labelWidget{text: "hello"}
	app := NewApp(AppConfig{Backend: be, Root: root})

	done := runApp(t, app, context.Background())
	waitFor(t, func() bool { return be.ContainsText("hello") })
	if !root.focused {
		t.Fatal("expected root to receive focus")
	}

	be.InjectKeyRune('h')
	be.InjectKeyRune('i')
	waitFor(t, func() bool { return be.ContainsText("hi") && !be.ContainsText("hello") })

	be.InjectKeyRune('q')
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("app did not quit")
	}
}

func TestAppRunStopsOnContextCancel(t *testing.T) {
	be := sim.New(10, 2)
	app := NewApp(AppConfig{Backend: be, Root: &labelWidget{text: "x"}})
	ctx, cancel := context.WithCancel(context.Background())

	done := runApp(t, app, ctx)
	waitFor(t, func() bool { return be.ShowCount() > 0 })
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestAppRunResizesScreen(t *testing.T) {
	be := sim.New(10, 2)
	root := &labelWidget{text: "x"}
	app := NewApp(AppConfig{Backend: be, Root: root})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := runApp(t, app, ctx)
	waitFor(t, func() bool { return be.ShowCount() > 0 })
	be.InjectResize(30, 6)
	waitFor(t, func() bool { return be.ShowCount() > 1 })
	cancel()
	<-done
	if root.bounds != (Rect{Width: 30, Height: 6}) {
		t.Fatalf("root bounds = %+v, want 30x6", root.bounds)
	}
}

func TestAppRunWithoutBackend(t *testing.T) {
	if err := NewApp(AppConfig{}).Run(context.Background()); !errors.Is(err, ErrNoBackend) {
		t.Fatalf("run = %v, want ErrNoBackend", err)
	}
}

func TestAppHandleCommandSendMsg(t *testing.T) {
	app := NewApp(AppConfig{})
	msg := ResizeMsg{Width: 10, Height: 5}
	if app.handleCommand(SendMsg{Message: msg}) {
		t.Fatal("expected SendMsg to not force a render")
	}
	select {
	case got := <-app.messages:
		if got != msg {
			t.Fatalf("posted %#v, want %#v", got, msg)
		}
	default:
		t.Fatal("expected message to be posted")
	}
}

func TestAppSpawnWaitsForRun(t *testing.T) {
	app := NewApp(AppConfig{})
	ran := make(chan struct{}, 1)
	app.Spawn(Effect{Run: func(context.Context, PostFunc) { ran <- struct{}{} }})

	select {
	case <-ran:
		t.Fatal("expected effect to wait for the task context")
	default:
	}

	app.taskCtx = context.Background()
	app.startPendingEffects()
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("expected pending effect to run")
	}
}

func TestAppEffectPanicIsRecovered(t *testing.T) {
	app := NewApp(AppConfig{})
	app.taskCtx = context.Background()
	done := make(chan struct{})
	app.handleCommand(Effect{Run: func(context.Context, PostFunc) {
		defer close(done)
		panic("boom")
	}})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("effect did not run")
	}
}
