package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/furry-list/backend"
	"github.com/odvcencio/furry-list/runtime"
	"github.com/odvcencio/furry-list/scroll"
	"github.com/odvcencio/furry-list/state"
	"github.com/odvcencio/furry-list/terminal"
	"github.com/odvcencio/furry-list/widgets"
)

const wait = 2 * time.Second

func itemList(t *testing.T, n int, follow scroll.FollowPolicy) (*widgets.VirtualList[string], *state.Signal[[]string]) {
	t.Helper()
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i)
	}
	src := state.NewSignal(items)
	render := widgets.TextRenderer(func(s string) string { return s },
		backend.DefaultStyle(), backend.DefaultStyle().Reverse(true))
	list, err := widgets.NewVirtualList[string](widgets.NewSignalAdapter[string](src, render), widgets.VirtualListConfig{
		ItemHeight: 1,
		Follow:     follow,
	})
	require.NoError(t, err)
	return list, src
}

func quitOnQ(app *runtime.App, msg runtime.Message) bool {
	if key, ok := msg.(runtime.KeyMsg); ok && key.Key == terminal.KeyRune && key.Rune == 'q' {
		return app.ExecuteCommand(runtime.Quit{})
	}
	return runtime.DefaultUpdate(app, msg)
}

func startAgent(t *testing.T, root runtime.Widget, w, h int) *Agent {
	t.Helper()
	a, err := New(Config{
		App:    runtime.AppConfig{Root: root, Update: quitOnQ},
		Width:  w,
		Height: h,
	})
	require.NoError(t, err)
	require.NoError(t, a.Start(context.Background(), wait))
	return a
}

func TestNewRequiresRoot(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrNoRoot)
}

func TestAgentNavigatesLargeList(t *testing.T) {
	list, _ := itemList(t, 10_000, scroll.FollowNever)
	a := startAgent(t, list, 20, 5)
	defer a.Stop()

	require.NoError(t, a.WaitForText("item 0", wait))
	snap := a.Snapshot()
	assert.Equal(t, 20, snap.Width)
	assert.Len(t, snap.Lines(), 5)
	assert.Equal(t, "item 4", snap.Lines()[4])

	a.SendKey(terminal.KeyEnd)
	require.NoError(t, a.WaitForText("item 9999", wait))
	require.NoError(t, a.WaitForNoText("item 0", wait))
	assert.Equal(t, "item 9995", a.Snapshot().Lines()[0])
	x, y := a.FindText("item 9999")
	assert.Equal(t, 0, x)
	assert.Equal(t, 4, y)

	a.SendKey(terminal.KeyHome)
	require.NoError(t, a.WaitForText("item 0", wait))
}

func TestAgentScrollsWithWheel(t *testing.T) {
	list, _ := itemList(t, 100, scroll.FollowNever)
	a := startAgent(t, list, 20, 5)
	defer a.Stop()

	a.Scroll(1, 1, 2)
	require.NoError(t, a.WaitFor(func(s Snapshot) bool {
		lines := s.Lines()
		return len(lines) > 0 && lines[0] == "item 6"
	}, wait))

	a.Scroll(1, 1, -1)
	require.NoError(t, a.WaitFor(func(s Snapshot) bool {
		lines := s.Lines()
		return len(lines) > 0 && lines[0] == "item 3"
	}, wait))
}

func TestAgentFollowsAppendedItems(t *testing.T) {
	list, src := itemList(t, 3, scroll.FollowNearBottom)
	status := widgets.NewSignalLabel(state.NewSignal("status"), nil)
	a := startAgent(t, widgets.NewStack(widgets.Flex(list), widgets.Fixed(status, 1)), 20, 4)
	defer a.Stop()

	require.NoError(t, a.WaitForText("item 2", wait))
	for i := 3; i < 20; i++ {
		src.Update(func(items []string) []string {
			return append(append([]string(nil), items...), fmt.Sprintf("item %d", i))
		})
	}
	require.NoError(t, a.WaitForText("item 19", wait))
	lines := a.Snapshot().Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"item 17", "item 18", "item 19", "status"}, lines)
}

func TestAgentResize(t *testing.T) {
	list, _ := itemList(t, 50, scroll.FollowNever)
	a := startAgent(t, list, 20, 3)
	defer a.Stop()

	require.NoError(t, a.WaitForText("item 2", wait))
	assert.False(t, a.ContainsText("item 5"))

	a.Resize(30, 8)
	require.NoError(t, a.WaitForText("item 7", wait))
	assert.Equal(t, 30, a.Snapshot().Width)
}

func TestAgentWaitForQuit(t *testing.T) {
	list, _ := itemList(t, 5, scroll.FollowNever)
	a := startAgent(t, list, 20, 5)

	a.SendRune('q')
	require.NoError(t, a.Wait(wait))
	assert.ErrorIs(t, a.Stop(), ErrNotRunning)
}

func TestAgentTimeout(t *testing.T) {
	list, _ := itemList(t, 5, scroll.FollowNever)
	a := startAgent(t, list, 20, 5)
	defer a.Stop()

	err := a.WaitForText("missing", 30*time.Millisecond)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.True(t, strings.Contains(err.Error(), "missing"))
	assert.ErrorIs(t, a.Start(context.Background(), wait), ErrRunning)
}
