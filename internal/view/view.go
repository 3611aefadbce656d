// Package view renders a live terminal dashboard of the cursor state:
// the current snapshot on top, a rolling tail of recent events below.
package view

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/luuma/cursorwatch/internal/cursor"
	"github.com/luuma/cursorwatch/internal/monitor"
)

// redrawInterval bounds how often the dashboard repaints; the snapshot
// itself updates at the monitor's own cadence.
const redrawInterval = 50 * time.Millisecond

// maxRecent is how many event lines the tail keeps.
const maxRecent = 12

// View is a live dashboard over a running monitor.
type View struct {
	screen tcell.Screen
	mon    *monitor.Monitor
	recent []string
}

// New creates and initializes the terminal view.
func New(mon *monitor.Monitor) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("view: creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("view: initializing screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	return &View{screen: screen, mon: mon}, nil
}

// Run draws until the user quits (q, Esc, Ctrl-C) or ctx is cancelled.
// It owns the screen and finalizes it on return.
func (v *View) Run(ctx context.Context) error {
	defer v.screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
			case *tcell.EventKey:
				if v.isQuitKey(ev) {
					return nil
				}
			}

		case d := <-v.mon.Events():
			v.recent = append(v.recent, summarize(d))
			if len(v.recent) > maxRecent {
				v.recent = v.recent[len(v.recent)-maxRecent:]
			}

		case <-ticker.C:
			v.draw()
		}
	}
}

func (v *View) isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

func (v *View) draw() {
	v.screen.Clear()

	title := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Dim(true)

	st := v.mon.State()
	v.drawText(0, 0, "cursorwatch - live pointer state (q to quit)", title)
	v.drawText(0, 2, fmt.Sprintf("Position   %s", st.Position), tcell.StyleDefault)
	v.drawText(0, 3, fmt.Sprintf("Type       %s", st.CursorType), tcell.StyleDefault)
	v.drawText(0, 4, fmt.Sprintf("Left       %s", buttonState(st.LeftClick)), tcell.StyleDefault)
	v.drawText(0, 5, fmt.Sprintf("Right      %s", buttonState(st.RightClick)), tcell.StyleDefault)
	v.drawText(0, 6, fmt.Sprintf("Sampled    %s", st.Timestamp), dim)
	if drops := v.mon.Dropped(); drops > 0 {
		v.drawText(0, 7, fmt.Sprintf("Dropped    %d", drops), dim)
	}

	v.drawText(0, 9, "Recent events", title)
	for i, line := range v.recent {
		v.drawText(2, 10+i, line, tcell.StyleDefault)
	}

	v.screen.Show()
}

// drawText writes a string left to right, advancing by display width so
// wide runes do not overlap.
func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func buttonState(down bool) string {
	if down {
		return "down"
	}
	return "up"
}

// summarize renders one delivery as a tail line.
func summarize(d monitor.Delivery) string {
	switch ev := d.Event.(type) {
	case cursor.Move:
		return fmt.Sprintf("#%d  Move        %s  %s", d.Seq, ev.Position, ev.CursorType)
	case cursor.Click:
		return fmt.Sprintf("#%d  Click       %s  %s", d.Seq, ev.Button, ev.Position)
	case cursor.Release:
		return fmt.Sprintf("#%d  Release     %s", d.Seq, ev.Button)
	case cursor.TypeChange:
		return fmt.Sprintf("#%d  TypeChange  %s  %s", d.Seq, ev.NewType, ev.Position)
	default:
		return fmt.Sprintf("#%d  %s", d.Seq, d.Event.Tag())
	}
}
