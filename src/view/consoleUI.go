package view

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifeterm/src/universe"
)

//statusHeight is the count of terminal lines under the board
const statusHeight = 1

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the full screen terminal viewport
//gocui runs its own main loop, keys are handed to the Runner through the buffered channel
//the board size is recorded by layout on the gocui goroutine and read by the Runner under the lock
type ConsoleUI struct {
	g    *gocui.Gui
	k    []keyBindings
	keys chan rune
	size struct {
		universe.Dimensions
		sync.Mutex
	}
	done     chan struct{} //closed when the event loop is over
	doneOnce sync.Once
}

//NewViewTerminal initializes the terminal, call Start to run the event loop
func NewViewTerminal() (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	t := ConsoleUI{
		g:    g,
		keys: make(chan rune, 16),
		done: make(chan struct{}),
	}
	//the event loop isn't running yet, so the size can be read directly
	t.setSize(boardDimensions(g.Size()))

	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Quit", t.cmdQuit, ""},
		{'Q', "", "", t.cmdQuit, ""},
		{'n', "N", "Next pattern", t.cmdNext, ""},
		{'N', "", "", t.cmdNext, ""},
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}
	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return err
		}
	}
	return nil
}

//Start runs the terminal event loop until Stop is called
//the Runner gets the quit key whatever the reason of the exit is
func (t *ConsoleUI) Start() error {
	defer t.finish()
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

//Stop breaks the event loop, returns immediately
func (t *ConsoleUI) Stop() {
	t.g.Update(func(g *gocui.Gui) error {
		return gocui.ErrQuit
	})
}

//Size returns the board area - the terminal without the status line
func (t *ConsoleUI) Size() universe.Dimensions {
	t.size.Lock()
	defer t.size.Unlock()
	return t.size.Dimensions
}

func (t *ConsoleUI) setSize(d universe.Dimensions) {
	t.size.Lock()
	t.size.Dimensions = d
	t.size.Unlock()
}

//finish marks the event loop as over, PollKey reports quit from now on
func (t *ConsoleUI) finish() {
	t.doneOnce.Do(func() { close(t.done) })
}

//Draw renders the board and the status line
//it must never break the event loop, so rendering errors are dropped
func (t *ConsoleUI) Draw(live universe.LiveSet, d universe.Dimensions, st universe.Status) {
	board := renderBoard(live, d)
	status := t.renderStatus(st)
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("board"); e == nil {
			v.Clear()
			_, _ = fmt.Fprint(v, board)
		}
		if v, e := g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprint(v, status)
		}
		return nil
	})
}

//PollKey returns the pending key, never blocks
func (t *ConsoleUI) PollKey() (rune, bool) {
	select {
	case <-t.done:
		return universe.KeyQuit, true
	default:
	}
	select {
	case k := <-t.keys:
		return k, true
	default:
		return 0, false
	}
}

func (t *ConsoleUI) renderStatus(st universe.Status) string {
	b := bytes.Buffer{}
	b.WriteString(renderProp("Pattern", "%v", aurora.Cyan(st.PatternName)))
	b.WriteString(renderProp("Generation", "%v", st.Generation))
	b.WriteString(renderProp("Live", "%v", st.LiveCells))
	for _, k := range t.k {
		if k.name == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	d := boardDimensions(maxX, maxY)
	t.setSize(d)

	if v, err := g.SetView("board", -1, -1, maxX, d.Rows); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
	}

	if v, err := g.SetView("status", -1, d.Rows-1, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorBlack
	}
	return nil
}

//push delivers the key to the Runner, the key is dropped when the queue is full
func (t *ConsoleUI) push(key rune) {
	select {
	case t.keys <- key:
	default:
	}
}

//cmdQuit doesn't go through the key queue, so it's never dropped
func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	t.finish()
	return nil
}

func (t *ConsoleUI) cmdNext(_ *gocui.View) error {
	t.push(universe.KeyNext)
	return nil
}
