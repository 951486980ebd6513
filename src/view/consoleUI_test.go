package view

import (
	"sync"
	"testing"

	"lifeterm/src/universe"
)

//newTestConsoleUI builds the viewport without the terminal
func newTestConsoleUI() *ConsoleUI {
	return &ConsoleUI{keys: make(chan rune, 16), done: make(chan struct{})}
}

func TestConsoleUIKeys(t *testing.T) {
	v := newTestConsoleUI()
	if _, ok := v.PollKey(); ok {
		t.Fatalf("key reported on the empty queue")
	}
	_ = v.cmdNext(nil)
	if k, ok := v.PollKey(); !ok || k != universe.KeyNext {
		t.Fatalf("got %q %v, expected the next key", k, ok)
	}
}

func TestConsoleUIQuitWithFullQueue(t *testing.T) {
	v := newTestConsoleUI()
	for i := 0; i < 100; i++ {
		_ = v.cmdNext(nil)
	}
	_ = v.cmdQuit(nil)
	if k, ok := v.PollKey(); !ok || k != universe.KeyQuit {
		t.Fatalf("got %q %v, expected quit ahead of the queued keys", k, ok)
	}
}

func TestConsoleUIFinished(t *testing.T) {
	v := newTestConsoleUI()
	v.finish()
	v.finish()
	for i := 0; i < 3; i++ {
		if k, ok := v.PollKey(); !ok || k != universe.KeyQuit {
			t.Fatalf("poll %v: got %q %v, expected quit after the event loop is over", i, k, ok)
		}
	}
}

func TestConsoleUIRunnerStopsAfterFinish(t *testing.T) {
	v := newTestConsoleUI()
	v.setSize(universe.Dimensions{Rows: 10, Cols: 10})
	for i := 0; i < 100; i++ {
		_ = v.cmdNext(nil)
	}
	v.finish()
	r := universe.NewRunner(universe.Options{}, []universe.Template{{Name: "dot", Cells: []universe.Cell{{Row: 0, Col: 0}}}}, &noDraw{v}, nil)
	r.Run()
	if st := r.Status(); st.Generation != 0 {
		t.Fatalf("stepped %v generations after the event loop was over", st.Generation)
	}
}

//noDraw skips the terminal rendering
type noDraw struct {
	*ConsoleUI
}

func (noDraw) Draw(universe.LiveSet, universe.Dimensions, universe.Status) {}

func TestConsoleUISizeConcurrent(t *testing.T) {
	v := newTestConsoleUI()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			v.setSize(boardDimensions(80+i%2, 24))
		}
	}()
	for i := 0; i < 1000; i++ {
		d := v.Size()
		if d.Rows != 0 && d.Rows != 23 {
			t.Errorf("unexpected size %v", d)
			break
		}
	}
	wg.Wait()
	if d := v.Size(); d != (universe.Dimensions{Rows: 23, Cols: 81}) {
		t.Fatalf("last size %v, expected 23 x 81", d)
	}
}
