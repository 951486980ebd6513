package view

import (
	"bytes"
	"strings"
	"testing"

	"lifeterm/src/universe"
)

func TestConsoleOutRun(t *testing.T) {
	o := universe.DefaultOptions
	o.Interval = 0
	o.Width, o.Height = 30, 20
	o.MaxSteps = 25
	var b bytes.Buffer
	v := NewConsoleOut(o, &b)
	if d := v.Size(); d != (universe.Dimensions{Rows: 20, Cols: 30}) {
		t.Fatalf("size %v", d)
	}

	templates := []universe.Template{
		{Name: "block", Cells: []universe.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}},
		{Name: "blinker", Cells: []universe.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}},
	}
	v.Start("sparse")
	universe.NewRunner(o, templates, v, nil).Run()
	v.Finish()

	if v.frames != o.MaxSteps {
		t.Fatalf("frames = %v, expected %v", v.frames, o.MaxSteps)
	}
	out := b.String()
	for _, s := range []string{"Running configuration:", "Simulation started", "block", "blinker", "Finished:"} {
		if !strings.Contains(out, s) {
			t.Fatalf("output has no %q:\n%v", s, out)
		}
	}
	if v.patterns < 2 {
		t.Fatalf("patterns seeded = %v, expected the carousel to move", v.patterns)
	}
}

func TestConsoleOutUnlimited(t *testing.T) {
	o := universe.DefaultOptions
	o.MaxSteps = 0
	v := NewConsoleOut(o, &bytes.Buffer{})
	for i := 0; i < 1000; i++ {
		v.Draw(universe.LiveSet{}, v.Size(), universe.Status{})
	}
	if _, ok := v.PollKey(); ok {
		t.Fatalf("unlimited run reported a key")
	}
}
