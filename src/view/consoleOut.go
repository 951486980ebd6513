package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"lifeterm/src/universe"
)

//ConsoleOut is the headless viewport: fixed board size, progress is printed as text
//it reports the quit key after MaxSteps frames
type ConsoleOut struct {
	o         universe.Options
	w         io.Writer
	frames    int
	reseeds   int
	patterns  int
	last      universe.Status
	startTime time.Time
}

func NewConsoleOut(o universe.Options, w io.Writer) *ConsoleOut {
	return &ConsoleOut{o: o, w: w}
}

//Start prints the running configuration
func (c *ConsoleOut) Start(engine string) {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", c.o.Width, c.o.Height),
		"Interval":       c.o.Interval,
		"Max iterations": c.o.MaxSteps,
		"Engine":         engine,
	})
	fmt.Fprintln(c.w, "\nSimulation started...")
}

func (c *ConsoleOut) Size() universe.Dimensions {
	return universe.Dimensions{Rows: c.o.Height, Cols: c.o.Width}
}

func (c *ConsoleOut) Draw(_ universe.LiveSet, _ universe.Dimensions, st universe.Status) {
	c.frames++
	c.last = st
	if st.Reseeds != c.reseeds {
		c.reseeds = st.Reseeds
		c.patterns++
		fmt.Fprintf(c.w, "  Pattern: %v, live cells: %v\n", aurora.Cyan(st.PatternName), st.LiveCells)
		return
	}
	if st.Generation%10 == 0 {
		fmt.Fprintf(c.w, "    Generation: %v, live cells: %v\n", st.Generation, st.LiveCells)
	}
}

func (c *ConsoleOut) PollKey() (rune, bool) {
	if c.o.MaxSteps > 0 && c.frames >= c.o.MaxSteps {
		return universe.KeyQuit, true
	}
	return 0, false
}

//Finish prints the summary
func (c *ConsoleOut) Finish() {
	fmt.Fprintln(c.w, "\nFinished:")
	c.printHashData(map[string]interface{}{
		"Frames":          c.frames,
		"Patterns seeded": c.patterns,
		"Last pattern":    c.last.PatternName,
		"Live cells":      c.last.LiveCells,
		"Total time":      time.Since(c.startTime).Round(time.Millisecond),
	})
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", aurora.Green(propName), d[propName])
	}
}
