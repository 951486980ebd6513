package universe

import (
	"time"
	"unicode"
)

//user keys, case insensitive
const (
	KeyQuit = 'q'
	KeyNext = 'n'
)

//Runner drives the frame loop: polls the viewport, reseeds and steps the board
//it's the only owner of the simulation state, all the work is done in the caller's goroutine
type Runner struct {
	options   Options
	templates []Template
	view      Viewport
	step      Stepper
	sleep     func(time.Duration)

	pattern    int
	dims       Dimensions
	live       LiveSet
	history    *History
	generation int
	reseeds    int
}

//NewRunner creates the Runner, templates must not be empty
//nil step means the sparse engine
func NewRunner(o Options, templates []Template, v Viewport, step Stepper) *Runner {
	if step == nil {
		step = Step
	}
	r := &Runner{
		options:   o,
		templates: templates,
		view:      v,
		step:      step,
		sleep:     time.Sleep,
		live:      LiveSet{},
		history:   NewHistory(),
	}
	if i := TemplateIndex(templates, o.StartPattern); i >= 0 {
		r.pattern = i
	}
	return r
}

//TemplateIndex returns the index of the named template or -1
func TemplateIndex(templates []Template, name string) int {
	for i, t := range templates {
		if t.Name == name {
			return i
		}
	}
	return -1
}

//Run starts the frame loop and returns on the quit key
func (r *Runner) Run() {
	if len(r.templates) == 0 {
		return
	}
	r.dims = r.view.Size()
	r.reseed()
	for r.frame() {
		if r.options.Interval > 0 {
			r.sleep(r.options.Interval)
		}
	}
}

//Status returns current Runner status
func (r *Runner) Status() Status {
	st := Status{
		PatternIndex: r.pattern,
		Generation:   r.generation,
		LiveCells:    r.live.Len(),
		HistorySize:  r.history.Len(),
		Reseeds:      r.reseeds,
		Dimensions:   r.dims,
	}
	if r.pattern < len(r.templates) {
		st.PatternName = r.templates[r.pattern].Name
	}
	return st
}

//Live returns the current generation
func (r *Runner) Live() LiveSet {
	return r.live
}

//frame does one loop iteration, returns false when the user asked to quit
func (r *Runner) frame() bool {
	if d := r.view.Size(); d != r.dims {
		r.dims = d
		r.reseed()
	}

	r.view.Draw(r.live, r.dims, r.Status())

	if key, ok := r.view.PollKey(); ok {
		switch unicode.ToLower(key) {
		case KeyQuit:
			return false
		case KeyNext:
			r.nextPattern()
			return true
		}
	}

	if r.history.Check(r.live) == Terminal {
		r.nextPattern()
		return true
	}

	r.live = r.step(r.live, r.dims)
	r.generation++
	return true
}

//nextPattern switches to the next template in the catalog and reseeds
func (r *Runner) nextPattern() {
	r.pattern = (r.pattern + 1) % len(r.templates)
	r.reseed()
}

//reseed settles the current template on the board and forgets the history
func (r *Runner) reseed() {
	r.live = Seed(r.templates[r.pattern].Cells, r.dims)
	r.history.Clear()
	r.generation = 0
	r.reseeds++
}
