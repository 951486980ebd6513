package universe

//Viewport is the interface to any display - the object who can show the board and feed the user keys back
//the Runner depends only on these three calls
type Viewport interface {
	//Size returns current board dimensions, polled once per frame
	Size() Dimensions
	//Draw renders the live cells, best effort
	Draw(live LiveSet, d Dimensions, st Status)
	//PollKey returns the pending key if any, never blocks
	PollKey() (key rune, ok bool)
}

//Stepper computes the next generation inside the board bounds
type Stepper func(live LiveSet, d Dimensions) LiveSet

//Engines is the registry of available generation engines
var Engines = map[string]Stepper{
	"sparse": Step,
	"dense":  StepDense,
}

//Template represents the seeding pattern used to settle the board
type Template struct {
	Name  string //template name
	Descr string //template descr
	Cells []Cell //cells in authoring coordinates, may be unnormalized
}

//Status represents the Runner state at concrete moment
type Status struct {
	PatternIndex int
	PatternName  string
	Generation   int
	LiveCells    int
	HistorySize  int
	Reseeds      int
	Dimensions   Dimensions
}
