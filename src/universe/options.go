package universe

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

//Options represents the Runner's configurable options
type Options struct {
	Width        int           `json:"width"`         //headless board width
	Height       int           `json:"height"`        //headless board height
	Interval     time.Duration `json:"interval"`      //delay between the frames, in nanoseconds when loaded from file
	MaxSteps     int           `json:"max_steps"`     //headless mode quits after MaxSteps frames, 0 - never
	StartPattern string        `json:"start_pattern"` //name of the first pattern, empty - the first in the catalog
}

//default options
const (
	DefSimulationInterval = time.Millisecond * 50
	DefMaxSteps           = 0
	DefWidth              = 80
	DefHeight             = 24
)

var DefaultOptions = Options{
	Width:    DefWidth,
	Height:   DefHeight,
	Interval: DefSimulationInterval,
	MaxSteps: DefMaxSteps,
}

//LoadOptions reads the JSON file over the default options
func LoadOptions(filename string) (Options, error) {
	o := DefaultOptions
	data, err := os.ReadFile(filename)
	if err != nil {
		return o, errors.Wrapf(err, "[LoadOptions] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, &o); err != nil {
		return o, errors.Wrapf(err, "[LoadOptions] failed to unmarshal data from file: %+v", filename)
	}
	return o, o.Validate()
}

//Validate rejects the options the Runner can't work with
func (o Options) Validate() error {
	if o.Width < 0 || o.Height < 0 {
		return errors.Errorf("invalid dimension %v x %v", o.Width, o.Height)
	}
	if o.Interval < 0 {
		return errors.Errorf("invalid interval %v", o.Interval)
	}
	if o.MaxSteps < 0 {
		return errors.Errorf("invalid max steps %v", o.MaxSteps)
	}
	return nil
}
