package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"golang.org/x/sync/errgroup"

	"lifeterm/src/patterns"
	"lifeterm/src/universe"
	"lifeterm/src/view"
)

type EnvOptions struct {
	interactive bool
	engine      string
	config      string
	list        bool
}

func main() {
	templates := patterns.Catalog()
	eo, uo := initOptions(templates)

	if eo.list {
		for i, t := range templates {
			fmt.Printf("%2d  %v - %v\n", i, aurora.Green(t.Name), t.Descr)
		}
		return
	}

	step := universe.Engines[eo.engine]

	if !eo.interactive {
		v := view.NewConsoleOut(uo, os.Stdout)
		v.Start(eo.engine)
		universe.NewRunner(uo, templates, v, step).Run()
		v.Finish()
		return
	}

	v, err := view.NewViewTerminal()
	if err != nil {
		log.Panicln(err)
	}
	r := universe.NewRunner(uo, templates, v, step)

	var eg errgroup.Group
	eg.Go(v.Start)
	eg.Go(func() error {
		r.Run()
		v.Stop()
		return nil
	})
	if err := eg.Wait(); err != nil {
		log.Panicln(err)
	}
}

func initOptions(templates []universe.Template) (eo *EnvOptions, uo universe.Options) {
	engineNames := make([]string, 0, len(universe.Engines))
	for k := range universe.Engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)

	eo = &EnvOptions{engine: "sparse", config: configArg(os.Args[1:])}

	//the file is loaded first, the flags are parsed over the file values
	uo = universe.DefaultOptions
	var loadErr error
	if eo.config != "" {
		uo, loadErr = universe.LoadOptions(eo.config)
	}

	p := newParser(eo, &uo, engineNames)
	if err := p.Parse(); err != nil {
		p.ShowHelpAndExit(err.Error())
	}

	if loadErr != nil {
		p.ShowHelpAndExit(loadErr.Error())
	}
	if _, ok := universe.Engines[eo.engine]; !ok {
		p.ShowHelpAndExit("unknown engine")
	}
	if uo.StartPattern != "" && universe.TemplateIndex(templates, uo.StartPattern) < 0 {
		p.ShowHelpAndExit("unknown pattern, one of: " + strings.Join(patterns.Names(templates), ", "))
	}
	if err := uo.Validate(); err != nil {
		p.ShowHelpAndExit(err.Error())
	}
	return
}

//newParser binds the flags to eo and uo, the current values are the flag defaults
func newParser(eo *EnvOptions, uo *universe.Options, engineNames []string) *flaggy.Parser {
	p := flaggy.NewParser("lifeterm")
	p.Description = "\"The Life\" pattern carousel: plays each pattern until it repeats or dies out"
	p.ShowHelpOnUnexpected = true
	p.Int(&uo.Width, "x", "width", "Width of the board in headless mode")
	p.Int(&uo.Height, "y", "height", "Height of the board in headless mode")
	p.Duration(&uo.Interval, "i", "interval", "Interval between the frames, for example 50ms")
	p.Int(&uo.MaxSteps, "s", "maxSteps", "Quit after maxSteps frames in headless mode, 0 - never")
	p.String(&uo.StartPattern, "p", "pattern", "Pattern to start with, see --list")
	p.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")
	p.String(&eo.config, "c", "config", "JSON file with the options, flags override it")
	p.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	p.Bool(&eo.list, "l", "list", "List the patterns and exit")
	return p
}

//configArg finds the config file name in the command line before the flags are parsed
//the last occurrence wins, like in flaggy
func configArg(args []string) (config string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		for _, name := range []string{"-c", "--config"} {
			if a == name && i+1 < len(args) {
				config = args[i+1]
				i++
			} else if strings.HasPrefix(a, name+"=") {
				config = strings.TrimPrefix(a, name+"=")
			}
		}
	}
	return
}
