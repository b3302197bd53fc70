package main

import (
	"flag"

	"github.com/etnz/exmini/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors completes the values of flags by name, anything otherwise.
var flagPredictors = map[string]complete.Predictor{
	"backend": predict.Set{"file", "sqlite"},
	"type":    predict.Set{"inflow", "outflow", "conversion"},
	"store":   predict.Dirs("*"),
	"o":       predict.Dirs("*"),
	"f":       predict.Files("*.json"),
	"v":       predict.Nothing,
	"offline": predict.Nothing,
	"raw":     predict.Nothing,
	"md":      predict.Nothing,
	"html":    predict.Nothing,
	"strict":  predict.Nothing,
	"list":    predict.Nothing,
}

// flags returns the completion of the flags of f.
func flags(f *flag.FlagSet) map[string]complete.Predictor {
	res := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			res[fl.Name] = p
			return
		}
		res[fl.Name] = predict.Something
	})
	return res
}

// completion builds the completion tree of the registered subcommands.
func completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flags(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		sub := &complete.Command{Flags: flags(f)}
		if cmd.Name() == "topic" {
			sub.Args = predict.Set(append(docs.GetAllTopics(), docs.Readme))
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}
