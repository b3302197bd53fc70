package main

import (
	"flag"
	"slices"
	"testing"

	"github.com/etnz/exmini/cmd"
	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("exm", flag.ContinueOnError), "exm")
	cmd.Register(commander)
	root := completion(commander)

	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if _, ok := root.Sub[c.Name()]; !ok {
			t.Errorf("command %q has no completion", c.Name())
		}
	})
	if len(root.Sub) == 0 {
		t.Fatal("no command completion")
	}

	for _, name := range []string{"store", "backend", "url", "v"} {
		if _, ok := root.Flags[name]; !ok {
			t.Errorf("global flag -%s has no completion", name)
		}
	}

	add := root.Sub["add"]
	if add == nil {
		t.Fatal("add has no completion")
	}
	if got := add.Flags["type"].Predict(""); !slices.Equal(got, []string{"inflow", "outflow", "conversion"}) {
		t.Errorf("add -type completes %q", got)
	}

	topic := root.Sub["topic"]
	if topic == nil || topic.Args == nil {
		t.Fatal("topic has no argument completion")
	}
	if got := topic.Args.Predict(""); !slices.Contains(got, "conversion") || !slices.Contains(got, "readme") {
		t.Errorf("topic completes %q, want the manual topics", got)
	}
}
