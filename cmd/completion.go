package cmd

import (
	"flag"

	"github.com/etnz/rebalance/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the bash completion tree of rebal: subcommands, their
// flags and the global flags.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Flags: flagPredictors(global),
		Sub:   make(map[string]*complete.Command),
	}
	for _, c := range Commands {
		root.Sub[c.Name()] = subcommandCompletion(c)
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

func subcommandCompletion(c subcommands.Command) *complete.Command {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	sub := &complete.Command{Flags: flagPredictors(fs)}
	if c.Name() == "topic" {
		topics, _ := docs.GetAllTopics()
		sub.Args = predict.Set(topics)
	}
	return sub
}

// flagPredictors predicts nothing after boolean flags, and something after the others.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
