package cmd

import (
	"github.com/etnz/tote/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()

	sub := map[string]*complete.Command{
		"help":     {},
		"flags":    {},
		"commands": {},
	}
	for _, command := range Commands {
		sub[command.Name()] = &complete.Command{}
	}
	sub["calc"] = &complete.Command{
		Flags: map[string]complete.Predictor{
			"strict": predict.Nothing,
			"format": predict.Set{"text", "markdown", "json"},
		},
		Args: predict.Files("*"),
	}
	sub["topic"] = &complete.Command{Args: predict.Set(append(topics, "readme"))}

	return &complete.Command{
		Sub:   sub,
		Flags: map[string]complete.Predictor{"v": predict.Nothing},
	}
}
