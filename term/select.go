package term

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/plandex-ai/survey/v2"
)

func SelectFromList(msg string, options []string) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message:       color.New(ColorHiMagenta, color.Bold).Sprint(msg),
		Options:       options,
		FilterMessage: "",
	}
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		if err.Error() == "interrupt" {
			os.Exit(0)
		}

		return "", err
	}

	return selected, nil
}

// SelectIndexFromList is SelectFromList for when labels may repeat.
func SelectIndexFromList(msg string, options []string) (int, error) {
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = fmt.Sprintf("%d. %s", i+1, opt)
	}

	selected, err := SelectFromList(msg, labels)
	if err != nil {
		return -1, err
	}

	for i, label := range labels {
		if label == selected {
			return i, nil
		}
	}
	return -1, fmt.Errorf("unknown selection %q", selected)
}
