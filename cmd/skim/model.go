package main

import (
	"fmt"
	"strings"
)

// Run executes the model command.
func (c *ModelCmd) Run(deps *Dependencies) error {
	info := deps.Summarizer.ModelInfo()
	if c.JSON {
		return printJSON(deps.Stdout, info)
	}

	w := deps.Stdout
	fmt.Fprintf(w, "Provider:        %s\n", info.Provider)
	fmt.Fprintf(w, "Model:           %s\n", info.Model)
	fmt.Fprintf(w, "Device:          %s\n", info.Device)
	fmt.Fprintf(w, "Loaded:          %t\n", info.Loaded)
	fmt.Fprintf(w, "Max input chars: %d\n", info.MaxInputChars)
	names := make([]string, 0, len(info.Lengths))
	for _, l := range info.Lengths {
		b := l.Bounds()
		names = append(names, fmt.Sprintf("%s (%d-%d tokens)", l, b.Min, b.Max))
	}
	fmt.Fprintf(w, "Lengths:         %s\n", strings.Join(names, ", "))
	return nil
}
