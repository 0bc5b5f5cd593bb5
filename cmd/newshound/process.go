package main

import (
	"encoding/json"
	"fmt"

	"github.com/newshoundlabs/newshound"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	groups, err := deps.Crawler.Process(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newshound.ErrorMessage(err))
		return err
	}

	var total int
	for _, articles := range groups {
		total += len(articles)
	}
	fmt.Fprintf(deps.Stderr, "Extracted %d articles in %d groups from %s\n", total, len(groups), c.URL)

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(groups)
}
