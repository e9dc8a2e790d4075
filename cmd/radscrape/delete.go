package main

import (
	"fmt"

	"github.com/radscrape/radscrape"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return radscrape.Errorf(radscrape.EINVALID, "use --force to confirm deletion")
	}

	var err error
	if c.Article {
		err = deps.Articles.DeleteArticle(deps.Ctx, c.SourceID)
	} else {
		err = deps.Cases.DeleteCase(deps.Ctx, c.SourceID)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radscrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s\n", c.SourceID)
	return nil
}
