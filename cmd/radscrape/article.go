package main

import (
	"encoding/json"
	"fmt"

	"github.com/radscrape/radscrape"
)

// Run executes the article command.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	record, err := deps.ArticleScraper.ScrapeArticle(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radscrape.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	if c.Save {
		if err := deps.Articles.CreateArticle(deps.Ctx, record); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", radscrape.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved article %s\n", record.SourceID)
	}

	return nil
}
