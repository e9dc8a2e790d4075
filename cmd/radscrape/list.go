package main

import (
	"fmt"

	"github.com/radscrape/radscrape"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if c.Articles {
		return c.listArticles(deps)
	}
	return c.listCases(deps)
}

func (c *ListCmd) listCases(deps *Dependencies) error {
	filter := radscrape.CaseFilter{Limit: c.Limit, Offset: c.Offset}
	if c.BodySystem != "" {
		filter.BodySystem = &c.BodySystem
	}

	cases, err := deps.Cases.FindCases(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radscrape.ErrorMessage(err))
		return err
	}

	if len(cases) == 0 {
		fmt.Fprintln(deps.Stdout, "No cases found. Use 'radscrape harvest' or 'radscrape case --save' to store some.")
		return nil
	}

	for _, record := range cases {
		if c.Full {
			payload, err := record.ToJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(deps.Stdout, payload)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", record.SourceID, record.BodySystem, record.Title)
	}

	return nil
}

func (c *ListCmd) listArticles(deps *Dependencies) error {
	filter := radscrape.ArticleFilter{Limit: c.Limit, Offset: c.Offset}
	if c.BodySystem != "" {
		filter.BodySystem = &c.BodySystem
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radscrape.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'radscrape harvest' or 'radscrape article --save' to store some.")
		return nil
	}

	for _, record := range articles {
		if c.Full {
			payload, err := record.ToJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(deps.Stdout, payload)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", record.SourceID, record.BodySystem, record.Title)
	}

	return nil
}
