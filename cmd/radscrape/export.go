package main

import (
	"fmt"

	"github.com/radscrape/radscrape"
	"github.com/radscrape/radscrape/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	exporter := fs.NewExporter(c.Dir)

	caseFilter := radscrape.CaseFilter{}
	articleFilter := radscrape.ArticleFilter{}
	if c.BodySystem != "" {
		caseFilter.BodySystem = &c.BodySystem
		articleFilter.BodySystem = &c.BodySystem
	}

	cases, err := deps.Cases.FindCases(deps.Ctx, caseFilter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radscrape.ErrorMessage(err))
		return err
	}
	for _, record := range cases {
		if _, err := exporter.WriteCase(record); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing case %s: %v\n", record.SourceID, err)
			return err
		}
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, articleFilter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radscrape.ErrorMessage(err))
		return err
	}
	for _, record := range articles {
		if _, err := exporter.WriteArticle(record); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing article %s: %v\n", record.SourceID, err)
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d cases and %d articles to %s\n", len(cases), len(articles), c.Dir)
	return nil
}
