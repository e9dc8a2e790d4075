package main

import (
	"context"
	"io"

	"github.com/radscrape/radscrape"
	"github.com/radscrape/radscrape/harvest"
	"github.com/radscrape/radscrape/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx            context.Context
	Stdout         io.Writer
	Stderr         io.Writer
	DB             *sqlite.DB
	Cases          radscrape.CaseService
	Articles       radscrape.ArticleService
	Sitemaps       radscrape.SitemapService
	CaseScraper    radscrape.CaseScraper
	ArticleScraper radscrape.ArticleScraper
	Harvester      *harvest.Harvester
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log each fetch and scrape to stderr"`

	Case    CaseCmd    `cmd:"" help:"Scrape a single case page"`
	Article ArticleCmd `cmd:"" help:"Scrape a single article page"`
	Harvest HarvestCmd `cmd:"" help:"Discover and scrape all cases and articles under a base URL"`
	List    ListCmd    `cmd:"" help:"List stored records"`
	Export  ExportCmd  `cmd:"" help:"Export stored records as JSON files"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored record"`
}

// CaseCmd is the "case" subcommand.
type CaseCmd struct {
	URL  string `arg:"" help:"Case page URL"`
	Save bool   `short:"s" help:"Save the record to the database"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	URL  string `arg:"" help:"Article page URL"`
	Save bool   `short:"s" help:"Save the record to the database"`
}

// HarvestCmd is the "harvest" subcommand.
type HarvestCmd struct {
	URL         string   `arg:"" help:"Base site URL"`
	Preview     bool     `short:"p" help:"Show discovered URLs without scraping"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent scrape limit"`
	RPS         float64  `name:"rps" default:"1.0" help:"Requests per second per domain"`
	Limit       int      `short:"l" help:"Stop after this many discovered URLs"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Articles   bool   `help:"List articles instead of cases"`
	BodySystem string `help:"Filter by body system"`
	Limit      int    `default:"20" help:"Maximum records to show"`
	Offset     int    `help:"Records to skip"`
	Full       bool   `help:"Print full JSON payloads"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir        string `arg:"" help:"Output directory"`
	BodySystem string `help:"Export only records for a body system"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	SourceID string `arg:"" help:"Source-local record identifier"`
	Article  bool   `help:"Delete an article instead of a case"`
	Force    bool   `help:"Confirm deletion"`
}
