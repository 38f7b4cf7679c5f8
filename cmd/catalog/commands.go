package main

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"

	"github.com/listenupapp/bookcatalog/internal/catalog"
	"github.com/listenupapp/bookcatalog/internal/domain"
	"github.com/listenupapp/bookcatalog/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func commands(cat func() *catalog.Catalog) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "list",
			Usage: "print every record in catalog order",
			Action: func(ctx *cli.Context) error {
				return printJSON(ctx, cat().All())
			},
		},
		{
			Name:  "recent",
			Usage: "print records published after " + strconv.Itoa(domain.RecentAfterYear),
			Action: func(ctx *cli.Context) error {
				return printJSON(ctx, cat().Recent())
			},
		},
		{
			Name:  "genres",
			Usage: "print the record count per genre",
			Action: func(ctx *cli.Context) error {
				return printJSON(ctx, cat().GenreCounts())
			},
		},
		{
			Name:      "author",
			Usage:     "print records whose author contains the given text (case-insensitive)",
			ArgsUsage: "<text>",
			Action: func(ctx *cli.Context) error {
				return printJSON(ctx, cat().ByAuthor(ctx.Args().First()))
			},
		},
		{
			Name:  "search",
			Usage: "print records matching every given criterion",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "year", Usage: "exact year (1949) or inclusive range (1940..1960)"},
				&cli.StringFlag{Name: "genre", Usage: "genre substring"},
				&cli.StringFlag{Name: "author", Usage: "author substring"},
				&cli.StringFlag{Name: "title", Usage: "title substring"},
			},
			Action: func(ctx *cli.Context) error {
				criteria := domain.Criteria{
					Genre:  ctx.String("genre"),
					Author: ctx.String("author"),
					Title:  ctx.String("title"),
				}
				if ctx.IsSet("year") {
					years, err := parseYearRange(ctx.String("year"))
					if err != nil {
						return err
					}
					criteria.Year = years
				}
				return printJSON(ctx, cat().Search(criteria))
			},
		},
		{
			Name:      "sort",
			Usage:     "print records ordered by title, author, year or genre",
			ArgsUsage: "<field>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "desc", Usage: "sort descending"},
			},
			Action: func(ctx *cli.Context) error {
				sorted, err := cat().SortBy(domain.SortField(ctx.Args().First()), !ctx.Bool("desc"))
				if err != nil {
					return err
				}
				return printJSON(ctx, sorted)
			},
		},
		{
			Name:  "add",
			Usage: "add a record and print the resulting catalog",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "title", Required: true},
				&cli.StringFlag{Name: "author", Required: true},
				&cli.IntFlag{Name: "year", Required: true},
				&cli.StringFlag{Name: "genre", Required: true},
			},
			Action: func(ctx *cli.Context) error {
				c := cat()
				err := c.Add(domain.Record{
					Title:  ctx.String("title"),
					Author: ctx.String("author"),
					Year:   ctx.Int("year"),
					Genre:  ctx.String("genre"),
				})
				if err != nil {
					return err
				}
				return printJSON(ctx, c)
			},
		},
		{
			Name:      "remove",
			Usage:     "remove the first record with the given title and print the resulting catalog",
			ArgsUsage: "<title>",
			Action: func(ctx *cli.Context) error {
				c := cat()
				if err := c.Remove(ctx.Args().First()); err != nil {
					return err
				}
				return printJSON(ctx, c)
			},
		},
	}
}

// parseYearRange accepts "1949" or "1940..1960".
func parseYearRange(s string) (*domain.YearRange, error) {
	lo, hi, isRange := strings.Cut(s, "..")
	minYear, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return nil, errors.Validationf("invalid year %q: expected YEAR or MIN..MAX", s)
	}
	if !isRange {
		return domain.ExactYear(minYear), nil
	}
	maxYear, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return nil, errors.Validationf("invalid year %q: expected YEAR or MIN..MAX", s)
	}
	return domain.Between(minYear, maxYear), nil
}

func printJSON(ctx *cli.Context, v any) error {
	enc := json.NewEncoder(ctx.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
