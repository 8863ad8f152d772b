package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"

	"github.com/krazyminecraft/stats-api/internal/logic"
	"github.com/krazyminecraft/stats-api/internal/models"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

type serviceBuilder func(c *cli.Context) (logic.StatsService, func(), error)

func newApp(build serviceBuilder) *cli.App {
	var (
		svc     logic.StatsService
		cleanup func()
	)
	withService := func(action func(c *cli.Context, svc logic.StatsService) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			if svc == nil {
				s, done, err := build(c)
				if err != nil {
					return err
				}
				svc, cleanup = s, done
			}
			return action(c, svc)
		}
	}

	return &cli.App{
		Name:  "mcstats",
		Usage: "inspect server and player statistics",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print JSON instead of tables"},
			&cli.StringFlag{Name: "stats-dir", Usage: "read stat documents from this directory"},
			&cli.StringFlag{Name: "usercache", Usage: "read the player directory from this usercache.json"},
			&cli.IntFlag{Name: "workers", Value: 8, Usage: "documents fetched in parallel"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log fetch failures"},
		},
		After: func(c *cli.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "server",
				Usage:  "server-wide totals",
				Action: withService(serverCommand),
			},
			{
				Name:  "leaderboard",
				Usage: "top players for a metric",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "metric", Aliases: []string{"m"}, Usage: "metric slug or title (default: played_time)"},
					&cli.IntFlag{Name: "limit", Value: logic.LeaderboardSize},
				},
				Action: withService(leaderboardCommand),
			},
			{
				Name:      "player",
				Usage:     "one player's statistics",
				ArgsUsage: "<name|uuid>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "list every counter of a category instead"},
					&cli.StringFlag{Name: "search", Aliases: []string{"q"}},
					&cli.StringFlag{Name: "sort", Value: "high", Usage: "high or low"},
				},
				Action: withService(playerCommand),
			},
			{
				Name:      "summary",
				Usage:     "a player's summary card",
				ArgsUsage: "<name|uuid>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the card as PNG to this file"},
				},
				Action: withService(summaryCommand),
			},
		},
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printLines(w io.Writer, lines []models.StatLine) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s %s\n", l.Label, l.DisplayValue, l.Unit)
	}
	return tw.Flush()
}

func serverCommand(c *cli.Context, svc logic.StatsService) error {
	resp, err := svc.ServerStats(c.Context)
	if err != nil {
		return err
	}
	w := c.App.Writer
	if c.Bool("json") {
		return printJSON(w, resp)
	}
	fmt.Fprintf(w, "%d players, %d with statistics\n\n", resp.Totals.Players, resp.Totals.PlayersWithData)
	return printLines(w, resp.Lines)
}

func leaderboardCommand(c *cli.Context, svc logic.StatsService) error {
	metric, err := logic.ParseMetric(c.String("metric"))
	if err != nil {
		return err
	}
	resp, err := svc.Leaderboard(c.Context, metric, c.Int("limit"))
	if err != nil {
		return err
	}
	w := c.App.Writer
	if c.Bool("json") {
		return printJSON(w, resp)
	}

	fmt.Fprintf(w, "%s\n\n", resp.Title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range resp.Players {
		fmt.Fprintf(tw, "%d.\t%s\t%s %s\n", e.Rank, e.Player.DisplayName, e.DisplayValue, e.Unit)
	}
	return tw.Flush()
}

func playerCommand(c *cli.Context, svc logic.StatsService) error {
	name := c.Args().First()
	if name == "" {
		return cli.Exit("player name required", 2)
	}
	w := c.App.Writer

	if category := c.String("category"); category != "" {
		q := models.CategoryQuery{
			Category: strings.ToLower(category),
			Search:   c.String("search"),
			Sort:     strings.ToLower(c.String("sort")),
		}
		if err := validate.Struct(q); err != nil {
			return cli.Exit("invalid query: "+err.Error(), 2)
		}
		listing, err := svc.PlayerCategory(c.Context, name, q)
		if err != nil {
			return err
		}
		if c.Bool("json") {
			return printJSON(w, listing)
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, row := range listing.Rows {
			fmt.Fprintf(tw, "%s\t%s\n", row.Label, row.DisplayValue)
		}
		return tw.Flush()
	}

	detail, err := svc.PlayerDetail(c.Context, name)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return printJSON(w, detail)
	}
	fmt.Fprintf(w, "%s (%s)\n\n", detail.Aggregate.Identity.DisplayName, detail.Aggregate.Identity.ID)
	if !detail.Aggregate.HadData {
		fmt.Fprintln(w, "No statistics recorded.")
		return nil
	}
	return printLines(w, detail.Lines)
}

func summaryCommand(c *cli.Context, svc logic.StatsService) error {
	name := c.Args().First()
	if name == "" {
		return cli.Exit("player name required", 2)
	}
	summary, err := svc.PlayerSummary(c.Context, name)
	if err != nil {
		return err
	}
	w := c.App.Writer

	if out := c.String("out"); out != "" {
		png, err := logic.RenderSummaryCard(*summary, logic.DefaultCardPalette)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, png, 0o644); err != nil {
			return fmt.Errorf("write card: %w", err)
		}
		fmt.Fprintf(w, "Wrote %s\n", out)
		return nil
	}

	if c.Bool("json") {
		return printJSON(w, summary)
	}
	fmt.Fprintf(w, "%s\n\n", summary.Player.DisplayName)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range logic.SummaryRows(*summary) {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}
