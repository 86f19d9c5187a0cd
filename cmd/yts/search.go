package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sonnes/ytscribe/batch"
	"github.com/sonnes/ytscribe/bundle"
	"github.com/sonnes/ytscribe/render/markdown"
	"github.com/sonnes/ytscribe/youtube"
	"github.com/urfave/cli/v3"
)

const maxSearchResults = 25

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search YouTube and download transcripts as a bundle",
		ArgsUsage: "<query>",
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "results",
				Aliases: []string{"n"},
				Usage:   "Number of results to show (max: 25)",
				Value:   10,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output search results as JSON to stdout (non-interactive, no prompts)",
			},
		}, bundleFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("exactly one search query is required")
			}
			query := cmd.Args().First()

			n := int(cmd.Int("results"))
			if n > maxSearchResults {
				n = maxSearchResults
			}

			if !cmd.Bool("json") {
				fmt.Printf("Searching YouTube for: %s\n", query)
			}
			results, err := youtube.NewYtdlp().Search(ctx, query, n)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return fmt.Errorf("no results found")
			}

			if cmd.Bool("json") {
				return writeResultsJSON(os.Stdout, results)
			}

			defName := cmd.String("bundle")
			if defName == "" {
				defName = bundle.Slugify(query)
			}
			return runBundleFlow(ctx, cmd, results, query, defName, "")
		},
	}
}

// bundleFlags are the flags shared by the interactive bundle commands.
func bundleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "bundle",
			Usage: "Bundle name (default: auto-generated)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Base output directory (default: ./transcripts/)",
		},
		&cli.StringSliceFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Usage:   "Preferred transcript language(s)",
			Value:   []string{"en"},
		},
	}
}

// resultRow is the JSON shape of one listed video, 1-indexed for
// round-tripping into a later selection.
type resultRow struct {
	Index int `json:"index"`
	youtube.SearchResult
}

func writeResultsJSON(w *os.File, results []youtube.SearchResult) error {
	rows := make([]resultRow, len(results))
	for i, r := range results {
		rows[i] = resultRow{Index: i + 1, SearchResult: r}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rows)
}

// runBundleFlow is the interactive half shared by search and playlist:
// display the listing, prompt for a selection and a bundle name, fetch the
// chosen transcripts, and write the bundle index.
func runBundleFlow(ctx context.Context, cmd *cli.Command, results []youtube.SearchResult, query, defName, sourceURL string) error {
	displayResults(os.Stdout, results)

	in := bufio.NewReader(os.Stdin)
	selected, err := promptSelection(in, len(results))
	if err != nil {
		return err
	}
	name, err := promptBundleName(in, defName)
	if err != nil {
		return err
	}

	dir, err := bundle.EnsureDir(name, cmd.String("output"))
	if err != nil {
		return err
	}

	inputs := make([]string, len(selected))
	titles := make(map[string]string, len(selected))
	for i, idx := range selected {
		r := results[idx-1]
		inputs[i] = r.VideoID
		titles[r.VideoID] = r.Title
	}

	a := newApp()
	runner := a.newRunner(markdown.New())
	runner.Progress = func(ev batch.Event) {
		label := ev.Title
		if label == "" {
			label = titles[ev.Input]
		}
		fmt.Printf("\nFetching %d/%d: %s...\n", ev.Index, ev.Total, label)
		if ev.Err != nil {
			fmt.Fprintf(os.Stderr, "  Warning: Skipped (%v)\n", ev.Err)
			return
		}
		fmt.Printf("  Saved: %s\n", ev.Path)
	}

	saved, _ := runner.Run(ctx, inputs, cmd.StringSlice("lang"), dir)
	if len(saved) == 0 {
		return fmt.Errorf("no transcripts were saved")
	}

	indexPath, err := bundle.WriteIndex(dir, name, query, saved, sourceURL)
	if err != nil {
		return err
	}
	fmt.Printf("\nCreated index: %s\n", indexPath)
	fmt.Printf("Bundle complete: %d transcripts saved to %s/\n", len(saved), dir)
	return nil
}
