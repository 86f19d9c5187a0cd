package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sonnes/ytscribe/bundle"
	"github.com/urfave/cli/v3"
)

func indexCmd() *cli.Command {
	return &cli.Command{
		Name:  "index",
		Usage: "Regenerate a bundle's _index.md from its directory contents",
		Description: `Rescans the record files in a bundle directory and rewrites _index.md.
Useful after hand-editing a bundle or recovering from an interrupted
run. Metadata already present in the manifest (bundle name, query,
source URL, created_at) is preserved.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dir",
				Aliases:  []string{"d"},
				Usage:    "Bundle directory to index",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Bundle name (default: directory basename, or the existing manifest's)",
			},
			&cli.StringFlag{
				Name:  "query",
				Usage: "Query to record (default: the existing manifest's)",
			},
			&cli.StringFlag{
				Name:  "source-url",
				Usage: "Source URL to record (default: the existing manifest's)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.String("dir")
			name := cmd.String("name")
			if name == "" {
				name = filepath.Base(dir)
			}

			path, err := bundle.WriteIndex(dir, name, cmd.String("query"), nil, cmd.String("source-url"))
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}
}
