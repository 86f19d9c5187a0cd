package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/sonnes/ytscribe/bundle"
	"github.com/sonnes/ytscribe/core"
	"github.com/sonnes/ytscribe/render"
	"github.com/sonnes/ytscribe/youtube"
	"github.com/urfave/cli/v3"
)

func fetchCmd() *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch a single video's transcript",
		ArgsUsage: "<url-or-video-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory (default: ./transcripts/)",
			},
			&cli.StringSliceFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "Preferred transcript language(s), e.g. --lang en --lang es",
				Value:   []string{"en"},
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: md, json, html",
				Value: "md",
			},
			&cli.BoolFlag{
				Name:  "enrich",
				Usage: "Fetch richer metadata (upload date, description) before falling back to oEmbed",
			},
			&cli.BoolFlag{
				Name:  "stdout",
				Usage: "Print to stdout instead of writing a file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("exactly one video URL or ID is required")
			}

			a := newApp()
			renderer, err := a.renderer(cmd.String("format"))
			if err != nil {
				return err
			}

			videoID, err := youtube.ExtractVideoID(cmd.Args().First())
			if err != nil {
				return err
			}
			log.Debug("resolved video", "id", videoID)

			meta, err := youtube.NewMetadataFetcher(cmd.Bool("enrich")).Fetch(ctx, videoID)
			if err != nil {
				return err
			}
			log.Debug("fetched metadata", "title", meta.Title)

			transcript, err := youtube.NewTranscriptFetcher().Fetch(ctx, videoID, cmd.StringSlice("lang"))
			if err != nil {
				return err
			}
			log.Debug("fetched transcript", "segments", len(transcript.Segments), "language", transcript.Language)

			// Estimate the duration from the raw transcript before
			// cleaning can drop trailing segments.
			if meta.Duration == 0 {
				meta.Duration = transcript.DurationSeconds()
			}
			if err := core.Chain(transcript, core.Cleaner{}); err != nil {
				return fmt.Errorf("clean: %w", err)
			}

			if cmd.Bool("stdout") {
				return renderer.Render(os.Stdout, meta, transcript)
			}

			outDir := cmd.String("output")
			if outDir == "" {
				outDir = bundle.DefaultBase
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", outDir, err)
			}

			path := filepath.Join(outDir, render.Filename(meta)+renderer.Ext())
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			defer f.Close()

			if err := renderer.Render(f, meta, transcript); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			fmt.Printf("Saved: %s\n", path)
			return nil
		},
	}
}
