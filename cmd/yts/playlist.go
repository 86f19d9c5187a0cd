package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sonnes/ytscribe/bundle"
	"github.com/sonnes/ytscribe/youtube"
	"github.com/urfave/cli/v3"
)

func playlistCmd() *cli.Command {
	return &cli.Command{
		Name:      "playlist",
		Usage:     "Import a public YouTube playlist and download transcripts as a bundle",
		ArgsUsage: "<playlist-url>",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output playlist info as JSON to stdout (non-interactive, no prompts)",
			},
		}, bundleFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("exactly one playlist URL is required")
			}
			playlistURL := cmd.Args().First()

			if !cmd.Bool("json") {
				fmt.Println("Fetching playlist...")
			}
			info, err := youtube.FetchPlaylist(ctx, playlistURL)
			if err != nil {
				return err
			}

			if cmd.Bool("json") {
				return writePlaylistJSON(os.Stdout, info)
			}
			fmt.Printf("Fetching playlist: %s (%d videos)\n", info.Title, len(info.Items))

			defName := cmd.String("bundle")
			if defName == "" {
				defName = bundle.Slugify(info.Title)
			}
			return runBundleFlow(ctx, cmd, info.Items, info.Title, defName, playlistURL)
		},
	}
}

func writePlaylistJSON(w *os.File, info *youtube.PlaylistInfo) error {
	rows := make([]resultRow, len(info.Items))
	for i, r := range info.Items {
		rows[i] = resultRow{Index: i + 1, SearchResult: r}
	}
	out := struct {
		Title      string      `json:"title"`
		URL        string      `json:"playlist_url"`
		VideoCount int         `json:"video_count"`
		Videos     []resultRow `json:"videos"`
	}{info.Title, info.URL, len(info.Items), rows}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
