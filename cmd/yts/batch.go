package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sonnes/ytscribe/batch"
	"github.com/sonnes/ytscribe/bundle"
	"github.com/sonnes/ytscribe/render/markdown"
	"github.com/urfave/cli/v3"
)

func batchCmd() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "Download transcripts for specific video IDs as a bundle (non-interactive)",
		ArgsUsage: "[url-or-video-id ...]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "from-file",
				Usage: "Read video IDs/URLs from a text file (one per line, # comments and blank lines ignored)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output a result summary as JSON to stdout instead of human-readable progress",
			},
			&cli.BoolFlag{
				Name:  "jsonl",
				Usage: "Output one JSON object per line as each video completes (streaming-friendly)",
			},
		}, bundleFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.String("bundle")
			if name == "" {
				return fmt.Errorf("--bundle is required")
			}

			videos := cmd.Args().Slice()
			if path := cmd.String("from-file"); path != "" {
				fromFile, err := readVideoList(path)
				if err != nil {
					return err
				}
				videos = append(videos, fromFile...)
			}
			if len(videos) == 0 {
				return fmt.Errorf("no videos specified: provide video IDs/URLs as arguments or via --from-file")
			}

			dir, err := bundle.EnsureDir(name, cmd.String("output"))
			if err != nil {
				return err
			}

			asJSON := cmd.Bool("json")
			asJSONL := cmd.Bool("jsonl")
			total := len(videos)

			if asJSONL {
				writeJSONL(map[string]any{"event": "start", "total": total, "bundle": name})
			}

			var files []fileResult

			a := newApp()
			runner := a.newRunner(markdown.New())
			runner.Progress = func(ev batch.Event) {
				files = append(files, newFileResult(ev))
				switch {
				case asJSONL:
					writeJSONL(progressLine(ev))
				case asJSON:
					// Summary only; nothing per item.
				case ev.Err != nil:
					fmt.Fprintf(os.Stderr, "  Warning: Skipped %s (%v)\n", ev.Input, ev.Err)
				default:
					fmt.Printf("Fetching %d/%d: %s...\n", ev.Index, ev.Total, ev.VideoID)
					fmt.Printf("  Saved: %s\n", ev.Path)
				}
			}

			saved, _ := runner.Run(ctx, videos, cmd.StringSlice("lang"), dir)

			// Index even after partial failure, as long as something saved.
			if len(saved) > 0 {
				if _, err := bundle.WriteIndex(dir, name, "batch import", saved, ""); err != nil {
					return err
				}
			}

			if asJSONL {
				writeJSONL(map[string]any{
					"event":         "complete",
					"bundle":        name,
					"bundle_dir":    dir,
					"total_saved":   len(saved),
					"total_skipped": total - len(saved),
				})
				return nil
			}
			if asJSON {
				return writeBatchJSON(os.Stdout, name, dir, total, len(saved), files)
			}
			if len(saved) == 0 {
				return fmt.Errorf("no transcripts were saved")
			}
			fmt.Printf("\nBundle complete: %d/%d transcripts saved to %s/\n", len(saved), total, dir)
			return nil
		},
	}
}

// readVideoList loads inputs from a text file, one per line. Blank lines
// and # comments are skipped.
func readVideoList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var videos []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		videos = append(videos, line)
	}
	return videos, nil
}

// fileResult is the per-item record in the --json summary.
type fileResult struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title,omitempty"`
	Path    string `json:"path,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

func newFileResult(ev batch.Event) fileResult {
	if ev.Err != nil {
		return fileResult{VideoID: ev.Input, Status: "skipped", Error: ev.Err.Error()}
	}
	return fileResult{VideoID: ev.VideoID, Title: ev.Title, Path: ev.Path, Status: "saved"}
}

func progressLine(ev batch.Event) map[string]any {
	line := map[string]any{
		"event": "progress",
		"index": ev.Index,
		"total": ev.Total,
	}
	if ev.Err != nil {
		line["video_id"] = ev.Input
		line["status"] = "skipped"
		line["error"] = ev.Err.Error()
		return line
	}
	line["video_id"] = ev.VideoID
	line["title"] = ev.Title
	line["status"] = "saved"
	line["path"] = ev.Path
	return line
}

// writeJSONL emits one JSON object per line, unbuffered, so a consumer
// can follow the run as it happens.
func writeJSONL(obj map[string]any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(obj); err != nil {
		fmt.Fprintf(os.Stderr, "write event: %v\n", err)
	}
}

func writeBatchJSON(w *os.File, name, dir string, total, saved int, files []fileResult) error {
	out := struct {
		Bundle    string       `json:"bundle"`
		BundleDir string       `json:"bundle_dir"`
		Requested int          `json:"total_requested"`
		Saved     int          `json:"total_saved"`
		Skipped   int          `json:"total_skipped"`
		Files     []fileResult `json:"files"`
	}{name, dir, total, saved, total - saved, files}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
