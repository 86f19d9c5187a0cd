package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "yts",
		Usage: "Fetch YouTube transcripts and save them as formatted Markdown",
		Description: `
        _              _ _
  _  _| |_ ___ __ _ _(_) |__  ___
 | || |  _(_-</ _| '_| | '_ \/ -_)
  \_, |\__/__/\__|_| |_|_.__/\___|
  |__/

 Archives video transcripts into browsable bundles.

 Examples:
   yts fetch https://www.youtube.com/watch?v=dQw4w9WgXcQ
   yts fetch dQw4w9WgXcQ --lang es --format json
   yts search "go generics" -n 15
   yts playlist https://www.youtube.com/playlist?list=PLxyz
   yts batch dQw4w9WgXcQ 9bZkp7q19f0 --bundle favorites --jsonl`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			fetchCmd(),
			searchCmd(),
			playlistCmd(),
			batchCmd(),
			indexCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
