package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/ytscribe/selection"
	"github.com/sonnes/ytscribe/youtube"
)

const defaultWidth = 100

var (
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
)

var (
	styleHeader   = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleIndex    = lipgloss.NewStyle().Foreground(colorDim)
	styleChannel  = lipgloss.NewStyle().Foreground(colorDim)
	styleDuration = lipgloss.NewStyle().Foreground(colorAccent)
)

func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// displayResults prints a numbered table of search or playlist entries.
// The title column absorbs whatever width the terminal leaves over.
func displayResults(w io.Writer, results []youtube.SearchResult) {
	const (
		indexWidth    = 3
		channelWidth  = 15
		durationWidth = 8
	)
	titleWidth := termWidth() - indexWidth - channelWidth - durationWidth - 8
	if titleWidth < 20 {
		titleWidth = 20
	}
	if titleWidth > 60 {
		titleWidth = 60
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s  %s  %s  %s\n",
		styleHeader.Render(fmt.Sprintf("%*s", indexWidth, "#")),
		styleHeader.Render(fmt.Sprintf("%-*s", titleWidth, "Title")),
		styleHeader.Render(fmt.Sprintf("%-*s", channelWidth, "Channel")),
		styleHeader.Render(fmt.Sprintf("%*s", durationWidth, "Duration")),
	)
	for i, r := range results {
		title := ansi.Truncate(r.Title, titleWidth, "...")
		channel := r.Channel
		if channel == "" {
			channel = "Unknown"
		}
		channel = ansi.Truncate(channel, channelWidth, "")

		fmt.Fprintf(w, "  %s  %-*s  %s  %s\n",
			styleIndex.Render(fmt.Sprintf("%*d", indexWidth, i+1)),
			titleWidth, title,
			styleChannel.Render(fmt.Sprintf("%-*s", channelWidth, channel)),
			styleDuration.Render(fmt.Sprintf("%*s", durationWidth, formatDurationShort(r.Duration))),
		)
	}
	fmt.Fprintln(w)
}

// formatDurationShort renders MM:SS or H:MM:SS. Unknown durations show
// as "???", matching the table column width.
func formatDurationShort(seconds int) string {
	if seconds <= 0 {
		return "  ???"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%2d:%02d", minutes, secs)
}

// promptSelection reads selections from in until one parses, echoing the
// reason and re-prompting on invalid input. EOF aborts.
func promptSelection(in *bufio.Reader, max int) ([]int, error) {
	for {
		fmt.Print("Select videos (e.g. 1,3,5 or 1-5 or all): ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("aborted")
		}
		selected, err := selection.Parse(line, max)
		if err != nil {
			if errors.Is(err, selection.ErrInvalid) {
				fmt.Printf("Invalid selection: %v. Try again.\n", err)
				continue
			}
			return nil, err
		}
		return selected, nil
	}
}

// promptBundleName offers def as the default bundle name. An empty line
// or EOF accepts the default.
func promptBundleName(in *bufio.Reader, def string) (string, error) {
	fmt.Printf("Bundle name [%s]: ", def)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if name := strings.TrimSpace(line); name != "" {
		return name, nil
	}
	return def, nil
}
