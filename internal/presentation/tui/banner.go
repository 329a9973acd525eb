package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the CLI banner with the version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Sky-to-teal gradient
	lines := []struct {
		text  string
		color string
	}{
		{`    _         _         ____            _ _       _   `, "#38bdf8"},
		{`   / \  _   _| |_ ___  / ___|___  _ __ (_) | ___ | |_ `, "#22d3ee"},
		{`  / _ \| | | | __/ _ \| |   / _ \| '_ \| | |/ _ \| __|`, "#2dd4bf"},
		{` / ___ \ |_| | || (_) | |__| (_) | |_) | | | (_) | |_ `, "#34d399"},
		{`/_/   \_\__,_|\__\___/ \____\___/| .__/|_|_|\___/ \__|`, "#4ade80"},
		{`                                 |_|                  `, "#a3e635"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
