package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgBlue, color.Bold)
	groupColor  = color.New(color.FgCyan, color.Bold)
	leafColor   = color.New(color.FgWhite)
	dimColor    = color.New(color.FgHiBlack)
)

// printReport writes r as indented JSON or as a colored tree.
func printReport(w io.Writer, r report) error {
	if jsonOutput {
		return outputJSON(w, r)
	}

	_, _ = headerColor.Fprintf(w, "▸ %s", r.Pane)
	_, _ = dimColor.Fprintf(w, " (%s", r.Strategy)
	if r.Steps > 0 {
		_, _ = dimColor.Fprintf(w, ", %d steps", r.Steps)
	}
	_, _ = dimColor.Fprintln(w, ")")
	printTree(w, r.Layers, 1)

	if len(r.Bases) > 0 {
		fmt.Fprintln(w)
		_, _ = headerColor.Fprintln(w, "▸ base layers")
		printTree(w, r.Bases, 1)
	}

	fmt.Fprintln(w)
	_, _ = headerColor.Fprintln(w, "▸ paint order (bottom first)")
	for i, label := range r.PaintOrder {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, label)
	}

	if len(r.Attributions) > 0 {
		fmt.Fprintln(w)
		_, _ = headerColor.Fprintln(w, "▸ attributions")
		for _, a := range r.Attributions {
			fmt.Fprintf(w, "  • %s\n", a)
		}
	}
	return nil
}

func printTree(w io.Writer, layers []layerReport, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, l := range layers {
		if l.Type == "group" {
			_, _ = groupColor.Fprintf(w, "%s%s/", indent, l.Name)
		} else {
			_, _ = leafColor.Fprintf(w, "%s%s", indent, l.Name)
		}
		switch {
		case l.Hidden:
			_, _ = dimColor.Fprint(w, " (hidden)")
		case l.Opacity != 1:
			_, _ = dimColor.Fprintf(w, " (opacity %.2g)", l.Opacity)
		}
		fmt.Fprintln(w)
		printTree(w, l.Layers, depth+1)
	}
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
