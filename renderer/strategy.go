// Package renderer renders rebalancing results as markdown, ready to be
// printed through a terminal markdown renderer.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
)

// StrategyMarkdown renders the full strategy report: the per-fund
// recommendations followed by the allocation table the original positions
// file values feed into.
func StrategyMarkdown(s *rebalance.Strategy) string {
	var b strings.Builder
	snap := s.Snapshot()

	fmt.Fprintf(&b, "# Investment Strategy for %s\n\n", snap.Name())
	fmt.Fprintf(&b, "Glide path: %s. Total to allocate: %s (new money: %s)\n\n",
		s.Path().Key, s.Total(), s.NewMoney())

	for _, r := range s.Recommendations() {
		fmt.Fprintf(&b, "- **%s**\n", r)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "| Symbol | Current Value | Current Allocation | Target Value | Target Allocation |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for i, r := range s.Recommendations() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			r.Symbol,
			r.Current,
			snap.Allocation(i),
			r.Target.Round(),
			r.Weight.Percent(),
		)
	}

	if !snap.Cash().IsZero() {
		fmt.Fprintf(&b, "\nMoney market balance %s is not part of the allocation.\n", snap.Cash())
	}

	return b.String()
}

// SnapshotMarkdown renders the positions parsed from an export, for checking
// a file before asking for a strategy.
func SnapshotMarkdown(snap *rebalance.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Positions from %s\n\n", snap.Name())
	fmt.Fprintln(&b, "| Symbol | Current Value | Current Allocation |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for i, p := range snap.Positions() {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", p.Symbol, p.Value, snap.Allocation(i))
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | |\n", snap.Total())

	if !snap.Cash().IsZero() {
		fmt.Fprintf(&b, "\nMoney market balance: %s (ignored)\n", snap.Cash())
	}

	return b.String()
}
