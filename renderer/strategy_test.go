package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/rebalance"
)

func buildTestStrategy(t *testing.T) *rebalance.Strategy {
	t.Helper()
	snap := rebalance.NewSnapshot("Portfolio_Positions_2020.csv", [3]rebalance.Position{
		{Symbol: "FXNAX", Value: rebalance.M(100, rebalance.USD)},
		{Symbol: "FZILX", Value: rebalance.M(100, rebalance.USD)},
		{Symbol: "FZROX", Value: rebalance.M(100, rebalance.USD)},
	}, rebalance.M(250, rebalance.USD))

	s, err := rebalance.BuildStrategy(snap, rebalance.M(0, rebalance.USD), rebalance.SelectGlidePath(snap.Name()))
	if err != nil {
		t.Fatalf("BuildStrategy() failed: %v", err)
	}
	return s
}

func TestStrategyMarkdown(t *testing.T) {
	got := StrategyMarkdown(buildTestStrategy(t))

	wants := []string{
		"# Investment Strategy for Portfolio_Positions_2020.csv",
		"Glide path: 2020. Total to allocate: $300.00 (new money: $0.00)",
		"- **Sell $40.00 FXNAX**",
		"- **Sell $10.00 FZILX**",
		"- **Buy $50.00 FZROX**",
		"| Symbol | Current Value | Current Allocation | Target Value | Target Allocation |",
		"| FXNAX | $100.00 | 33.33% | $60.00 | 20.00% |",
		"| FZILX | $100.00 | 33.33% | $90.00 | 30.00% |",
		"| FZROX | $100.00 | 33.33% | $150.00 | 50.00% |",
		"Money market balance $250.00 is not part of the allocation.",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("StrategyMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestSnapshotMarkdown(t *testing.T) {
	got := SnapshotMarkdown(buildTestStrategy(t).Snapshot())

	wants := []string{
		"# Positions from Portfolio_Positions_2020.csv",
		"| FXNAX | $100.00 | 33.33% |",
		"| **Total** | **$300.00** | |",
		"Money market balance: $250.00 (ignored)",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("SnapshotMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestGlidePathsMarkdown(t *testing.T) {
	got := GlidePathsMarkdown()

	// one spot check per column plus the default row
	wants := []string{
		"Glide Paths",
		"2050",
		"19.00%",
		"default",
		"100.00%",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("GlidePathsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
