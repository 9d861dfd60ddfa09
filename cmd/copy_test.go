package cmd

import (
	"testing"

	"github.com/etnz/rebalance"
)

func testStrategy(t *testing.T) *rebalance.Strategy {
	t.Helper()
	snap := rebalance.NewSnapshot("Portfolio_Positions_2020.csv", [3]rebalance.Position{
		{Symbol: "FXNAX", Value: rebalance.M(100, rebalance.USD)},
		{Symbol: "FZILX", Value: rebalance.M(100, rebalance.USD)},
		{Symbol: "FZROX", Value: rebalance.M(100, rebalance.USD)},
	}, rebalance.M(0, rebalance.USD))

	s, err := rebalance.BuildStrategy(snap, rebalance.M(0, rebalance.USD), rebalance.SelectGlidePath(snap.Name()))
	if err != nil {
		t.Fatalf("BuildStrategy() failed: %v", err)
	}
	return s
}

func TestSelectRecommendation(t *testing.T) {
	s := testStrategy(t)

	testCases := []struct {
		fund       string
		wantSymbol string
		wantOK     bool
	}{
		{"bonds", "FXNAX", true},
		{"international", "FZILX", true},
		{"national", "FZROX", true},
		{"natl", "FZROX", true},
		{"fzrox", "FZROX", true}, // symbols resolve case-insensitively
		{"FZILX", "FZILX", true},
		{"gold", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.fund, func(t *testing.T) {
			r, ok := selectRecommendation(s, tc.fund)
			if ok != tc.wantOK {
				t.Fatalf("selectRecommendation(%q) ok = %v, want %v", tc.fund, ok, tc.wantOK)
			}
			if ok && r.Symbol != tc.wantSymbol {
				t.Errorf("selectRecommendation(%q) = %q, want %q", tc.fund, r.Symbol, tc.wantSymbol)
			}
		})
	}
}
