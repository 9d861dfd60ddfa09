package rebalance

import "testing"

func TestGlidePathsSumToOne(t *testing.T) {
	paths := append(GlidePaths(), DefaultGlidePath)
	for _, g := range paths {
		if !g.Sum().Equal(Q(1)) {
			t.Errorf("glide path %q weights sum to %s, want 1", g.Key, g.Sum())
		}
	}
}

func TestSelectGlidePath(t *testing.T) {
	testCases := []struct {
		label   string
		wantKey string
	}{
		{"Portfolio_Positions_2020.csv", "2020"},
		{"Portfolio_Positions_2030.csv", "2030"},
		{"Portfolio_Positions_2040.csv", "2040"},
		{"Portfolio_Positions_2050.csv", "2050"},
		{"Portfolio_Positions_2060.csv", "2060"},
		{"Portfolio_Positions_2070.csv", "2070"},
		{"Portfolio_Positions_2080.csv", "2080"},
		{"Portfolio_Positions_2090.csv", "2090"},
		// no token: the all-bonds default applies
		{"Portfolio_Positions.csv", "default"},
		{"", "default"},
		// several tokens: table order decides, first match wins
		{"2030_then_2020.csv", "2020"},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			got := SelectGlidePath(tc.label)
			if got.Key != tc.wantKey {
				t.Errorf("SelectGlidePath(%q).Key = %q, want %q", tc.label, got.Key, tc.wantKey)
			}
		})
	}
}

func TestDefaultGlidePathIsAllBonds(t *testing.T) {
	d := SelectGlidePath("no token here")
	if !d.Bonds.Equal(Q(1)) || !d.International.IsZero() || !d.National.IsZero() {
		t.Errorf("default glide path = %v, want 100%% bonds", d)
	}
}
