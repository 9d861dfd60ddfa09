package rebalance

import "testing"

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "$1,234.56", want: M(1234.56, USD)},
		{in: "$100.00", want: M(100, USD)},
		{in: "100", want: M(100, USD)},
		{in: " $0.01 ", want: M(0.01, USD)},
		{in: "-$12.34", wantErr: true}, // negative balances do not occur in exports
		{in: "n/a", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMoney(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMoney(%q) = %s, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q) failed: %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseMoney(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{M(1234.56, USD), "$1,234.56"},
		{M(0, USD), "$0.00"},
		{M(40, USD), "$40.00"},
		{M(10.5, USD), "$10.50"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoneyRound(t *testing.T) {
	m := M(33.333333, USD).Round()
	if !m.Equal(M(33.33, USD)) {
		t.Errorf("Round() = %s, want $33.33", m)
	}
	m = M(66.666666, USD).Round()
	if !m.Equal(M(66.67, USD)) {
		t.Errorf("Round() = %s, want $66.67", m)
	}
}

func TestMoneyPercentOf(t *testing.T) {
	p := M(100, USD).PercentOf(M(300, USD))
	if !p.Equal(Percent(33.3333)) {
		t.Errorf("PercentOf() = %s, want 33.33%%", p)
	}
}
