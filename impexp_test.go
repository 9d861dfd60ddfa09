package rebalance

import (
	"errors"
	"strings"
	"testing"
)

// samplePositions mimics a brokerage positions export: header, money-market
// fund, the three tracked funds, and a trailing informational record.
const samplePositions = `Account Number,Symbol,Description,Quantity,Last Price,Last Price Change,Current Value
X12345678,SPAXX,FIDELITY GOVERNMENT MONEY MARKET,250.00,$1.00,$0.00,$250.00
X12345678,FXNAX,FIDELITY US BOND INDEX,8.50,$11.76,$0.01,$100.00
X12345678,FZILX,FIDELITY ZERO INTERNATIONAL INDEX,9.20,$10.87,-$0.02,"$1,100.00"
X12345678,FZROX,FIDELITY ZERO TOTAL MARKET INDEX,6.10,$16.39,$0.05,$100.00
X12345678,Pending Activity,,,,,$0.00
`

func TestImportPositions(t *testing.T) {
	snap, err := ImportPositions(strings.NewReader(samplePositions), "Portfolio_Positions_2050.csv")
	if err != nil {
		t.Fatalf("ImportPositions() failed: %v", err)
	}

	want := []struct {
		symbol string
		value  Money
	}{
		{"FXNAX", M(100, USD)},
		{"FZILX", M(1100, USD)},
		{"FZROX", M(100, USD)},
	}
	for i, p := range snap.Positions() {
		if p.Symbol != want[i].symbol {
			t.Errorf("position %d symbol = %q, want %q", i, p.Symbol, want[i].symbol)
		}
		if !p.Value.Equal(want[i].value) {
			t.Errorf("position %d value = %s, want %s", i, p.Value, want[i].value)
		}
	}

	if !snap.Cash().Equal(M(250, USD)) {
		t.Errorf("cash = %s, want $250.00", snap.Cash())
	}
	if !snap.Total().Equal(M(1300, USD)) {
		t.Errorf("total = %s, want $1,300.00", snap.Total())
	}
	if snap.Name() != "Portfolio_Positions_2050.csv" {
		t.Errorf("name = %q, want the file name", snap.Name())
	}
}

func TestImportPositionsTooFewRecords(t *testing.T) {
	short := `Account Number,Symbol,Description,Quantity,Last Price,Last Price Change,Current Value
X12345678,SPAXX,FIDELITY GOVERNMENT MONEY MARKET,250.00,$1.00,$0.00,$250.00
X12345678,FXNAX,FIDELITY US BOND INDEX,8.50,$11.76,$0.01,$100.00
`
	snap, err := ImportPositions(strings.NewReader(short), "short.csv")
	if !errors.Is(err, ErrInvalidPositionsFile) {
		t.Fatalf("error = %v, want ErrInvalidPositionsFile", err)
	}
	if snap != nil {
		t.Errorf("snapshot = %v, want nil on malformed input", snap)
	}
}

func TestImportPositionsBadValueCell(t *testing.T) {
	bad := strings.Replace(samplePositions, "$11.76,$0.01,$100.00", "$11.76,$0.01,n/a", 1)
	if _, err := ImportPositions(strings.NewReader(bad), "bad.csv"); !errors.Is(err, ErrInvalidPositionsFile) {
		t.Fatalf("error = %v, want ErrInvalidPositionsFile", err)
	}
}

func TestImportPositionsFileMissing(t *testing.T) {
	if _, err := ImportPositionsFile("no-such-file.csv"); !errors.Is(err, ErrInvalidPositionsFile) {
		t.Fatalf("error = %v, want ErrInvalidPositionsFile", err)
	}
}
