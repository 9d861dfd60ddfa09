package rebalance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// this file handles the brokerage positions export format.
//
// The export is a CSV file with a header record followed by the account
// positions, one per record. The money-market fund comes first, then the
// three tracked funds in glide-path order (bonds, international index,
// national index). The fund symbol is in column 1 and the current dollar
// value, formatted like "$1,234.56", is in column 6.

// ErrInvalidPositionsFile reports a missing, unreadable or malformed
// positions file. Callers surface it as a user-visible error state.
var ErrInvalidPositionsFile = errors.New("invalid positions file")

// positions of the cells of interest in the export.
const (
	cashRecord    = 1 // money-market fund, ignored in allocations
	firstFund     = 2 // bonds, then international, then national
	trackedFunds  = 3
	symbolColumn  = 1
	valueColumn   = 6
	minCSVRecords = 6 // header + five position records
)

// ImportPositions parses a brokerage positions export read from 'r' into a
// Snapshot named after 'name' (typically the file name, which carries the
// target-date token).
//
// It returns an error wrapping ErrInvalidPositionsFile if the export is
// malformed; no partial snapshot is ever returned.
func ImportPositions(r io.Reader, name string) (*Snapshot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // the export's records are not uniform
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPositionsFile, err)
	}
	if len(records) < minCSVRecords {
		return nil, fmt.Errorf("%w: got %d records, want at least %d", ErrInvalidPositionsFile, len(records), minCSVRecords)
	}

	var positions [3]Position
	for i := 0; i < trackedFunds; i++ {
		record := records[firstFund+i]
		if len(record) <= valueColumn {
			return nil, fmt.Errorf("%w: record %d has %d columns, want at least %d", ErrInvalidPositionsFile, firstFund+i, len(record), valueColumn+1)
		}
		value, err := ParseMoney(record[valueColumn])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrInvalidPositionsFile, firstFund+i, err)
		}
		positions[i] = Position{Symbol: record[symbolColumn], Value: value}
	}

	// The money-market balance is informational; a missing or unparseable
	// cell leaves it at zero.
	cash := M(0, USD)
	if record := records[cashRecord]; len(record) > valueColumn {
		if value, err := ParseMoney(record[valueColumn]); err == nil {
			cash = value
		}
	}

	return NewSnapshot(name, positions, cash), nil
}

// ImportPositionsFile opens and parses the positions file at 'path'. The
// snapshot is named after the file's base name.
func ImportPositionsFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPositionsFile, err)
	}
	defer f.Close()
	return ImportPositions(f, filepath.Base(path))
}
