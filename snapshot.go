package rebalance

import "fmt"

// Position is the current balance of a single fund.
type Position struct {
	Symbol string
	Value  Money
}

// Snapshot is an immutable view of the account at the time the positions
// file was exported: the three tracked fund positions in glide-path order
// (bonds, international index, national index) and the ignored money-market
// cash balance.
//
// A Snapshot is fully replaced on each file load; it never mutates.
type Snapshot struct {
	name      string
	positions [3]Position
	cash      Money
}

// NewSnapshot builds a snapshot from the three tracked positions in
// glide-path order.
func NewSnapshot(name string, positions [3]Position, cash Money) *Snapshot {
	return &Snapshot{name: name, positions: positions, cash: cash}
}

// Name returns the name of the positions file this snapshot was loaded from.
func (s *Snapshot) Name() string { return s.name }

// Positions returns the three tracked positions in glide-path order.
func (s *Snapshot) Positions() [3]Position { return s.positions }

// Bonds returns the bond fund position.
func (s *Snapshot) Bonds() Position { return s.positions[0] }

// International returns the international index fund position.
func (s *Snapshot) International() Position { return s.positions[1] }

// National returns the national index fund position.
func (s *Snapshot) National() Position { return s.positions[2] }

// Cash returns the money-market balance. It is reported for information only
// and never enters the allocation arithmetic.
func (s *Snapshot) Cash() Money { return s.cash }

// Total sums the three tracked positions. Cash is excluded.
func (s *Snapshot) Total() Money {
	total := M(0, USD)
	for _, p := range s.positions {
		total = total.Add(p.Value)
	}
	return total
}

// Allocation returns the share of the tracked total currently held in the
// position at index i.
func (s *Snapshot) Allocation(i int) Percent {
	total := s.Total()
	if total.IsZero() {
		return 0
	}
	return s.positions[i].Value.PercentOf(total)
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("%s: %s + %s + %s (cash %s)", s.name,
		s.positions[0].Value, s.positions[1].Value, s.positions[2].Value, s.cash)
}
