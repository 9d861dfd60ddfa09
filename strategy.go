package rebalance

import (
	"errors"
	"regexp"
	"strings"
)

// Action is the per-fund trading decision of a strategy.
type Action int

const (
	Hold Action = iota
	Buy
	Sell
)

func (a Action) String() string {
	switch a {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "Hold"
	}
}

func (a Action) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// Recommendation is the decision for a single fund: what to trade, and the
// target that decision aims at.
type Recommendation struct {
	Symbol  string
	Action  Action
	Amount  Money    // trade amount, rounded to the cent; zero for Hold
	Target  Money    // ideal dollar amount invested in the fund
	Weight  Quantity // glide-path weight the target derives from
	Current Money    // balance at snapshot time
}

// String renders the recommendation the way the user reads it, e.g.
// "Buy $40.00 FZROX" or "Looks good for FXNAX".
func (r Recommendation) String() string {
	if r.Action == Hold {
		return "Looks good for " + r.Symbol
	}
	return r.Action.String() + " " + r.Amount.String() + " " + r.Symbol
}

// Strategy is the result of one rebalancing calculation: three
// recommendations computed from a snapshot, an amount of new money and a
// glide path. It is a pure value; nothing in it mutates or persists.
type Strategy struct {
	snapshot        *Snapshot
	newMoney        Money
	path            GlidePath
	recommendations [3]Recommendation
}

func (s *Strategy) Snapshot() *Snapshot                { return s.snapshot }
func (s *Strategy) NewMoney() Money                    { return s.newMoney }
func (s *Strategy) Path() GlidePath                    { return s.path }
func (s *Strategy) Recommendations() [3]Recommendation { return s.recommendations }

// Total returns the amount the strategy allocates: current tracked balances
// plus new money.
func (s *Strategy) Total() Money { return s.snapshot.Total().Add(s.newMoney) }

// ErrNoSnapshot reports a strategy request before any positions file was
// successfully loaded.
var ErrNoSnapshot = errors.New("no positions loaded")

// toleranceLow and toleranceHigh bound the ratio of target over current
// balance inside which a fund is left alone, provided no new money moves.
var (
	toleranceLow  = Q(0.95)
	toleranceHigh = Q(1.05)
)

// BuildStrategy computes the buy/sell/hold decision for each tracked fund.
//
// The target of a fund is its glide-path weight applied to the grand total
// (tracked balances plus new money). A fund within 5% of its target is held,
// but only when no new money enters or leaves the account: any nonzero new
// money forces an explicit trade, even inside the tolerance band. A fund
// with a zero balance is bought up to its full target. Trade amounts are
// exact to the cent.
//
// BuildStrategy is pure: it performs no I/O and touches nothing outside its
// arguments.
func BuildStrategy(snap *Snapshot, newMoney Money, path GlidePath) (*Strategy, error) {
	if snap == nil {
		return nil, ErrNoSnapshot
	}

	total := snap.Total().Add(newMoney)
	weights := [3]Quantity{path.Bonds, path.International, path.National}

	s := &Strategy{snapshot: snap, newMoney: newMoney, path: path}
	for i, p := range snap.Positions() {
		target := total.Mul(weights[i])
		r := Recommendation{Symbol: p.Symbol, Target: target, Weight: weights[i], Current: p.Value}

		switch {
		case p.Value.IsZero():
			// The ratio is undefined on an empty position: buy the full target.
			r.Action = Buy
			r.Amount = target.Round()
		default:
			ratio := target.DivAmount(p.Value)
			withinBand := ratio.GreaterThan(toleranceLow) && ratio.LessThan(toleranceHigh)
			if withinBand && newMoney.IsZero() {
				r.Action = Hold
				r.Amount = M(0, USD)
			} else {
				if ratio.GreaterThan(Q(1.0)) {
					r.Action = Buy
				} else {
					r.Action = Sell
				}
				r.Amount = target.Sub(p.Value).Abs().Round()
			}
		}
		s.recommendations[i] = r
	}
	return s, nil
}

// amountPattern matches the decimal numbers of a recommendation string.
var amountPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// AmountDigits extracts the numeric substrings of a recommendation string,
// concatenated. This is the text placed on the clipboard, so the user can
// paste the trade amount straight into the brokerage order form:
// "Buy $40.0 Bond Fund" yields "40.0".
func AmountDigits(s string) string {
	return strings.Join(amountPattern.FindAllString(s, -1), "")
}
