// Package rebalance computes target-date asset-allocation strategies for a
// small brokerage account holding a fixed set of index funds.
//
// The core functionalities include:
//   - Position Loading: Parsing a brokerage-exported positions CSV file into
//     an immutable Snapshot of the three tracked fund balances.
//   - Glide-Path Selection: Mapping a target-date token embedded in the
//     positions file name to a fixed allocation of bonds, international and
//     national index funds.
//   - Strategy Calculation: A pure calculator that, given a Snapshot, an
//     amount of new money and a GlidePath, produces a buy/sell/hold
//     Recommendation per fund, exact to the cent.
//   - Data Export: Encoding a computed Strategy into a stable JSON form for
//     piping into other tools.
//
// This package serves as the foundational logic for the `rba` command-line
// tool. All values are recomputed from scratch on every run; nothing is
// persisted between invocations.
package rebalance
