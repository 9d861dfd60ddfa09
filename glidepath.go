package rebalance

import "strings"

// GlidePath is one entry of the target-date allocation table: a fixed split
// of the portfolio between the bond fund, the international index fund and
// the national index fund. The three weights of an entry always sum to 1.
type GlidePath struct {
	Key           string
	Bonds         Quantity
	International Quantity
	National      Quantity
}

// Sum returns the total of the three weights, which must be 1 for a valid
// entry.
func (g GlidePath) Sum() Quantity {
	return g.Bonds.Add(g.International).Add(g.National)
}

// DefaultGlidePath is the all-bonds allocation used when no target-date
// token is found.
var DefaultGlidePath = GlidePath{Key: "default", Bonds: Q(1.0), International: Q(0.0), National: Q(0.0)}

// glidePaths is the fixed target-date table, in matching order. Keys are
// disjoint in practice, but the order is part of the contract: the first key
// contained in the label wins.
var glidePaths = []GlidePath{
	{Key: "2020", Bonds: Q(0.2), International: Q(0.3), National: Q(0.5)},
	{Key: "2030", Bonds: Q(0.3), International: Q(0.27), National: Q(0.43)},
	{Key: "2040", Bonds: Q(0.4), International: Q(0.23), National: Q(0.37)},
	{Key: "2050", Bonds: Q(0.5), International: Q(0.19), National: Q(0.31)},
	{Key: "2060", Bonds: Q(0.6), International: Q(0.15), National: Q(0.25)},
	{Key: "2070", Bonds: Q(0.7), International: Q(0.11), National: Q(0.19)},
	{Key: "2080", Bonds: Q(0.8), International: Q(0.08), National: Q(0.12)},
	{Key: "2090", Bonds: Q(0.9), International: Q(0.04), National: Q(0.06)},
}

// GlidePaths returns the target-date table, without the default entry.
func GlidePaths() []GlidePath {
	paths := make([]GlidePath, len(glidePaths))
	copy(paths, glidePaths)
	return paths
}

// SelectGlidePath returns the glide path whose key is contained in the given
// label (typically the positions file name). When no key matches, it returns
// the all-bonds DefaultGlidePath.
func SelectGlidePath(label string) GlidePath {
	for _, g := range glidePaths {
		if strings.Contains(label, g.Key) {
			return g
		}
	}
	return DefaultGlidePath
}
