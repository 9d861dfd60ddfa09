package rebalance

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file contains code to export a computed strategy as a single JSON
// object, so the result can be piped into other tools. Field order is fixed
// to keep the output diff-friendly.

// MarshalJSON implements the json.Marshaler interface for Recommendation.
func (r Recommendation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", r.Symbol)
	w.Append("action", r.Action)
	w.Append("amount", r.Amount)
	w.Append("target", r.Target)
	w.Append("weight", r.Weight)
	w.Append("current", r.Current)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Strategy.
func (s *Strategy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("file", s.snapshot.Name())
	w.Append("glidePath", s.path.Key)
	w.Append("newMoney", s.newMoney)
	w.Append("total", s.Total())
	w.Append("cash", s.snapshot.Cash())
	w.Append("recommendations", s.recommendations)
	return w.MarshalJSON()
}

// EncodeStrategy writes the strategy to 'w' as an indented JSON object.
func EncodeStrategy(w io.Writer, s *Strategy) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal strategy: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write strategy: %w", err)
	}
	return nil
}
