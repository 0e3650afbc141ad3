// Package insights derives "what has historically worked" from tracked
// script performance, for optional injection into future prompts.
package insights

import (
	"errors"

	"reelcraft/internal/core"
)

// DefaultMinTracked is the minimum number of qualifying samples before any
// insight is reported. Product policy, overridable via configuration.
const DefaultMinTracked = 3

// ErrInsufficientData signals that too few tracked samples exist to derive
// insights. Callers must treat this as "no insight", never as a zero-value
// insight.
var ErrInsufficientData = errors.New("insights: not enough tracked performance data")

// Sample is one script variation with tracked sales, tagged with the
// categorical choices made at generation time.
type Sample struct {
	Formula   string
	Tone      string
	HookTypes []string
	Sales     int
}

// FromHistory flattens history entries into insight samples. Only
// variations with recorded sales contribute; each carries the formula,
// tone, and hook types of its originating request.
func FromHistory(entries []core.HistoryEntry) []Sample {
	var samples []Sample
	for _, entry := range entries {
		for _, variation := range entry.Variations {
			if variation.Performance == nil || variation.Performance.Sales <= 0 {
				continue
			}
			samples = append(samples, Sample{
				Formula:   entry.Request.CopywritingFormula,
				Tone:      entry.Request.ToneAndStyle,
				HookTypes: entry.Request.HookTypes,
				Sales:     variation.Performance.Sales,
			})
		}
	}
	return samples
}

// Compute returns the label with the highest mean sales per dimension
// (formula, tone, hook type). Hook types are multi-valued, so one sample
// contributes to every hook-type group it lists. Fewer than minTracked
// qualifying samples yields ErrInsufficientData. Ties on mean sales break
// toward the lexicographically smaller label, so the result is independent
// of input order.
func Compute(samples []Sample, minTracked int) (core.PersonalInsights, error) {
	if minTracked <= 0 {
		minTracked = DefaultMinTracked
	}

	var qualifying []Sample
	for _, s := range samples {
		if s.Sales > 0 {
			qualifying = append(qualifying, s)
		}
	}
	if len(qualifying) < minTracked {
		return core.PersonalInsights{}, ErrInsufficientData
	}

	formulas := newGrouping()
	tones := newGrouping()
	hooks := newGrouping()
	for _, s := range qualifying {
		formulas.add(s.Formula, s.Sales)
		tones.add(s.Tone, s.Sales)
		for _, hook := range s.HookTypes {
			hooks.add(hook, s.Sales)
		}
	}

	return core.PersonalInsights{
		TopFormula:  formulas.top(),
		TopHookType: hooks.top(),
		TopTone:     tones.top(),
	}, nil
}

type grouping struct {
	totals map[string]int
	counts map[string]int
}

func newGrouping() *grouping {
	return &grouping{totals: make(map[string]int), counts: make(map[string]int)}
}

func (g *grouping) add(label string, sales int) {
	if label == "" {
		return
	}
	g.totals[label] += sales
	g.counts[label]++
}

func (g *grouping) top() string {
	best := ""
	bestMean := 0.0
	for label, total := range g.totals {
		mean := float64(total) / float64(g.counts[label])
		if best == "" || mean > bestMean || (mean == bestMean && label < best) {
			best = label
			bestMean = mean
		}
	}
	return best
}
