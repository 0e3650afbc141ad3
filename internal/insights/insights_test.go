package insights

import (
	"errors"
	"testing"

	"reelcraft/internal/core"
)

func TestComputeInsufficientData(t *testing.T) {
	samples := []Sample{
		{Formula: "AIDA", Tone: "Dramatic", HookTypes: []string{"FOMO"}, Sales: 10},
		{Formula: "PAS", Tone: "Casual & Friendly", HookTypes: []string{"Curiosity"}, Sales: 5},
	}

	_, err := Compute(samples, DefaultMinTracked)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for 2 samples, got %v", err)
	}
}

func TestComputeZeroSalesDoNotQualify(t *testing.T) {
	samples := []Sample{
		{Formula: "AIDA", Tone: "Dramatic", HookTypes: []string{"FOMO"}, Sales: 10},
		{Formula: "PAS", Tone: "Casual & Friendly", HookTypes: []string{"Curiosity"}, Sales: 5},
		{Formula: "FAB", Tone: "Educational", HookTypes: []string{"Question"}, Sales: 0},
	}

	_, err := Compute(samples, DefaultMinTracked)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("a zero-sales sample must not count toward the threshold, got %v", err)
	}
}

func TestComputeTopPerDimension(t *testing.T) {
	samples := []Sample{
		{Formula: "AIDA", Tone: "Dramatic", HookTypes: []string{"FOMO"}, Sales: 30},
		{Formula: "PAS", Tone: "Casual & Friendly", HookTypes: []string{"Curiosity"}, Sales: 10},
		{Formula: "FAB", Tone: "Educational", HookTypes: []string{"Question"}, Sales: 20},
	}

	got, err := Compute(samples, DefaultMinTracked)
	if err != nil {
		t.Fatalf("expected insights, got %v", err)
	}
	want := core.PersonalInsights{TopFormula: "AIDA", TopHookType: "FOMO", TopTone: "Dramatic"}
	if got != want {
		t.Errorf("Compute() = %+v, want %+v", got, want)
	}
}

func TestComputeUsesMeanNotTotal(t *testing.T) {
	// AIDA: two samples averaging 6. PAS: one sample at 10.
	samples := []Sample{
		{Formula: "AIDA", Tone: "Dramatic", HookTypes: []string{"FOMO"}, Sales: 5},
		{Formula: "AIDA", Tone: "Dramatic", HookTypes: []string{"FOMO"}, Sales: 7},
		{Formula: "PAS", Tone: "Humorous", HookTypes: []string{"Curiosity"}, Sales: 10},
	}

	got, err := Compute(samples, DefaultMinTracked)
	if err != nil {
		t.Fatalf("expected insights, got %v", err)
	}
	if got.TopFormula != "PAS" {
		t.Errorf("expected PAS to win on mean sales, got %s", got.TopFormula)
	}
}

func TestComputeMultiValuedHookTypes(t *testing.T) {
	// "Curiosity" appears in two samples (mean 15), "FOMO" once (mean 10).
	samples := []Sample{
		{Formula: "AIDA", Tone: "Dramatic", HookTypes: []string{"Curiosity", "FOMO"}, Sales: 10},
		{Formula: "AIDA", Tone: "Dramatic", HookTypes: []string{"Curiosity"}, Sales: 20},
		{Formula: "PAS", Tone: "Humorous", HookTypes: []string{"Question"}, Sales: 1},
	}

	got, err := Compute(samples, DefaultMinTracked)
	if err != nil {
		t.Fatalf("expected insights, got %v", err)
	}
	if got.TopHookType != "Curiosity" {
		t.Errorf("expected Curiosity, got %s", got.TopHookType)
	}
}

func TestComputeTieBreaksLexicographically(t *testing.T) {
	samples := []Sample{
		{Formula: "PAS", Tone: "Humorous", HookTypes: []string{"FOMO"}, Sales: 10},
		{Formula: "AIDA", Tone: "Dramatic", HookTypes: []string{"Curiosity"}, Sales: 10},
		{Formula: "FAB", Tone: "Educational", HookTypes: []string{"Question"}, Sales: 1},
	}

	got, err := Compute(samples, DefaultMinTracked)
	if err != nil {
		t.Fatalf("expected insights, got %v", err)
	}
	if got.TopFormula != "AIDA" {
		t.Errorf("equal means must break toward the smaller label, got %s", got.TopFormula)
	}
}

func TestComputeConfigurableThreshold(t *testing.T) {
	samples := []Sample{
		{Formula: "AIDA", Tone: "Dramatic", HookTypes: []string{"FOMO"}, Sales: 10},
	}

	got, err := Compute(samples, 1)
	if err != nil {
		t.Fatalf("threshold 1 should accept a single sample, got %v", err)
	}
	if got.TopFormula != "AIDA" {
		t.Errorf("expected AIDA, got %s", got.TopFormula)
	}
}

func TestFromHistory(t *testing.T) {
	perf := func(sales int) *core.PerformanceData {
		return &core.PerformanceData{Sales: sales}
	}
	entries := []core.HistoryEntry{
		{
			Request: core.ScriptRequest{
				CopywritingFormula: "AIDA",
				ToneAndStyle:       "Dramatic",
				HookTypes:          []string{"FOMO"},
			},
			Variations: []core.Script{
				{Title: "a", Performance: perf(5)},
				{Title: "b", Performance: perf(0)},
				{Title: "c"},
			},
		},
		{
			Request: core.ScriptRequest{
				CopywritingFormula: "PAS",
				ToneAndStyle:       "Humorous",
				HookTypes:          []string{"Curiosity"},
			},
			Variations: []core.Script{{Title: "d", Performance: perf(12)}},
		},
	}

	samples := FromHistory(entries)
	if len(samples) != 2 {
		t.Fatalf("expected 2 qualifying samples, got %d", len(samples))
	}
	if samples[0].Formula != "AIDA" || samples[0].Sales != 5 {
		t.Errorf("unexpected first sample: %+v", samples[0])
	}
	if samples[1].Tone != "Humorous" || samples[1].Sales != 12 {
		t.Errorf("unexpected second sample: %+v", samples[1])
	}
}
