package scene

import (
	"reflect"
	"testing"
)

func TestSplitAndJoinRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no markers", "Stop scrolling, your lips are about to thank you."},
		{"single cue", "Stop scrolling! " + Cue("close-up of dry lips") + " This serum fixes it."},
		{"cue at start", Cue("show the product in hand") + " Here is why everyone wants it."},
		{"cue at end", "Tap the cart before it sells out. " + Cue("point at the basket icon")},
		{"multiple cues", "Hook line. " + Cue("swatch on hand") + " Body line. " + Cue("before and after") + " CTA line."},
		{"adjacent cues", Cue("first shot") + Cue("second shot")},
		{"unterminated marker", "Some text (Scene: never closed"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := Split(tt.text)
			if got := Join(segments); got != tt.text {
				t.Errorf("round trip mismatch:\n  in:  %q\n  out: %q", tt.text, got)
			}
		})
	}
}

func TestCues(t *testing.T) {
	text := "Hook. " + Cue("hold product to camera") + " Body. " + Cue("texture close-up") + " CTA."
	got := Cues(text)
	want := []string{"hold product to camera", "texture close-up"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cues() = %v, want %v", got, want)
	}
}

func TestCuesNoneFound(t *testing.T) {
	if got := Cues("plain narration without any markers"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestNarrative(t *testing.T) {
	text := "Before. " + Cue("a shot") + " After."
	if got := Narrative(text); got != "Before.  After." {
		t.Errorf("Narrative() = %q", got)
	}
}

func TestSplitSegmentsOrdered(t *testing.T) {
	text := "A" + Cue("x") + "B"
	got := Split(text)
	want := []Segment{{Text: "A"}, {Text: "x", IsCue: true}, {Text: "B"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split() = %v, want %v", got, want)
	}
}
