// Package scene defines the inline scene-cue marker format shared between
// prompt construction and output parsing. The prompt compiler instructs the
// model to emit cues in exactly this format, and consumers split generated
// text back apart with the same constants, so the two sides can never
// drift independently.
package scene

import "strings"

// Marker delimiters, treated as a versioned mini-protocol. Changing either
// constant is a breaking change for previously generated content.
const (
	MarkerOpen  = "(Scene: "
	MarkerClose = ")"
)

// Cue wraps a shot description in the marker format.
func Cue(description string) string {
	return MarkerOpen + description + MarkerClose
}

// Segment is one slice of generated text: either narrative or a scene cue.
type Segment struct {
	Text  string // narrative text, or the cue description without markers
	IsCue bool
}

// Split partitions text into narrative and scene-cue segments in source
// order. An unterminated marker is kept as narrative text.
func Split(text string) []Segment {
	var segments []Segment
	for len(text) > 0 {
		open := strings.Index(text, MarkerOpen)
		if open < 0 {
			segments = append(segments, Segment{Text: text})
			break
		}
		end := strings.Index(text[open+len(MarkerOpen):], MarkerClose)
		if end < 0 {
			segments = append(segments, Segment{Text: text})
			break
		}
		if open > 0 {
			segments = append(segments, Segment{Text: text[:open]})
		}
		cueStart := open + len(MarkerOpen)
		segments = append(segments, Segment{Text: text[cueStart : cueStart+end], IsCue: true})
		text = text[cueStart+end+len(MarkerClose):]
	}
	return segments
}

// Join reassembles segments into the original text, re-wrapping cues in
// their markers. Join(Split(s)) == s for any s.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.IsCue {
			b.WriteString(Cue(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// Cues returns only the cue descriptions found in text, in order.
func Cues(text string) []string {
	var cues []string
	for _, seg := range Split(text) {
		if seg.IsCue {
			cues = append(cues, seg.Text)
		}
	}
	return cues
}

// Narrative returns text with all scene cues removed.
func Narrative(text string) string {
	var b strings.Builder
	for _, seg := range Split(text) {
		if !seg.IsCue {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
