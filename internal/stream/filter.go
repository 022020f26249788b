// Package stream filters internal reasoning markup out of an
// incrementally arriving model output stream.
package stream

import "strings"

const (
	openMarker  = "<think>"
	closeMarker = "</think>"
)

// Filter is a stateful two-state transform over a token stream: text
// outside <think>…</think> is forwarded, text inside is discarded. The
// filter carries its state across increments, so a marker split between
// two chunks is still detected. It also accumulates a raw unfiltered
// copy of everything fed to it.
//
// Filtering arbitrary splits of an input produces the same output as
// filtering the concatenated input in one call.
type Filter struct {
	inside  bool
	pending string
	raw     strings.Builder
}

// NewFilter returns a filter in the Outside state.
func NewFilter() *Filter {
	return &Filter{}
}

// Feed consumes the next increment and returns the visible text it
// releases. A chunk suffix that could be the beginning of a marker is
// held back until the next increment resolves it.
func (f *Filter) Feed(chunk string) string {
	f.raw.WriteString(chunk)

	s := f.pending + chunk
	f.pending = ""

	var out strings.Builder
	i := 0
	for i < len(s) {
		if f.inside {
			if idx := strings.Index(s[i:], closeMarker); idx >= 0 {
				i += idx + len(closeMarker)
				f.inside = false
				continue
			}
			// Discard, keeping only a suffix that may start the close marker.
			f.pending = markerPrefixSuffix(s[i:], closeMarker)
			return out.String()
		}

		idx := strings.IndexByte(s[i:], '<')
		if idx < 0 {
			out.WriteString(s[i:])
			break
		}
		out.WriteString(s[i : i+idx])
		i += idx

		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, openMarker):
			f.inside = true
			i += len(openMarker)
		case len(rest) < len(openMarker) && strings.HasPrefix(openMarker, rest):
			// Possible partial open marker at the chunk boundary.
			f.pending = rest
			return out.String()
		default:
			out.WriteByte('<')
			i++
		}
	}
	return out.String()
}

// Flush releases whatever the filter is still holding at end of stream.
// A partial open-marker prefix that never completed is visible text; an
// unterminated think region stays discarded.
func (f *Filter) Flush() string {
	if f.inside {
		f.pending = ""
		return ""
	}
	out := f.pending
	f.pending = ""
	return out
}

// Raw returns the unfiltered copy of everything fed so far.
func (f *Filter) Raw() string {
	return f.raw.String()
}

// markerPrefixSuffix returns the longest suffix of s that is a proper
// prefix of marker.
func markerPrefixSuffix(s, marker string) string {
	max := len(marker) - 1
	if len(s) < max {
		max = len(s)
	}
	for n := max; n > 0; n-- {
		if strings.HasPrefix(marker, s[len(s)-n:]) {
			return s[len(s)-n:]
		}
	}
	return ""
}
