package textbox

import "strings"

// The four marker literals are the entire protocol surface. Matching is
// byte for byte: case-sensitive, no whitespace tolerated inside a marker.
const (
	markerBoldOn  = "<b>"
	markerBoldOff = "</b>"
	markerItalOn  = "<i>"
	markerItalOff = "</i>"
)

// TokenizeOption configures FormatTokenize.
type TokenizeOption func(*tokenizeConfig)

type tokenizeConfig struct {
	discardFormatting bool
}

// WithDiscardFormatting makes FormatTokenize emit every token with Bold
// and Ital forced to false. Markers are still consumed and stripped.
func WithDiscardFormatting(enabled bool) TokenizeOption {
	return func(cfg *tokenizeConfig) {
		cfg.discardFormatting = enabled
	}
}

// FlatTokenize splits text on single spaces without interpreting
// markers: "<b>word" stays the literal text "<b>word". Every piece
// becomes a Token, empty pieces from consecutive spaces included, with
// Bold and Ital false throughout.
func FlatTokenize(text string) []Token {
	var rec TokenRecorder
	_ = FlatTokenizeTo(&rec, text)
	return rec.Tokens()
}

// FlatTokenizeTo emits the FlatTokenize sequence to s. The only errors
// are those returned by the sink.
func FlatTokenizeTo(s Stream, text string) error {
	for _, word := range strings.Split(text, " ") {
		if err := s.WriteToken(NewToken(word, false, false)); err != nil {
			return err
		}
	}
	return s.Flush()
}

// FormatTokenize splits text on single spaces, strips markers at word
// boundaries and annotates each word with the bold/italic state running
// at that point. Words whose text strips to nothing are dropped but
// still feed the running state carried to the next word. Unmatched or
// redundant markers resolve best-effort; no input fails.
func FormatTokenize(text string, opts ...TokenizeOption) []Token {
	var rec TokenRecorder
	_ = FormatTokenizeTo(&rec, text, opts...)
	return rec.Tokens()
}

// FormatTokenizeTo emits the FormatTokenize sequence to s as each word
// is resolved. The only errors are those returned by the sink.
func FormatTokenizeTo(s Stream, text string, opts ...TokenizeOption) error {
	cfg := tokenizeConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	bold, ital := false, false
	for _, word := range strings.Split(text, " ") {
		txt, curBold, curItal := stripLeadingMarkers(word, bold, ital)
		txt, nextBold, nextItal := stripTrailingMarkers(txt, curBold, curItal)
		if len(txt) > 0 {
			tok := NewToken(txt, curBold, curItal)
			if cfg.discardFormatting {
				tok.Bold = false
				tok.Ital = false
			}
			if err := s.WriteToken(tok); err != nil {
				return err
			}
		}
		bold, ital = nextBold, nextItal
	}
	return s.Flush()
}

// stripLeadingMarkers culls markers anchored to the front of the word,
// updating the running state as each one is removed. All four markers
// are tested in fixed order before the front is checked again, so
// adjacent leading markers like "<b><i>" fall in a single pass. A
// marker elsewhere in the word is not touched here.
func stripLeadingMarkers(txt string, bold, ital bool) (string, bool, bool) {
	for hasMarkerPrefix(txt) {
		if strings.HasPrefix(txt, markerBoldOn) {
			bold = true
			txt = txt[len(markerBoldOn):]
		}
		if strings.HasPrefix(txt, markerBoldOff) {
			bold = false
			txt = txt[len(markerBoldOff):]
		}
		if strings.HasPrefix(txt, markerItalOn) {
			ital = true
			txt = txt[len(markerItalOn):]
		}
		if strings.HasPrefix(txt, markerItalOff) {
			ital = false
			txt = txt[len(markerItalOff):]
		}
	}
	return txt, bold, ital
}

// stripTrailingMarkers culls markers off the end of the current text
// and resolves the state carried into the next word. The scan runs
// right to left, so the first marker removed on a channel is the one
// nearest the following word; its value wins the carry-forward, with
// the incoming running value as fallback when no marker touches that
// channel. The suffix test is positional only: a marker that became a
// suffix once the leading pass removed a prefix, or that never sat at a
// word boundary in the input, is stripped all the same. Trailing
// markers never restyle the current word itself.
func stripTrailingMarkers(txt string, bold, ital bool) (string, bool, bool) {
	nextBold, nextItal := bold, ital
	boldSet, italSet := false, false
	for hasMarkerSuffix(txt) {
		if strings.HasSuffix(txt, markerBoldOn) {
			if !boldSet {
				nextBold = true
				boldSet = true
			}
			txt = txt[:len(txt)-len(markerBoldOn)]
		}
		if strings.HasSuffix(txt, markerBoldOff) {
			if !boldSet {
				nextBold = false
				boldSet = true
			}
			txt = txt[:len(txt)-len(markerBoldOff)]
		}
		if strings.HasSuffix(txt, markerItalOn) {
			if !italSet {
				nextItal = true
				italSet = true
			}
			txt = txt[:len(txt)-len(markerItalOn)]
		}
		if strings.HasSuffix(txt, markerItalOff) {
			if !italSet {
				nextItal = false
				italSet = true
			}
			txt = txt[:len(txt)-len(markerItalOff)]
		}
	}
	return txt, nextBold, nextItal
}

func hasMarkerPrefix(txt string) bool {
	return strings.HasPrefix(txt, markerBoldOn) ||
		strings.HasPrefix(txt, markerBoldOff) ||
		strings.HasPrefix(txt, markerItalOn) ||
		strings.HasPrefix(txt, markerItalOff)
}

func hasMarkerSuffix(txt string) bool {
	return strings.HasSuffix(txt, markerBoldOn) ||
		strings.HasSuffix(txt, markerBoldOff) ||
		strings.HasSuffix(txt, markerItalOn) ||
		strings.HasSuffix(txt, markerItalOff)
}
