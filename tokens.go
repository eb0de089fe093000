package textbox

// Token is a single word of formatted text with its resolved style.
type Token struct {
	Text string
	Bold bool
	Ital bool
	// SpaceAllowed reports whether a renderer may place a space after
	// this word. The tokenizer always leaves it true; it exists for
	// callers that lay out indents or tight punctuation.
	SpaceAllowed bool
}

// NewToken returns a Token for text with SpaceAllowed set.
func NewToken(text string, bold, ital bool) Token {
	return Token{Text: text, Bold: bold, Ital: ital, SpaceAllowed: true}
}
