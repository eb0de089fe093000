package textbox

// Stream receives tokens as the tokenizer resolves them.
type Stream interface {
	WriteToken(Token) error
	Flush() error
}

// TokenRecorder is a Stream that collects tokens in order. The zero
// value is ready to use.
type TokenRecorder struct {
	tokens []Token
}

// WriteToken appends a token to the recording.
func (r *TokenRecorder) WriteToken(t Token) error {
	r.tokens = append(r.tokens, t)
	return nil
}

// Flush implements Stream; it never fails.
func (r *TokenRecorder) Flush() error { return nil }

// Tokens returns the recorded tokens in emission order.
func (r *TokenRecorder) Tokens() []Token { return r.tokens }

// Reset clears the recording for reuse.
func (r *TokenRecorder) Reset() { r.tokens = r.tokens[:0] }
