// Package textbox parses inline-formatted text into word tokens.
//
// Text may carry the four markers <b>, </b>, <i> and </i>. FormatTokenize
// strips markers sitting at word boundaries and annotates each word with
// its resolved bold and italic state; FlatTokenize splits the same way
// but leaves any markers as literal text. Rendering the tokens, that is
// measuring, wrapping and drawing them, is a downstream concern and no
// part of this package.
//
// Core properties:
//   - Naive single-space split; words that strip to nothing are dropped
//   - Bold/italic state threads across the whole input, word to word
//   - Malformed or unmatched markers never fail; resolution is best-effort
//   - Sink-driven emission via Stream; slice results via the wrappers
//
// Example:
//
//	tokens := textbox.FormatTokenize("<b>The quick brown fox</b> jumped")
//	for _, tok := range tokens {
//		fmt.Println(tok.Text, tok.Bold, tok.Ital)
//	}
package textbox
