package markov

import (
	"strings"
	"unicode/utf8"
)

// Token is a single unit of a word: either a real character or the End
// marker that terminates a word. The zero value is Char(0), not End.
type Token struct {
	r   rune
	end bool
}

// End is the token that marks the end of a word.
var End = Token{end: true}

// Char returns the token for the character r.
func Char(r rune) Token {
	return Token{r: r}
}

// IsEnd reports whether t is the End marker.
func (t Token) IsEnd() bool {
	return t.end
}

// Rune returns the character held by t. ok is false for End.
func (t Token) Rune() (r rune, ok bool) {
	if t.end {
		return 0, false
	}
	return t.r, true
}

// String returns the character, or "<END>" for the End marker.
func (t Token) String() string {
	if t.end {
		return EndText
	}
	return string(t.r)
}

// EndText is the printable form of the End token.
const EndText = "<END>"

const (
	tagEnd  byte = 0
	tagChar byte = 1
)

// Ngram is a fixed-length window of tokens used as a chain state. Ngrams are
// comparable by value and may be used as map keys.
type Ngram struct {
	// key holds a tag byte per token, followed by the UTF-8 bytes of the
	// character for Char tokens.
	key string
	n   int
}

// NewNgram builds an Ngram from tokens, in order.
func NewNgram(tokens ...Token) Ngram {
	var b []byte
	for _, t := range tokens {
		b = appendToken(b, t)
	}
	return Ngram{key: string(b), n: len(tokens)}
}

// NgramOf builds an Ngram of Char tokens from the characters of s.
func NgramOf(s string) Ngram {
	b := make([]byte, 0, len(s)*2)
	n := 0
	for _, r := range s {
		b = appendToken(b, Char(r))
		n++
	}
	return Ngram{key: string(b), n: n}
}

func appendToken(b []byte, t Token) []byte {
	if t.end {
		return append(b, tagEnd)
	}
	b = append(b, tagChar)
	return utf8.AppendRune(b, t.r)
}

// Len returns the number of tokens in g.
func (g Ngram) Len() int {
	return g.n
}

// Tokens decodes g back into its tokens.
func (g Ngram) Tokens() []Token {
	tokens := make([]Token, 0, g.n)
	for i := 0; i < len(g.key); {
		if g.key[i] == tagEnd {
			tokens = append(tokens, End)
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(g.key[i+1:])
		tokens = append(tokens, Char(r))
		i += 1 + size
	}
	return tokens
}

// Shift drops the first token of g and appends t, keeping the length.
func (g Ngram) Shift(t Token) Ngram {
	if g.n == 0 {
		return g
	}
	skip := 1
	if g.key[0] == tagChar {
		_, size := utf8.DecodeRuneInString(g.key[1:])
		skip += size
	}
	b := make([]byte, 0, len(g.key)+utf8.UTFMax)
	b = append(b, g.key[skip:]...)
	b = appendToken(b, t)
	return Ngram{key: string(b), n: g.n}
}

// String renders the characters of g, with End tokens shown as EndText.
func (g Ngram) String() string {
	var sb strings.Builder
	for _, t := range g.Tokens() {
		sb.WriteString(t.String())
	}
	return sb.String()
}
