package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []Token
	}{
		{
			name: "empty expression",
			expr: "",
			want: nil,
		},
		{
			name: "whitespace only",
			expr: "   \t\n  ",
			want: nil,
		},
		{
			name: "single bare token",
			expr: "data.name",
			want: []Token{bareToken("data.name")},
		},
		{
			name: "helper with path argument",
			expr: "uppercase data.name",
			want: []Token{bareToken("uppercase"), bareToken("data.name")},
		},
		{
			name: "quoted literal keeps quotes",
			expr: `"hello world"`,
			want: []Token{quotedToken(`"hello world"`)},
		},
		{
			name: "quoted literal preserves parens and newlines",
			expr: "\"a (b)\nc\"",
			want: []Token{quotedToken("\"a (b)\nc\"")},
		},
		{
			name: "parens are structural outside quotes",
			expr: `replace (lowercase "A") "a" "b"`,
			want: []Token{
				bareToken("replace"),
				lparenToken,
				bareToken("lowercase"),
				quotedToken(`"A"`),
				rparenToken,
				quotedToken(`"a"`),
				quotedToken(`"b"`),
			},
		},
		{
			name: "paren terminates bare token",
			expr: "dropFirst(x",
			want: []Token{bareToken("dropFirst"), lparenToken, bareToken("x")},
		},
		{
			name: "embedded quote splits into alternating segments",
			expr: `"My name is "Mike" smith"`,
			want: []Token{
				quotedToken(`"My name is "`),
				bareToken(`Mike" smith"`),
			},
		},
		{
			name: "quote inside bare token flips to quoted mode",
			expr: `ab"cd"`,
			want: []Token{bareToken(`ab"cd"`)},
		},
		{
			name: "unterminated quote consumes rest of input",
			expr: `"open ended`,
			want: []Token{quotedToken(`"open ended`)},
		},
		{
			name: "unicode line separators inside quotes are literal",
			expr: "\"a\u2028b\u2029c\"",
			want: []Token{quotedToken("\"a\u2028b\u2029c\"")},
		},
		{
			name: "numeric literals are bare tokens",
			expr: "dropFirst \"abc\" 2",
			want: []Token{bareToken("dropFirst"), quotedToken(`"abc"`), bareToken("2")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.expr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenIsQuoted(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want bool
	}{
		{"quoted literal", quotedToken(`"abc"`), true},
		{"empty quoted literal", quotedToken(`""`), true},
		{"bare token", bareToken("abc"), false},
		{"single quote char", Token{Kind: TokenQuoted, Text: `"`}, false},
		{"unterminated quote", quotedToken(`"abc`), false},
		{"trailing quote only", bareToken(`Mike" smith"`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.IsQuoted())
		})
	}
}

func TestTokenInterior(t *testing.T) {
	assert.Equal(t, "abc", quotedToken(`"abc"`).Interior())
	assert.Equal(t, "", quotedToken(`""`).Interior())
	assert.Equal(t, "bare", bareToken("bare").Interior())
	assert.Equal(t, `"open`, quotedToken(`"open`).Interior())
}
