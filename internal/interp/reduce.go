package interp

// innermostPair locates the innermost matched parenthesis pair in the
// token stream: the rightmost LParen that is followed by an RParen before
// any other LParen. Returns the pair's indexes, or ok=false when no
// matched pair exists (including streams with stray unmatched parens).
func innermostPair(tokens []Token) (open, end int, ok bool) {
	open = -1
	for i, tok := range tokens {
		switch tok.Kind {
		case TokenLParen:
			open = i
		case TokenRParen:
			if open >= 0 {
				return open, i, true
			}
		}
	}
	return -1, -1, false
}

// reduce repeatedly evaluates the innermost parenthesised group and
// substitutes its result back into the token stream as a quoted token,
// until no matched pair remains. Unmatched parens are left in place; they
// inflate the argument count seen by the enclosing helper, so imbalance
// surfaces as an arity error rather than a distinct failure class.
func (e *Engine) reduce(tokens []Token, ctx *Context) ([]Token, error) {
	for {
		open, end, ok := innermostPair(tokens)
		if !ok {
			return tokens, nil
		}

		inner := tokens[open+1 : end]
		result, err := e.evalTokens(inner, ctx)
		if err != nil {
			return nil, err
		}

		replaced := make([]Token, 0, len(tokens)-(end-open))
		replaced = append(replaced, tokens[:open]...)
		replaced = append(replaced, quotedToken(`"`+result+`"`))
		replaced = append(replaced, tokens[end+1:]...)
		tokens = replaced
	}
}

// stripParens removes stray paren tokens from an argument list after the
// arity check has already counted them.
func stripParens(tokens []Token) []Token {
	out := tokens[:0:0]
	for _, tok := range tokens {
		if tok.Kind == TokenLParen || tok.Kind == TokenRParen {
			continue
		}
		out = append(out, tok)
	}
	return out
}
