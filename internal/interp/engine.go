package interp

import (
	"strings"
)

// Sink receives engine error reports. All errors are reported under the
// stable tag ErrorTag. A Sink shared across concurrent Interpolate calls
// must be internally synchronized.
type Sink interface {
	Report(tag string, err error)
}

// nopSink discards reports. Used when no sink is injected.
type nopSink struct{}

func (nopSink) Report(string, error) {}

// Engine evaluates interpolation templates. It holds no per-call state:
// a single Engine may serve concurrent Interpolate calls.
type Engine struct {
	sink Sink
}

// NewEngine creates an engine reporting errors to the given sink.
// A nil sink discards error reports.
func NewEngine(sink Sink) *Engine {
	if sink == nil {
		sink = nopSink{}
	}
	return &Engine{sink: sink}
}

// Interpolate substitutes every {{ ... }} span in template using the data
// context and returns the fully substituted output.
//
// On failure the structured error is delivered to the sink, the returned
// string is empty, and ok is false. The first failing span aborts the
// whole call; a template with one bad and one good span fails entirely.
// A nil context behaves as an empty context.
func (e *Engine) Interpolate(template string, ctx *Context) (string, bool) {
	out, err := e.InterpolateErr(template, ctx)
	if err != nil {
		return "", false
	}
	return out, true
}

// InterpolateErr is Interpolate for programmatic callers: it returns the
// structured error directly. The sink still observes every error.
func (e *Engine) InterpolateErr(template string, ctx *Context) (string, error) {
	if ctx == nil {
		ctx = NewContext()
	}

	out, err := e.scan(template, ctx)
	if err != nil {
		e.sink.Report(ErrorTag, err)
		return "", err
	}
	return out, nil
}

// scan walks the template left to right, emitting literal spans verbatim
// and replacing each {{ ... }} span with its evaluated expression. An
// orphan {{ without a closing }} passes through verbatim along with the
// rest of the input. Every non-brace byte outside substituted spans is
// preserved exactly, including \n, U+2028, and U+2029.
func (e *Engine) scan(template string, ctx *Context) (string, error) {
	var out strings.Builder
	rest := template

	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			out.WriteString(rest)
			break
		}

		end := strings.Index(rest[start+2:], "}}")
		if end < 0 {
			out.WriteString(rest)
			break
		}

		out.WriteString(rest[:start])

		expr := rest[start+2 : start+2+end]
		value, err := e.evalExpression(expr, ctx)
		if err != nil {
			return "", err
		}
		out.WriteString(value)

		rest = rest[start+2+end+2:]
	}

	return out.String(), nil
}

// evalExpression evaluates the content of one {{ ... }} span: tokenize,
// reduce parenthesised groups innermost-first, then dispatch.
func (e *Engine) evalExpression(expr string, ctx *Context) (string, error) {
	tokens := Tokenize(expr)

	tokens, err := e.reduce(tokens, ctx)
	if err != nil {
		return "", err
	}

	return e.evalTokens(tokens, ctx)
}

// evalTokens dispatches a fully reduced token stream.
//
// An empty stream evaluates to the empty string. If the first token names
// a built-in helper, the helper is invoked with the full stream; stray
// parens left by unbalanced input count toward its arity check and are
// stripped before argument use. Otherwise the leading token is resolved
// as a value; excess trailing tokens are not an error at this level.
func (e *Engine) evalTokens(tokens []Token, ctx *Context) (string, error) {
	if len(tokens) == 0 {
		return "", nil
	}

	first := tokens[0]
	if first.Kind == TokenBare {
		if helper, ok := helperTable[first.Text]; ok {
			return helper(tokens, ctx)
		}
	}

	value, err := resolveToken(first, ctx)
	if err != nil {
		return "", err
	}
	return value.Render(), nil
}
