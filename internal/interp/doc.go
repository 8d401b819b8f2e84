// Package interp implements the weft string interpolation engine.
//
// A template is arbitrary text containing interpolation spans delimited by
// {{ and }}. The content of each span is a small expression: either a
// dotted path resolved against a caller-supplied data context, or a call
// to one of a fixed set of built-in helpers, with parenthesised
// sub-expressions reduced innermost-first.
//
//	engine := interp.NewEngine(sink)
//	out, ok := engine.Interpolate("Hello {{uppercase user.name}}", ctx)
//
// The engine is pure and re-entrant: all state is per call, and the only
// external effect is reporting structured errors to the injected Sink.
// Case mapping, date rendering, and number rendering are pinned to the
// en-CA locale regardless of the process environment.
package interp
