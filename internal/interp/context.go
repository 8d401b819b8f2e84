package interp

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/weftlang/weft/internal/types"
)

// Top-level context keywords recognized by the value resolver.
const (
	KeywordData = "data"
	KeywordURL  = "url"
	KeywordUser = "user"
)

// knownKeywords is the closed set of path roots the resolver accepts.
var knownKeywords = map[string]bool{
	KeywordData: true,
	KeywordURL:  true,
	KeywordUser: true,
}

// Context is the data context for one interpolation call: a mapping from
// top-level keyword to a nested value tree. Tree nodes are maps from string
// key to value, strings, signed integers, or double-precision numbers.
//
// The engine never mutates a Context, so a single Context may be shared
// across concurrent Interpolate calls.
type Context struct {
	roots map[string]any
}

// NewContext creates an empty context. An empty context is valid: every
// path lookup against it fails with an unexpected-value error.
func NewContext() *Context {
	return &Context{roots: make(map[string]any)}
}

// ContextFromMap wraps an existing nested map as a Context. The map is not
// copied; the caller must not mutate it during interpolation.
func ContextFromMap(m map[string]any) *Context {
	if m == nil {
		m = make(map[string]any)
	}
	return &Context{roots: m}
}

// ContextFromYAML decodes YAML into a Context. Mapping nodes decode to
// map[string]any and scalars keep their YAML kind, so integers stay
// integers and floats stay floats.
func ContextFromYAML(data []byte) (*Context, error) {
	m := make(map[string]any)
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, types.Wrap(types.CONTEXT_DECODE_FAILED, err, "failed to decode context YAML")
	}
	return normalize(m), nil
}

// normalize rewrites map[any]any nodes (produced by some YAML shapes) into
// map[string]any so path navigation sees a uniform tree.
func normalize(m map[string]any) *Context {
	var walk func(v any) any
	walk = func(v any) any {
		switch node := v.(type) {
		case map[string]any:
			for k, child := range node {
				node[k] = walk(child)
			}
			return node
		case map[any]any:
			out := make(map[string]any, len(node))
			for k, child := range node {
				if ks, ok := k.(string); ok {
					out[ks] = walk(child)
				}
			}
			return out
		default:
			return v
		}
	}

	for k, v := range m {
		m[k] = walk(v)
	}
	return &Context{roots: m}
}

// Set stores a value at a dot-notation path, creating intermediate maps as
// needed. Setting over a non-map intermediate is a no-op.
func (c *Context) Set(path string, value any) {
	if path == "" {
		return
	}
	parts := strings.Split(path, ".")
	node := c.roots
	for i, part := range parts {
		if i == len(parts)-1 {
			node[part] = value
			return
		}
		next, exists := node[part]
		if !exists {
			child := make(map[string]any)
			node[part] = child
			node = child
			continue
		}
		childMap, ok := next.(map[string]any)
		if !ok {
			return
		}
		node = childMap
	}
}

// Get resolves a dot-notation path in the context. It returns the value
// and true if every segment exists, or nil and false if any part of the
// path is missing or navigates through a non-map node.
func (c *Context) Get(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	parts := strings.Split(path, ".")
	current := any(c.roots)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		value, exists := currentMap[part]
		if !exists {
			return nil, false
		}

		if i == len(parts)-1 {
			return value, true
		}

		current = value
	}

	return nil, false
}

// Has reports whether a top-level keyword is present in the context.
func (c *Context) Has(root string) bool {
	_, ok := c.roots[root]
	return ok
}
