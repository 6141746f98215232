package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Tool binds a name to its validation schema and handler. Exactly one
// Tool exists per Name; registration happens once at startup.
type Tool struct {
	Name    Name
	Schema  Schema
	Handler HandlerFunc
}

// Registry is the closed name-to-handler mapping. It is built during
// bootstrap and never mutated afterwards, so lookups need no locking.
type Registry struct {
	tools map[Name]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[Name]Tool)}
}

// Register adds a tool. Registration happens at startup wiring, so
// misconfiguration is a programming error and panics.
func (r *Registry) Register(t Tool) {
	if t.Name == "" {
		panic("tools: tool name required")
	}
	if t.Handler == nil {
		panic(fmt.Sprintf("tools: handler required for %s", t.Name))
	}
	if _, exists := r.tools[t.Name]; exists {
		panic(fmt.Sprintf("tools: duplicate tool %s", t.Name))
	}
	r.tools[t.Name] = t
}

// Lookup resolves a name to its tool.
func (r *Registry) Lookup(name Name) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names, sorted for stable logs.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for n := range r.tools {
		names = append(names, string(n))
	}
	sort.Strings(names)
	return names
}

// Typed adapts a handler taking a typed parameter record into a
// HandlerFunc. The validated map is round-tripped through JSON into T,
// so every tool's handler keeps a signature matching its declared
// parameters.
func Typed[T any](fn func(ctx context.Context, params T) (*Result, error)) HandlerFunc {
	return func(ctx context.Context, params map[string]any) (*Result, error) {
		var typed T
		raw, err := json.Marshal(params)
		if err != nil {
			return nil, NewError(KindInvalidParameters, "invalid_parameters",
				"I couldn't make sense of those details. Could you say them again?")
		}
		if err := json.Unmarshal(raw, &typed); err != nil {
			return nil, NewError(KindInvalidParameters, "invalid_parameters",
				"I couldn't make sense of those details. Could you say them again?")
		}
		return fn(ctx, typed)
	}
}
