package tools

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Handler executes one tool invocation.
type Handler func(ctx context.Context, args json.RawMessage) Result

// Tool is a named operation with a human-readable argument description.
type Tool struct {
	Name        string
	Description string
	Handler     Handler
}

// Registry holds the available tools in registration order.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Re-registering a name replaces the handler.
func (r *Registry) Register(t Tool) {
	if _, ok := r.tools[t.Name]; !ok {
		r.order = append(r.order, t.Name)
	}
	r.tools[t.Name] = t
}

// Tools returns all tools in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Dispatch runs the named tool. An unknown name is an invalid_args failure,
// not a Go error.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) Result {
	t, ok := r.tools[name]
	if !ok {
		return Errf(ErrInvalidArgs, "unknown tool %q", name)
	}
	zap.L().Debug("dispatching tool", zap.String("tool", name))
	return t.Handler(ctx, args)
}

func decode[T any](args json.RawMessage) (T, error) {
	var v T
	if len(args) == 0 {
		return v, nil
	}
	err := json.Unmarshal(args, &v)
	return v, err
}
