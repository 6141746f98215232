package tools

import (
	"context"
	"encoding/json"
	"runtime/debug"
	"strings"
	"time"

	"github.com/mindwell/voicedesk/internal/observability/metrics"
	"github.com/mindwell/voicedesk/pkg/logging"
)

// Dispatcher resolves tool names to handlers and normalizes every
// outcome. It performs no business logic itself: parameters are
// decoded, validated against the tool's schema, and handed to exactly
// one handler. A handler failure, typed or panicking, becomes a typed
// Error; nothing raw ever escapes to the voice agent.
type Dispatcher struct {
	registry *Registry
	phone    PhoneValidator
	metrics  *metrics.ToolMetrics
	logger   *logging.Logger
}

// NewDispatcher creates a dispatcher over a fully built registry.
func NewDispatcher(registry *Registry, phone PhoneValidator, m *metrics.ToolMetrics, logger *logging.Logger) *Dispatcher {
	if registry == nil {
		panic("tools: registry required")
	}
	if phone == nil {
		phone = DefaultPhoneValidator
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{registry: registry, phone: phone, metrics: m, logger: logger}
}

// Dispatch runs one tool call end to end. Each call is stateless and
// independent; no ordering is guaranteed between concurrent calls.
func (d *Dispatcher) Dispatch(ctx context.Context, call Call) (result *Result, derr *Error) {
	start := time.Now()
	name := Name(strings.TrimSpace(call.Tool))

	defer func() {
		status := "ok"
		if derr != nil {
			status = string(derr.Kind)
		}
		d.metrics.ObserveCall(string(name), status, time.Since(start).Seconds())
	}()

	params, perr := decodeParameters(call.Parameters)
	if perr != nil {
		d.logger.Warn("tools: bad parameters",
			"tool", name, "tool_call_id", call.ToolCallID, "kind", perr.Kind)
		return nil, perr
	}

	tool, ok := d.registry.Lookup(name)
	if !ok {
		d.logger.Warn("tools: unknown tool requested",
			"tool", name, "tool_call_id", call.ToolCallID, "registered", d.registry.Names())
		return nil, NewError(KindToolNotFound, "tool_not_found",
			"I'm sorry, I can't help with that request.")
	}

	// Fail fast, before any side effects.
	if verr := tool.Schema.Validate(params, d.phone); verr != nil {
		d.logger.Warn("tools: validation failed",
			"tool", name, "tool_call_id", call.ToolCallID, "code", verr.Code, "detail", verr.Content)
		return nil, verr
	}

	defer func() {
		if rec := recover(); rec != nil {
			d.logger.Error("tools: handler panicked",
				"tool", name, "tool_call_id", call.ToolCallID,
				"panic", rec, "stack", string(debug.Stack()))
			result = nil
			derr = NewError(KindExecutionException, "execution_exception", spokenGenericFailure)
		}
	}()

	res, err := tool.Handler(WithCallID(ctx, call.ToolCallID), params)
	if err != nil {
		derr = AsError(err)
		d.logger.Error("tools: handler failed",
			"tool", name, "tool_call_id", call.ToolCallID,
			"agent_type", call.AgentType, "kind", derr.Kind, "error", err)
		return nil, derr
	}

	d.logger.Info("tools: call completed",
		"tool", name, "tool_call_id", call.ToolCallID,
		"agent_type", call.AgentType, "duration_ms", time.Since(start).Milliseconds())
	return res, nil
}

// decodeParameters accepts either an already-decoded mapping or a
// JSON-encoded string, which is how some voice platforms deliver tool
// arguments.
func decodeParameters(raw any) (map[string]any, *Error) {
	switch v := raw.(type) {
	case nil:
		return nil, NewError(KindMissingParameters, "missing_parameters",
			"Parameters are required.")
	case map[string]any:
		return v, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, NewError(KindMissingParameters, "missing_parameters",
				"Parameters are required.")
		}
		var params map[string]any
		if err := json.Unmarshal([]byte(v), &params); err != nil {
			return nil, NewError(KindInvalidParameters, "invalid_parameters",
				"Invalid parameters format.")
		}
		return params, nil
	case json.RawMessage:
		var params map[string]any
		if err := json.Unmarshal(v, &params); err != nil {
			return nil, NewError(KindInvalidParameters, "invalid_parameters",
				"Invalid parameters format.")
		}
		return params, nil
	default:
		return nil, NewError(KindInvalidParameters, "invalid_parameters",
			"Invalid parameters format.")
	}
}
