// Package handlers holds the HTTP boundary. The tools handler is the
// single endpoint the voice platform calls; everything it returns is a
// uniform JSON envelope the agent can speak from.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mindwell/voicedesk/internal/tools"
	"github.com/mindwell/voicedesk/pkg/logging"
)

// toolCallRequest is the wire shape of one tool call.
type toolCallRequest struct {
	Tool       string          `json:"tool"`
	Parameters json.RawMessage `json:"parameters"`
	ToolCallID string          `json:"toolCallId,omitempty"`
	AgentType  string          `json:"agentType,omitempty"`
}

// successEnvelope is returned when the tool ran.
type successEnvelope struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	Data       map[string]any `json:"data,omitempty"`
	ToolCallID string         `json:"toolCallId,omitempty"`
}

// errorEnvelope is returned on any failure.
type errorEnvelope struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Tool       string `json:"tool,omitempty"`
	ToolCallID string `json:"toolCallId,omitempty"`
}

// ToolsHandler serves POST /api/tools.
type ToolsHandler struct {
	dispatcher *tools.Dispatcher
	logger     *logging.Logger
}

// NewToolsHandler creates the handler.
func NewToolsHandler(dispatcher *tools.Dispatcher, logger *logging.Logger) *ToolsHandler {
	if dispatcher == nil {
		panic("handlers: dispatcher required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ToolsHandler{dispatcher: dispatcher, logger: logger}
}

// Handle runs one tool call and writes the envelope. The endpoint is
// POST-only; the voice platform never issues anything else.
func (h *ToolsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorEnvelope{
			Error: "Method not allowed",
		})
		return
	}

	var req toolCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{
			Error: "Invalid request body.",
		})
		return
	}

	result, derr := h.dispatcher.Dispatch(r.Context(), tools.Call{
		Tool:       req.Tool,
		Parameters: decodeWireParameters(req.Parameters),
		ToolCallID: req.ToolCallID,
		AgentType:  req.AgentType,
	})
	if derr != nil {
		writeJSON(w, statusFor(derr.Kind), errorEnvelope{
			Error:      derr.Content,
			Tool:       req.Tool,
			ToolCallID: req.ToolCallID,
		})
		return
	}

	writeJSON(w, http.StatusOK, successEnvelope{
		Success:    true,
		Message:    result.Message,
		Data:       result.Data,
		ToolCallID: req.ToolCallID,
	})
}

// decodeWireParameters unwraps the raw JSON into what the dispatcher
// expects: a mapping, a JSON-encoded string, or nil when absent. The
// dispatcher owns all further decoding and its error taxonomy.
func decodeWireParameters(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err == nil {
		return asMap
	}
	return json.RawMessage(raw)
}

func statusFor(kind tools.Kind) int {
	switch kind {
	case tools.KindToolNotFound:
		return http.StatusNotFound
	case tools.KindInvalidParameters, tools.KindMissingParameters,
		tools.KindMissingRequiredField, tools.KindValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
