package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gatherFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func TestObserveCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewToolMetrics(reg)

	m.ObserveCall("book_appointment", "ok", 0.12)
	m.ObserveCall("book_appointment", "ok", 0.03)
	m.ObserveCall("unknown", "tool_not_found", 0.001)

	calls := gatherFamily(t, reg, "voicedesk_tools_calls_total")
	if calls == nil {
		t.Fatal("calls_total not registered")
	}
	var booked float64
	for _, metric := range calls.GetMetric() {
		labels := map[string]string{}
		for _, l := range metric.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		if labels["tool"] == "book_appointment" && labels["status"] == "ok" {
			booked = metric.GetCounter().GetValue()
		}
	}
	if booked != 2 {
		t.Errorf("book_appointment ok count = %v, want 2", booked)
	}

	if gatherFamily(t, reg, "voicedesk_tools_call_duration_seconds") == nil {
		t.Error("call_duration histogram not registered")
	}
}

func TestObserveRiskAlert(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewToolMetrics(reg)

	m.ObserveRiskAlert("crisis")

	alerts := gatherFamily(t, reg, "voicedesk_risk_alerts_total")
	if alerts == nil {
		t.Fatal("alerts_total not registered")
	}
	if got := alerts.GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Errorf("crisis alert count = %v, want 1", got)
	}
}

func TestNilReceiverSafe(t *testing.T) {
	var m *ToolMetrics
	m.ObserveCall("x", "ok", 0)
	m.ObserveRiskAlert("high")
}
