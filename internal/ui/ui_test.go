package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHeaderRendersFieldsInOrder(t *testing.T) {
	h := NewHeader("Terminal server", "cdterm serve",
		Field{Key: "Address", Value: "0.0.0.0:8080"},
		Field{Key: "Site", Value: "./public"},
	).SetWidth(80)

	out := h.Render()
	for _, want := range []string{"TERMINAL SERVER", "cdterm serve", "Address:", "0.0.0.0:8080", "./public"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Address:") > strings.Index(out, "Site:") {
		t.Error("fields rendered out of order")
	}
}

func TestResultTypes(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Configuration written", Field{Key: "Path", Value: "/tmp/config.yaml"}),
			want:   []string{SuccessMarker, "SUCCESS", "Configuration written", "/tmp/config.yaml"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Server failed", errors.New("address in use"), []string{"Pick another --port"}),
			want:   []string{FailureMarker, "FAILED", "Error: address in use", "Troubleshooting:", "Pick another --port"},
		},
		{
			name:   "warning",
			result: NewWarningResult("No servers found", []string{"Increase --timeout"}),
			want:   []string{WarningMarker, "WARNING", "Increase --timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("result missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestPrinterWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(70)

	if p.Width() != 70 {
		t.Errorf("Width() = %d, want 70", p.Width())
	}

	p.PrintHeader("Scan", "cdterm scan")
	p.PrintFields(Field{Key: "Instance", Value: "cdterm"})
	p.Printf("%d found\n", 1)

	out := buf.String()
	for _, want := range []string{"SCAN", "cdterm scan", "Instance:", "1 found"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, MinTerminalWidth},
		{MinTerminalWidth + 5, MinTerminalWidth + 5},
		{500, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := clampWidth(tt.in); got != tt.want {
			t.Errorf("clampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
