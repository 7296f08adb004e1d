// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestRenderValue(t *testing.T) {
	color.NoColor = true

	value := map[string]interface{}{
		"hostname": "web01",
		"cores":    float64(4),
		"backup_enabled": true,
		"network": map[string]interface{}{
			"ip": "203.0.113.10",
		},
		"disks": []interface{}{"sda", "sdb"},
	}

	lines := renderValue(value, 0)
	got := strings.Join(lines, "\n")

	want := strings.Join([]string{
		"Backup Enabled: enabled",
		"Cores: 4",
		"Disks:",
		"  - sda",
		"  - sdb",
		"Hostname: web01",
		"Network:",
		"  IP: 203.0.113.10",
	}, "\n")

	if got != want {
		t.Errorf("renderValue mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderValue_ListOfObjects(t *testing.T) {
	color.NoColor = true

	value := []interface{}{
		map[string]interface{}{"name": "first"},
		map[string]interface{}{"name": "second"},
	}

	lines := renderValue(value, 0)
	got := strings.Join(lines, "\n")

	want := strings.Join([]string{
		"- #1",
		"  Name: first",
		"- #2",
		"  Name: second",
	}, "\n")

	if got != want {
		t.Errorf("renderValue mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatScalar(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"nil", nil, "-"},
		{"empty string", "", "-"},
		{"string", "running", "running"},
		{"integer number", float64(80), "80"},
		{"fractional number", 1.25, "1.25"},
		{"false", false, "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color.NoColor = true
			if got := formatScalar(tt.value); got != tt.want {
				t.Errorf("formatScalar(%v) = %q, expected %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestProgressBar(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name       string
		percent    float64
		wantFilled int
		wantLabel  string
	}{
		{"low usage still shows a cell", 1.25, 1, "1.25%"},
		{"half", 50, 10, "50.00%"},
		{"full", 100, 20, "100.00%"},
		{"over limit clamps", 140, 20, "100.00%"},
		{"zero", 0, 0, "0.00%"},
		{"negative clamps", -3, 0, "0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := progressBar(tt.percent, 20)
			if !strings.Contains(bar, tt.wantLabel) {
				t.Errorf("progressBar(%v) = %q, expected label %q", tt.percent, bar, tt.wantLabel)
			}
			if filled := strings.Count(bar, "█"); filled != tt.wantFilled {
				t.Errorf("progressBar(%v) has %d filled cells, expected %d", tt.percent, filled, tt.wantFilled)
			}
		})
	}
}

func TestPrettifyKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"hostname", "Hostname"},
		{"vm_state", "Vm State"},
		{"internal_id", "Internal ID"},
		{"ddos_protection", "DDOS Protection"},
		{"cpu_cores", "CPU Cores"},
	}

	for _, tt := range tests {
		if got := prettifyKey(tt.key); got != tt.want {
			t.Errorf("prettifyKey(%q) = %q, expected %q", tt.key, got, tt.want)
		}
	}
}
