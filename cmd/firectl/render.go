// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	keyColor     = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
)

// renderValue turns a decoded JSON value into indented "key: value" lines.
// Maps render their keys sorted, nested maps and slices indent one level
// deeper. The result carries no trailing newline per line.
func renderValue(value interface{}, indent int) []string {
	pad := strings.Repeat("  ", indent)

	switch v := value.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var lines []string
		for _, k := range keys {
			label := keyColor.Sprint(prettifyKey(k))
			switch child := v[k].(type) {
			case map[string]interface{}, []interface{}:
				lines = append(lines, fmt.Sprintf("%s%s:", pad, label))
				lines = append(lines, renderValue(child, indent+1)...)
			default:
				lines = append(lines, fmt.Sprintf("%s%s: %s", pad, label, formatScalar(child)))
			}
		}
		return lines

	case []interface{}:
		var lines []string
		for i, item := range v {
			switch item.(type) {
			case map[string]interface{}, []interface{}:
				lines = append(lines, fmt.Sprintf("%s- #%d", pad, i+1))
				lines = append(lines, renderValue(item, indent+1)...)
			default:
				lines = append(lines, fmt.Sprintf("%s- %s", pad, formatScalar(item)))
			}
		}
		return lines

	default:
		return []string{pad + formatScalar(v)}
	}
}

func printValue(value interface{}) {
	for _, line := range renderValue(value, 0) {
		fmt.Println(line)
	}
}

func formatScalar(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return "-"
	case bool:
		if s {
			return successColor.Sprint("enabled")
		}
		return "disabled"
	case float64:
		// JSON numbers decode as float64; render integers without
		// a fractional part.
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%.2f", s)
	case string:
		if s == "" {
			return "-"
		}
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

// prettifyKey turns snake_case API field names into readable labels.
func prettifyKey(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		switch strings.ToLower(p) {
		case "id", "ip", "kvm", "ddos", "cpu", "ram", "url":
			parts[i] = strings.ToUpper(p)
		default:
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// progressBar renders a fixed-width usage bar. Any usage above zero shows at
// least one filled cell, anything at or above 100% fills the bar completely.
func progressBar(percent float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	if percent > 0 && filled == 0 {
		filled = 1
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %.2f%%", bar, percent)
}

func heading(format string, args ...interface{}) {
	headingColor.Printf(format+"\n", args...)
}