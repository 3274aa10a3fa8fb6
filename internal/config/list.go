// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Karpov

package config

import (
	"encoding/json"
	"strings"
)

// ParseList parses a configuration value expected to hold a list of strings.
//
// Lists should be comma separated. Earlier pipekit releases also accepted a
// bracketed, single-quoted form such as "['a', 'b']"; swapping the single
// quotes for double quotes turns that form into a JSON array, so it is tried
// first. Anything that fails the JSON decode is treated as a plain
// comma-separated string with surrounding whitespace trimmed from each item.
// Order and duplicates are preserved.
func ParseList(s string) []string {
	var items []string
	if err := json.Unmarshal([]byte(strings.ReplaceAll(s, "'", `"`)), &items); err == nil {
		return items
	}

	parts := strings.Split(s, ",")
	items = make([]string, 0, len(parts))
	for _, part := range parts {
		items = append(items, strings.TrimSpace(part))
	}
	return items
}
