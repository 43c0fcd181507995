// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package util

import "github.com/mattn/go-runewidth"

// TruncateWidth shortens s to fit within width terminal cells,
// appending an ellipsis when anything was cut. Wide runes (CJK,
// emoji) count as two cells.
func TruncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
