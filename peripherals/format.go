// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package peripherals

import (
	"math"
	"strconv"
	"strings"
)

// String renders the value in GVariant text notation: booleans as
// true/false, strings single-quoted, arrays bracketed and comma-separated.
// Scripts parse this output, so the shapes are stable.
func (v Value) String() string {
	switch v.Type {
	case KeyTypeBool:
		return strconv.FormatBool(v.Bool)
	case KeyTypeString, KeyTypeEnum:
		return quote(v.Str)
	case KeyTypeIntArray:
		parts := make([]string, len(v.Ints))
		for i, e := range v.Ints {
			parts[i] = strconv.FormatInt(int64(e), 10)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KeyTypeDoubleArray:
		parts := make([]string, len(v.Doubles))
		for i, e := range v.Doubles {
			parts[i] = formatDouble(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KeyTypeStringArray:
		parts := make([]string, len(v.Strs))
		for i, e := range v.Strs {
			parts[i] = quote(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return ""
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// formatDouble keeps a trailing .0 on integral values, the way GVariant
// prints doubles.
func formatDouble(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatSettings renders the current values of keys as key=value lines,
// one per key, in the given order. Keys missing from the installed schema
// are skipped.
func FormatSettings(a *Accessor, keys []string) ([]string, error) {
	var lines []string
	for _, key := range keys {
		if !a.HasKey(key) {
			continue
		}
		value, err := a.Get(key)
		if err != nil {
			return nil, err
		}
		lines = append(lines, key+"="+value.String())
	}
	return lines, nil
}
