/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keys

import (
	"fmt"
	"strings"
)

// escapeFacet encodes a facet value so that it contains neither the '#'
// join delimiter nor a bare '%'. '%' must be escaped first so that decoding
// with a single left-to-right scan is unambiguous.
func escapeFacet(value string) string {
	if !strings.ContainsAny(value, "%#") {
		return value
	}
	var b strings.Builder
	b.Grow(len(value) + 4)
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '%':
			b.WriteString("%25")
		case '#':
			b.WriteString("%23")
		default:
			b.WriteByte(value[i])
		}
	}
	return b.String()
}

// unescapeFacet is the inverse of escapeFacet. Any '%' not followed by a
// known two-character code is an encoding error.
func unescapeFacet(raw string) (string, error) {
	if strings.IndexByte(raw, '%') < 0 {
		return raw, nil
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '%' {
			b.WriteByte(raw[i])
			continue
		}
		if i+2 >= len(raw) {
			return "", fmt.Errorf("truncated escape sequence at offset %d", i)
		}
		switch raw[i+1 : i+3] {
		case "25":
			b.WriteByte('%')
		case "23":
			b.WriteByte('#')
		default:
			return "", fmt.Errorf("unknown escape sequence %q at offset %d", raw[i:i+3], i)
		}
		i += 2
	}
	return b.String(), nil
}
