/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keys

import (
	"strings"

	"github.com/suparena/singletable/errors"
)

// A key template is literal text interleaved with {facet} macros, for
// example "ORDER#{tenantID}#{orderID}". Composing substitutes escaped facet
// values for the macros; parsing is the exact inverse.
//
// Facet values are escaped before substitution ('%' -> "%25", '#' -> "%23"),
// so a value containing the join delimiter can never collide with a template
// literal. Every macro that is followed by more template text must be
// followed by a literal starting with '#'; together with escaping this makes
// the encoding a bijection on the facet-value tuple.

// Composer is a compiled key template. It is immutable and safe for
// concurrent use.
type Composer struct {
	template string
	segments []segment
	facets   []string
}

// segment is either a literal (facet == "") or a facet macro.
type segment struct {
	literal string
	facet   string
}

// ParseTemplate compiles a key template. It rejects templates whose shape
// would make decoding ambiguous.
func ParseTemplate(template string) (*Composer, error) {
	if template == "" {
		return nil, errors.NewValidationError("template", "must not be empty")
	}

	c := &Composer{template: template}
	rest := template
	prevWasFacet := false

	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if strings.IndexByte(rest, '}') >= 0 {
				return nil, errors.NewValidationError("template", "unbalanced '}' in "+template)
			}
			if prevWasFacet && rest[0] != '#' {
				return nil, errors.NewValidationError("template",
					"facet macro must be followed by a '#' delimiter in "+template)
			}
			c.segments = append(c.segments, segment{literal: rest})
			break
		}

		if open > 0 {
			literal := rest[:open]
			if prevWasFacet && literal[0] != '#' {
				return nil, errors.NewValidationError("template",
					"facet macro must be followed by a '#' delimiter in "+template)
			}
			c.segments = append(c.segments, segment{literal: literal})
			prevWasFacet = false
		} else if prevWasFacet {
			// Two adjacent macros cannot be decoded.
			return nil, errors.NewValidationError("template", "adjacent facet macros in "+template)
		}

		rest = rest[open+1:]
		closing := strings.IndexByte(rest, '}')
		if closing < 0 {
			return nil, errors.NewValidationError("template", "unterminated facet macro in "+template)
		}
		name := rest[:closing]
		if name == "" {
			return nil, errors.NewValidationError("template", "empty facet name in "+template)
		}
		for _, existing := range c.facets {
			if existing == name {
				return nil, errors.NewValidationError("template", "duplicate facet "+name+" in "+template)
			}
		}

		c.segments = append(c.segments, segment{facet: name})
		c.facets = append(c.facets, name)
		prevWasFacet = true
		rest = rest[closing+1:]
	}

	return c, nil
}

// MustParseTemplate is like ParseTemplate but panics on error. Intended for
// static template declarations.
func MustParseTemplate(template string) *Composer {
	c, err := ParseTemplate(template)
	if err != nil {
		panic(err)
	}
	return c
}

// Template returns the source template string.
func (c *Composer) Template() string { return c.template }

// Facets returns the facet names in declaration order. The returned slice
// must not be modified.
func (c *Composer) Facets() []string { return c.facets }

// Compose builds the physical key string from the supplied facet values.
// Every facet declared by the template must be present and non-empty.
func (c *Composer) Compose(facets map[string]string) (string, error) {
	var b strings.Builder
	for _, seg := range c.segments {
		if seg.facet == "" {
			b.WriteString(seg.literal)
			continue
		}
		value, ok := facets[seg.facet]
		if !ok || value == "" {
			return "", errors.NewMissingFacetError(seg.facet, c.template)
		}
		b.WriteString(escapeFacet(value))
	}
	return b.String(), nil
}

// Parse decodes a physical key string back into its facet values. It is the
// exact inverse of Compose for any tuple Compose accepts.
func (c *Composer) Parse(key string) (map[string]string, error) {
	facets := make(map[string]string, len(c.facets))
	rest := key

	for i, seg := range c.segments {
		if seg.facet == "" {
			if !strings.HasPrefix(rest, seg.literal) {
				return nil, errors.NewMalformedKeyError(key, c.template, "literal segment mismatch")
			}
			rest = rest[len(seg.literal):]
			continue
		}

		var raw string
		if i+1 < len(c.segments) {
			// The next segment is always a literal starting with '#', and
			// escaped values contain no '#', so the first '#' is the real
			// boundary. The literal itself is matched on the next pass.
			end := strings.IndexByte(rest, '#')
			if end < 0 {
				return nil, errors.NewMalformedKeyError(key, c.template, "missing delimiter after facet "+seg.facet)
			}
			raw = rest[:end]
			rest = rest[end:]
		} else {
			raw = rest
			rest = ""
			if strings.IndexByte(raw, '#') >= 0 {
				return nil, errors.NewMalformedKeyError(key, c.template, "unescaped delimiter in facet "+seg.facet)
			}
		}

		if raw == "" {
			return nil, errors.NewMalformedKeyError(key, c.template, "empty value for facet "+seg.facet)
		}
		value, err := unescapeFacet(raw)
		if err != nil {
			return nil, errors.NewMalformedKeyError(key, c.template, err.Error())
		}
		facets[seg.facet] = value
	}

	if rest != "" {
		return nil, errors.NewMalformedKeyError(key, c.template, "trailing content")
	}
	return facets, nil
}
