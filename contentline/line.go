// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package contentline

import (
	"sort"
	"strings"
)

// Line is the structured form of one logical content line:
//
//	[group "."] name *(";" param) ":" value
//
// Param and child names are matched case-insensitively; param values
// preserve case. Params holds all "KEY=value[,value...]" parameters;
// SingletonParams holds bare parameter tokens with no "=" (vCard 2.1 allows
// these, e.g. "TEL;HOME:..."). Value is the raw on-wire text: no escape
// processing happens at this layer.
type Line struct {
	Group           string
	Name            string
	Params          map[string][]string
	SingletonParams []string
	Value           string
}

// Parse decomposes one already-unfolded logical line into a Line.
func Parse(raw string) (*Line, error) {
	colon := findUnquotedByte(raw, ':')
	if colon == -1 {
		return nil, ErrMissingColon
	}
	header := raw[:colon]
	value := raw[colon+1:]

	var nameAndGroup, paramString string
	if semi := strings.IndexByte(header, ';'); semi != -1 {
		nameAndGroup = header[:semi]
		paramString = header[semi+1:]
	} else {
		nameAndGroup = header
	}

	group, name := "", nameAndGroup
	if dot := strings.IndexByte(nameAndGroup, '.'); dot != -1 {
		group = nameAndGroup[:dot]
		name = nameAndGroup[dot+1:]
	}
	name = normalizeName(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	l := &Line{
		Group:  group,
		Name:   name,
		Params: map[string][]string{},
		Value:  value,
	}

	for _, part := range splitRespectingQuotes(paramString, ';') {
		if part == "" {
			continue
		}
		key, rest, hasEq := cutByteRespectingQuotes(part, '=')
		key = normalizeName(key)
		if !hasEq {
			l.SingletonParams = append(l.SingletonParams, key)
			continue
		}
		var values []string
		for _, v := range splitRespectingQuotes(rest, ',') {
			values = append(values, unquoteParamValue(v))
		}
		l.Params[key] = append(l.Params[key], values...)
	}

	return l, nil
}

// Serialize reconstructs the wire form of l (without fold processing —
// callers pass the result through linefold.Fold). Parameter keys are
// emitted in sorted order for stable output; a value containing ",", ";",
// or ":" is wrapped in quotes, and one containing a literal '"' is rejected.
func (l *Line) Serialize() (string, error) {
	var b strings.Builder
	if l.Group != "" {
		b.WriteString(l.Group)
		b.WriteByte('.')
	}
	b.WriteString(l.Name)

	keys := make([]string, 0, len(l.Params))
	for k := range l.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, singleton := range l.SingletonParams {
		b.WriteByte(';')
		b.WriteString(singleton)
	}
	for _, k := range keys {
		b.WriteByte(';')
		b.WriteString(k)
		b.WriteByte('=')
		vals := l.Params[k]
		for i, v := range vals {
			if i > 0 {
				b.WriteByte(',')
			}
			q, err := quoteParamValueIfNeeded(v)
			if err != nil {
				return "", err
			}
			b.WriteString(q)
		}
	}

	b.WriteByte(':')
	b.WriteString(l.Value)
	return b.String(), nil
}

func normalizeName(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", "-")
}

func quoteParamValueIfNeeded(v string) (string, error) {
	if strings.ContainsRune(v, '"') {
		return "", ErrQuoteInParamValue
	}
	if strings.ContainsAny(v, ",;:") {
		return `"` + v + `"`, nil
	}
	return v, nil
}

// unquoteParamValue strips one layer of surrounding double quotes. A stray
// unquoted DQUOTE appearing mid-value (non-conformant but seen in the
// wild) is tolerated rather than rejected: it simply isn't treated as a
// quote delimiter if it doesn't open/close a clean span.
func unquoteParamValue(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

// findUnquotedByte finds the first occurrence of b outside a double-quoted
// span, or -1.
func findUnquotedByte(s string, b byte) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case b:
			if !inQuotes {
				return i
			}
		}
	}
	return -1
}

// splitRespectingQuotes splits s on sep, ignoring occurrences of sep inside
// a double-quoted span.
func splitRespectingQuotes(s string, sep byte) []string {
	if s == "" {
		return nil
	}
	var parts []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == sep && !inQuotes:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())
	return parts
}

// cutByteRespectingQuotes is strings.Cut with quote-awareness for sep.
func cutByteRespectingQuotes(s string, sep byte) (before, after string, found bool) {
	idx := findUnquotedByte(s, sep)
	if idx == -1 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}
