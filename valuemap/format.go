// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: Parsing and serialization of the value-map text format.
// Determinism:
//   - Variables are registered in order of first occurrence in the document.
//   - Serialization follows insertion order.

package valuemap

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/variables"
)

const maxLineBytes = 1 << 20

// Parse reads a value-map document from r into a new Map over a fresh
// space.
func Parse(r io.Reader) (*Map, error) {
	m := New(variables.NewSpace())
	space := m.Space()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		lead := strings.Index(raw, text)

		eq := strings.LastIndexByte(text, '=')
		if eq < 0 {
			return nil, &FormatError{Line: line, Column: lead + len(text) + 1, Text: raw, Err: ErrMissingValue}
		}
		valueText := strings.TrimSpace(text[eq+1:])
		value, err := strconv.Atoi(valueText)
		if err != nil {
			return nil, &FormatError{Line: line, Column: lead + eq + 2, Text: raw, Err: ErrBadValue}
		}

		key := make(assignment.Set, 0, 4)
		offset := 0
		for _, tok := range strings.Split(text[:eq], ",") {
			col := lead + offset + 1
			offset += len(tok) + 1
			lit, ok := parseToken(space, strings.TrimSpace(tok))
			if !ok {
				return nil, &FormatError{Line: line, Column: col, Text: raw, Err: ErrEmptyToken}
			}
			key = append(key, lit)
		}
		if err := m.Put(key, value); err != nil {
			return nil, fmt.Errorf("Parse: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return m, nil
}

// ParseString parses a value-map document held in s.
func ParseString(s string) (*Map, error) {
	return Parse(strings.NewReader(s))
}

// parseToken consumes at most one sign character and registers the rest
// of tok, trimmed, as a variable name.
func parseToken(space *variables.Space, tok string) (int, bool) {
	negative := false
	if tok != "" && (tok[0] == '-' || tok[0] == '+') {
		negative = tok[0] == '-'
		tok = strings.TrimSpace(tok[1:])
	}
	if tok == "" {
		return 0, false
	}
	id := space.Add(tok)
	if negative {
		return -id, true
	}

	return id, true
}

// WriteTo serializes m in insertion order, one entry per line.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	space := m.Space()
	for i, key := range m.Keys() {
		for j, lit := range key {
			if j > 0 {
				buf.WriteByte(',')
			}
			v, sign := lit, byte('+')
			if lit < 0 {
				v, sign = -lit, '-'
			}
			name, ok := space.Name(v)
			if !ok {
				return 0, fmt.Errorf("WriteTo: literal %d: %w", lit, assignment.ErrUnknownVariable)
			}
			if !encodable(name) {
				return 0, fmt.Errorf("WriteTo: %q: %w", name, ErrUnencodableName)
			}
			buf.WriteByte(sign)
			buf.WriteString(name)
		}
		buf.WriteByte('=')
		buf.WriteString(strconv.Itoa(m.values[i]))
		buf.WriteByte('\n')
	}
	n, err := w.Write(buf.Bytes())

	return int64(n), err
}

// Format returns the serialized form of m.
func Format(m *Map) (string, error) {
	var sb strings.Builder
	if _, err := m.WriteTo(&sb); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func encodable(name string) bool {
	if name == "" || strings.TrimSpace(name) != name {
		return false
	}

	return !strings.ContainsAny(name, ",\r\n")
}
