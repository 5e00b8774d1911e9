// Package valuemap implements Map, a table from literal-set keys to int
// values (cluster cardinalities, interaction weights, priorities), and its
// line-oriented text format.
//
// Text format, one entry per line, blank lines ignored:
//
//	line  := token (',' token)* '=' integer
//	token := [sign] identifier
//	sign  := '+' | '-'
//
// Exactly one leading sign character is consumed per token: '-' makes the
// literal negative, '+' or no sign makes it positive. Any further sign
// characters belong to the identifier, so "--feature1" is the negative
// literal of a variable named "-feature1". Identifiers unknown to the map's
// space are registered in order of first occurrence.
//
// Serialization writes every key in insertion order, each literal as its
// explicit sign followed by the variable name:
//
//	+feature1,-feature2=1
//
// which parses back to the same map. A key that occurs twice in a document
// keeps its first position and its last value.
//
// Errors:
//
//	*FormatError        - malformed line; carries Line and Column, matches ErrFormat.
//	ErrMissingValue     - no '=' on a line.
//	ErrBadValue         - value after '=' is not an integer.
//	ErrEmptyToken       - empty token or sign without identifier.
//	ErrUnencodableName  - a variable name the text format cannot represent.
package valuemap
