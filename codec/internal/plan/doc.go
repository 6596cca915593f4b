// Package plan holds the compiled, immutable description of a declared type:
// its kind, its ordered field list and its discriminant table.
package plan
