package utils

import "strings"

// JoinWithAnd joins predicate clauses with AND.
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithComma joins SET assignments with commas.
func JoinWithComma(clauses []string) string {
	return strings.Join(clauses, ", ")
}
