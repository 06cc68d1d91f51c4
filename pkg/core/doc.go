// Package core defines the syntax tree produced by the parser.
//
// Statements, expressions and table references are separate marker
// interfaces so the generic grammar and dialect statement parsers can only
// plug the right kind of node into each slot. Optional clauses are pointer
// or slice fields that are nil exactly when the introducing keyword was
// absent from the source.
//
// pkg/core imports only pkg/token and the standard library.
package core
