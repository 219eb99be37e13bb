// Package batch runs one parser over many inputs concurrently. Parsers are
// pure, so the same Parser value is shared by every line.
//
// - Run: stream inputs through a parser on a fixed number of lines
// - RunAll: parse a slice and get the results back in input order
package batch
