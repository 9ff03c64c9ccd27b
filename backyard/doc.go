// Package backyard reads dig-site files, runs the MST over them and writes the
// resulting tunnel plan.
//
// Input format:
//
//	3 4                 rows and cols of the backyard
//
//	(0,0) (0,1) 5       one candidate tunnel per line: two cells and a cost
//	(0,1) (2,3) 7
//
// Parentheses and commas are plain separators, so "(0,0) (0,1) 5" and
// "0 0 0 1 5" are equivalent. Blank lines are ignored. Only cells that appear
// in some tunnel become vertices.
//
// Output format:
//
//	12                  total cost
//
//	(0,0) (0,1)         one accepted tunnel per line, in acceptance order
//	(0,1) (2,3)
//
// Parse reports every malformed tunnel line at once; each entry names its line.
package backyard
