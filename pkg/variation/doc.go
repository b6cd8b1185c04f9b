// Package variation enumerates the fixed (a,b,c,d) corner-code tuples
// a tile set must cover for each named sub-family: V4 and V16 list the
// exact tuples from the paper's Figures 7(a) and 8(a); Full lists all
// 4^4 = 256 tuples in lexicographic order. The V4 and V16 tables are
// literal data, not generated, so that the order the test suite depends
// on is impossible to get wrong by refactoring; Full is produced by a
// nested loop over the four codes.
package variation
