// Package multiplan composes several documents' per-document hulls
// (planner.Hull) into a single benefit-greedy joint plan and answers
// budget queries against it, per spec.md §4.4.
//
// # What & Why
//
// Each document's hull already orders its own configurations by marginal
// benefit. multiplan.Build merges those per-document orderings into one
// global sequence: starting from every document at its fastest
// configuration, it repeatedly advances whichever document's next hull
// step currently has the highest benefit, one step at a time, until every
// document has reached its slowest (best-compressing) configuration. The
// result is the joint plan's lower envelope — for any global budget, the
// two bracketing joint configurations differ in exactly one document, so
// at most one document ever needs to be split.
//
// # Complexity
//
//	Time:  O(log D) per step to pick the next document from a max-heap
//	       holding one pending step per document, plus O(D) per step to
//	       snapshot the current joint configuration — overall O(H·D),
//	       where H is the sum of all per-document hull sizes and D is the
//	       document count.
//	Space: O(H·D), since every joint configuration keeps its own copy of
//	       the D per-document slots.
package multiplan
