// Package cons defines the immutable singly-linked list contract shared by the
// iterative and recursive implementations, together with the helpers that do
// not depend on which traversal strategy is used.
//
// Key operations:
// - List: the contract (IsEmpty, Head, Tail, Prepend, Len, Get, At,
//   Contains, All, Compare/Equal, Hash, String/GoString/Format)
// - FromSlice/FromSeq: build a list whose iteration order matches the input
// - Resolve/IntKey: index normalisation shared by both strategies
// - Reduce/Map/Filter/Collect: sequence helpers over any List
//
// Lists never change after construction. Prepend allocates one cell and shares
// the receiver as its tail, so any number of lists can share a suffix.
package cons
