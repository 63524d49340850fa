// Package iterative implements cons.List with loops. Every traversal walks the
// cells with a cursor, so no operation grows the call stack with the list.
//
// The empty list is the nil *List[T]; Nil returns it for readability.
package iterative
