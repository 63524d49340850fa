// Package recursive implements cons.List by self-recursion: every traversal
// handles the head and delegates the rest to the tail. Stack depth grows with
// the list, so very long lists are better served by package iterative.
//
// The empty list is the nil *List[T]; Nil returns it for readability.
package recursive
