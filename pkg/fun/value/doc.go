// Package value holds the capabilities every element stored in a cons list or
// a monad is expected to have: equality, hashing and stringification.
//
// Key operations:
// - Equal: value equality, consulting Comparer on either side first
// - Hash: 32-bit hash consistent with Equal, consulting Hasher first
// - Str/Repr/Text: the selectable per-element stringifiers
//
// Types living in the other fun packages implement Comparer, Hasher and
// fmt.Stringer so that they nest inside each other without special casing.
package value
