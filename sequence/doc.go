/*
Package sequence implements a dynamically resizable ordered sequence of strings.
It defines the type Sequence, with methods for inserting, removing, querying and
comparing values, and the type Store, with methods for interacting with a
collection of named sequences.

A Sequence is index-addressable from 0 to Len()-1. It owns every value it holds:
values are copied on the way in and out, so no caller buffer is ever shared with
the sequence. Filter and RemoveDuplicates run a single forward pass over the
original elements and visit each of them exactly once.

Methods taking a position panic if the position is outside the documented range.
The panic value is an error wrapping ErrOutOfRange. Such calls are programming
errors and are never clamped or ignored.

The textual representation of a sequence is

	[]             for an empty sequence
	[e0,e1,...,en] otherwise

Values are not escaped, so the output is ambiguous when a value contains a
comma or a closing bracket.

A Sequence is not safe for concurrent use. A Store is essentially a wrapper around
a map of sequences that provides convenience methods safe to use from multiple
goroutines, and that returns errors instead of panicking when a statement holds
an invalid position.
*/
package sequence
