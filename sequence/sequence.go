package sequence

import (
	"io"

	"golang.org/x/exp/slices"
)

// A Sequence represents an ordered list of strings. The zero value is an
// empty sequence ready to use.
type Sequence struct {
	data []string
}

// New creates and initializes a new empty Sequence.
func New() *Sequence {
	return &Sequence{}
}

// NewFromValues creates a new Sequence using values as its initial content.
// The sequence holds its own copy of values.
func NewFromValues(values ...string) *Sequence {
	return &Sequence{data: slices.Clone(values)}
}

// Len returns the number of values in the sequence.
func (s *Sequence) Len() int {
	return len(s.data)
}

// At returns the value at position pos. It panics if pos is outside
// [0, Len()-1].
func (s *Sequence) At(pos int) string {
	if !s.elements().contains(pos) {
		outOfRange("at", pos, len(s.data))
	}
	return s.data[pos]
}

// Insert inserts value at position pos, shifting the values at pos and after
// one position higher. Inserting at Len() appends the value. It panics if pos is
// outside [0, Len()].
func (s *Sequence) Insert(pos int, value string) {
	if !s.slots().contains(pos) {
		outOfRange("insert", pos, len(s.data))
	}
	s.data = slices.Insert(s.data, pos, value)
}

// InsertBytes inserts a copy of b at position pos. Later changes to b do not
// affect the sequence. It panics if pos is outside [0, Len()].
func (s *Sequence) InsertBytes(pos int, b []byte) {
	s.Insert(pos, string(b))
}

// Remove removes the value at position pos, shifting the values after it one
// position lower. It panics if pos is outside [0, Len()-1].
func (s *Sequence) Remove(pos int) {
	n := len(s.data)
	if !s.elements().contains(pos) {
		outOfRange("remove", pos, n)
	}
	old := s.data
	s.data = slices.Delete(s.data, pos, pos+1)
	old[n-1] = ""
}

// Equal reports whether s and other hold the same values in the same order.
// It panics if other is nil.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		nilArgument("equal")
	}
	return slices.Equal(s.data, other.data)
}

// Append appends the values of other, in order, to the end of s. other is not
// modified, and appending a sequence to itself doubles it. It panics if other
// is nil.
func (s *Sequence) Append(other *Sequence) {
	if other == nil {
		nilArgument("append")
	}
	s.data = append(s.data, other.data...)
}

// All returns a copy of the values stored in the sequence.
func (s *Sequence) All() []string {
	return slices.Clone(s.data)
}

// Clone returns a copy of s.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{data: slices.Clone(s.data)}
}

// Bytes returns the textual representation of the sequence.
func (s *Sequence) Bytes() []byte {
	return render(s.data)
}

// String returns the textual representation of the sequence.
func (s *Sequence) String() string {
	return string(render(s.data))
}

// Print writes the textual representation of the sequence followed by a
// newline to w.
func (s *Sequence) Print(w io.Writer) error {
	_, err := w.Write(append(render(s.data), '\n'))
	return err
}

// elements returns the interval of positions holding a value.
func (s *Sequence) elements() interval {
	return interval{start: 0, end: len(s.data) - 1}
}

// slots returns the interval of positions a value can be inserted at.
func (s *Sequence) slots() interval {
	return interval{start: 0, end: len(s.data)}
}
