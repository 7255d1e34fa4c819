package sequence

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Values returns a copy of the values stored in the sequence using start and
// end as closed interval filter on positions. The method returns an error if
// start is greater than end or if the interval filter and the sequence don't
// overlap.
func (s *Sequence) Values(start, end int) ([]string, error) {
	if start > end {
		return nil, errors.New("invalid arguments")
	}
	r, ok := s.elements().intersect(interval{start: start, end: end})
	if !ok {
		return nil, errors.Wrapf(ErrOutOfRange, "values: [%d, %d], length %d", start, end, len(s.data))
	}
	return slices.Clone(s.data[r.start : r.end+1]), nil
}

// Contains reports whether value is stored in the sequence.
func (s *Sequence) Contains(value string) bool {
	return slices.Contains(s.data, value)
}

// Filter removes every value for which keep returns false, preserving the
// relative order of the kept values. keep is called exactly once for each
// value, in order. The sequence is left unchanged if keep panics. It panics if
// keep is nil.
func (s *Sequence) Filter(keep func(string) bool) {
	if keep == nil {
		nilArgument("filter")
	}
	kept := make([]string, 0, len(s.data))
	for _, v := range s.data {
		if keep(v) {
			kept = append(kept, v)
		}
	}
	s.data = kept
}

// RemoveDuplicates keeps only the first occurrence of each distinct value,
// preserving their relative order.
func (s *Sequence) RemoveDuplicates() {
	seen := make(map[string]struct{}, len(s.data))
	s.Filter(func(v string) bool {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
		return true
	})
}
