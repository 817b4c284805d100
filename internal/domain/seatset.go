package domain

import "sort"

// SeatSet keeps seat codes ordered for display while giving O(1) membership
// checks. The persisted form is the plain ordered slice.
type SeatSet struct {
	codes  []string
	member map[string]struct{}
}

func NewSeatSet(codes []string) SeatSet {
	s := SeatSet{
		codes:  make([]string, 0, len(codes)),
		member: make(map[string]struct{}, len(codes)),
	}
	for _, code := range codes {
		s.Add(code)
	}
	return s
}

func (s *SeatSet) Contains(code string) bool {
	_, ok := s.member[code]
	return ok
}

// Add appends a code, ignoring duplicates. Seat codes are unique within a
// class, so a duplicate here is always a caller mistake.
func (s *SeatSet) Add(code string) {
	if s.member == nil {
		s.member = make(map[string]struct{})
	}
	if _, ok := s.member[code]; ok {
		return
	}
	s.codes = append(s.codes, code)
	s.member[code] = struct{}{}
}

func (s *SeatSet) Remove(code string) bool {
	if _, ok := s.member[code]; !ok {
		return false
	}
	delete(s.member, code)
	for i, c := range s.codes {
		if c == code {
			s.codes = append(s.codes[:i], s.codes[i+1:]...)
			break
		}
	}
	return true
}

// SortDisplay re-sorts the codes by (row asc, letter asc). Cosmetic only;
// membership never depends on order.
func (s *SeatSet) SortDisplay() {
	sort.Slice(s.codes, func(i, j int) bool {
		return CompareSeatCodes(s.codes[i], s.codes[j]) < 0
	})
}

// Codes returns the ordered codes. The returned slice is a copy.
func (s *SeatSet) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

func (s *SeatSet) Len() int {
	return len(s.codes)
}
