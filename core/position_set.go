package core

// PositionSet is a deduplicating collection of Position values that
// remembers insertion order. Order never affects set semantics; it only
// makes iteration deterministic.
//
// Invariant: no two stored positions are equal.
//
// The zero value is not usable; construct with NewPositionSet or
// NewPositionSetWithCapacity. A PositionSet is owned by a single caller
// and is not safe for concurrent use.
type PositionSet struct {
	members map[Position]struct{}
	order   []Position
}

// NewPositionSet returns an empty set.
func NewPositionSet() *PositionSet {
	return &PositionSet{members: make(map[Position]struct{})}
}

// NewPositionSetWithCapacity returns an empty set pre-sized to hold n
// positions without rehashing. n <= 0 is equivalent to NewPositionSet.
func NewPositionSetWithCapacity(n int) *PositionSet {
	if n <= 0 {
		return NewPositionSet()
	}
	return &PositionSet{
		members: make(map[Position]struct{}, n),
		order:   make([]Position, 0, n),
	}
}

// Add inserts p unless it is already a member.
// Returns true if an insertion occurred, false if p was already present.
// Complexity: O(1) amortized.
func (s *PositionSet) Add(p Position) bool {
	if _, ok := s.members[p]; ok {
		return false
	}
	s.members[p] = struct{}{}
	s.order = append(s.order, p)
	return true
}

// Contains reports whether p is a member. Complexity: O(1).
func (s *PositionSet) Contains(p Position) bool {
	_, ok := s.members[p]
	return ok
}

// Len returns the number of members. Complexity: O(1).
func (s *PositionSet) Len() int {
	return len(s.order)
}

// Clear removes all members; allocated capacity is retained so the set
// can be refilled without reallocating.
func (s *PositionSet) Clear() {
	clear(s.members)
	s.order = s.order[:0]
}

// Positions returns the members in insertion order. The returned slice
// is a copy; mutating it does not affect the set. Complexity: O(n).
func (s *PositionSet) Positions() []Position {
	out := make([]Position, len(s.order))
	copy(out, s.order)
	return out
}
