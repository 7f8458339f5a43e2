package item

// Slot holds at most one non-empty stack. The zero Slot is empty.
// Slots are owned by exactly one Inventory or Building and are always
// mutated in place; stacks move between slots by value.
type Slot struct {
	stack Stack
}

// Stack returns the slot's content and whether it holds anything.
func (s *Slot) Stack() (Stack, bool) {
	if s.stack.Empty() {
		return Stack{}, false
	}
	return s.stack, true
}

// Empty reports whether the slot holds nothing.
func (s *Slot) Empty() bool { return s.stack.Empty() }

// Kind returns the kind held, or 0 when empty.
func (s *Slot) Kind() Kind {
	if s.Empty() {
		return 0
	}
	return s.stack.Kind
}

// Count returns the number of units held.
func (s *Slot) Count() int {
	if s.Empty() {
		return 0
	}
	return s.stack.Count
}

// Take removes and returns the slot's content. ok is false for an empty slot.
func (s *Slot) Take() (st Stack, ok bool) {
	st, ok = s.Stack()
	s.stack = Stack{}
	return st, ok
}

// Place puts st into an empty slot. It reports false and changes nothing when
// the slot is occupied, st is empty, or st exceeds the stack cap.
func (s *Slot) Place(st Stack) bool {
	if !s.Empty() || st.Empty() || st.Count > st.Kind.MaxStack() {
		return false
	}
	s.stack = st
	return true
}

// Merge moves as much of st as fits into the slot and returns what is left.
// An empty slot takes the stack up to the cap; a slot holding the same kind
// is topped up to the cap; a slot holding another kind takes nothing.
func (s *Slot) Merge(st Stack) (remainder Stack) {
	if st.Empty() {
		return Stack{}
	}
	if !s.Empty() && s.stack.Kind != st.Kind {
		return st
	}
	if s.Empty() {
		s.stack = Stack{Kind: st.Kind}
	}
	n := min(st.Count, s.stack.Room())
	s.stack.Count += n
	st.Count -= n
	if st.Empty() {
		return Stack{}
	}
	return st
}

// Remove takes up to n units out of the slot and returns how many were
// removed. The slot becomes empty when its count reaches zero.
func (s *Slot) Remove(n int) int {
	if n <= 0 || s.Empty() {
		return 0
	}
	n = min(n, s.stack.Count)
	s.stack.Count -= n
	if s.stack.Count == 0 {
		s.stack = Stack{}
	}
	return n
}

// Swap exchanges the slot's content with st and returns the previous content.
// An over-cap st is refused and handed straight back.
func (s *Slot) Swap(st Stack) Stack {
	if st.Count > st.Kind.MaxStack() {
		return st
	}
	prev := s.stack
	if st.Empty() {
		st = Stack{}
	}
	s.stack = st
	if prev.Empty() {
		return Stack{}
	}
	return prev
}
