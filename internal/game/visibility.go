package game

// VisibilityState holds the independent reasons that keep an actor hidden or
// frozen. Detectable and CanMove are derived from set emptiness, so several
// requesters can overlap without clobbering each other.
// The zero value is ready to use.
type VisibilityState struct {
	movementLocks map[Reason]struct{}
	hiddenReasons map[Reason]struct{}
}

// CanMove is true iff no movement lock is active.
func (s *VisibilityState) CanMove() bool {
	return len(s.movementLocks) == 0
}

// Detectable is true iff no hidden reason is active.
func (s *VisibilityState) Detectable() bool {
	return len(s.hiddenReasons) == 0
}

// AddMovementLock inserts r and reports whether it was newly added.
func (s *VisibilityState) AddMovementLock(r Reason) bool {
	return insert(&s.movementLocks, r)
}

// RemoveMovementLock removes r and reports whether it was present.
func (s *VisibilityState) RemoveMovementLock(r Reason) bool {
	return remove(s.movementLocks, r)
}

// SetHidden adds or removes r from the hidden reasons and reports whether
// the set changed.
func (s *VisibilityState) SetHidden(r Reason, hidden bool) bool {
	if hidden {
		return insert(&s.hiddenReasons, r)
	}
	return remove(s.hiddenReasons, r)
}

// IsHiddenBy reports whether r is one of the active hidden reasons.
func (s *VisibilityState) IsHiddenBy(r Reason) bool {
	_, ok := s.hiddenReasons[r]
	return ok
}

// IsLockedBy reports whether r is one of the active movement locks.
func (s *VisibilityState) IsLockedBy(r Reason) bool {
	_, ok := s.movementLocks[r]
	return ok
}

// LockCount returns the number of active movement locks.
func (s *VisibilityState) LockCount() int {
	return len(s.movementLocks)
}

// HiddenCount returns the number of active hidden reasons.
func (s *VisibilityState) HiddenCount() int {
	return len(s.hiddenReasons)
}

func insert(set *map[Reason]struct{}, r Reason) bool {
	if !r.Valid() {
		return false
	}
	if *set == nil {
		*set = make(map[Reason]struct{})
	}
	if _, ok := (*set)[r]; ok {
		return false
	}
	(*set)[r] = struct{}{}
	return true
}

func remove(set map[Reason]struct{}, r Reason) bool {
	if _, ok := set[r]; !ok {
		return false
	}
	delete(set, r)
	return true
}
