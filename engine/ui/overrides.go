package ui

// SizeOverride remembers a user-driven explicit size for a stable
// panel ID. Written by divider drags, read back by BeginResizable on
// every later frame, so a manual resize sticks even though the tree is
// rebuilt from scratch each frame.
type SizeOverride struct {
	ID   ID
	W, H int
}

// OverrideStore is a fixed-capacity table of size overrides. Entries
// never expire; when the table is full new IDs are declined.
type OverrideStore struct {
	entries []SizeOverride
}

// Get looks up the override for id.
func (s *OverrideStore) Get(id ID) (SizeOverride, bool) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return s.entries[i], true
		}
	}
	return SizeOverride{}, false
}

// Set records or updates an override. Reports false when the store is
// full and id is not already present.
func (s *OverrideStore) Set(id ID, w, h int) bool {
	if id == 0 {
		return false
	}
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].W = w
			s.entries[i].H = h
			return true
		}
	}
	if len(s.entries) == cap(s.entries) {
		return false
	}
	s.entries = append(s.entries, SizeOverride{ID: id, W: w, H: h})
	return true
}

// Len reports how many overrides are stored.
func (s *OverrideStore) Len() int { return len(s.entries) }

// Reset drops all overrides, keeping capacity. Panels fall back to
// their declared defaults on the next frame.
func (s *OverrideStore) Reset() { s.entries = s.entries[:0] }
