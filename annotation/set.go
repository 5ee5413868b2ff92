package annotation

import (
	"sync"
)

// Patch A partial update for one annotation. Nil fields are left untouched.
// Changing the severity recomputes the derived color; a color can never be
// patched directly.
type Patch struct {
	Type          *Category
	Severity      *Severity
	OtherDiseases *string
	X             *float64
	Y             *float64
	Width         *float64
	Height        *float64
}

func (p Patch) empty() bool {
	return p.Type == nil && p.Severity == nil && p.OtherDiseases == nil &&
		p.X == nil && p.Y == nil && p.Width == nil && p.Height == nil
}

// Set The in-memory annotation collection for the currently open image.
// Insertion order defines list-display order and ids are unique within the
// set. All operations are synchronous; Snapshot returns a copy so callers
// never observe partial state.
type Set struct {
	mu          sync.RWMutex
	annotations []Annotation
	selectedID  string
}

// NewSet Create an empty set.
func NewSet() *Set {
	return &Set{}
}

// Len Number of annotations in the set.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.annotations)
}

// Snapshot A copy of the annotations in insertion order.
func (s *Set) Snapshot() []Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Annotation, len(s.annotations))
	copy(out, s.annotations)
	return out
}

// Add Append an annotation. Returns ErrDuplicateID if the id is already
// present; the generation scheme should make that unreachable, this is a
// defensive check only.
func (s *Set) Add(a Annotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(a.ID) >= 0 {
		return ErrDuplicateID
	}
	s.annotations = append(s.annotations, a)
	return nil
}

// UpdateField Merge a partial update into the annotation with the given id.
// An empty patch is a no-op. Returns ErrNotFound when the id is absent.
func (s *Set) UpdateField(id string, patch Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	if patch.empty() {
		return nil
	}
	a := s.annotations[i]
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Severity != nil {
		a.Severity = *patch.Severity
		a.Color = ColorFor(a.Severity)
	}
	if patch.OtherDiseases != nil {
		a.OtherDiseases = *patch.OtherDiseases
	}
	if patch.X != nil {
		a.X = *patch.X
	}
	if patch.Y != nil {
		a.Y = *patch.Y
	}
	if patch.Width != nil {
		a.Width = *patch.Width
	}
	if patch.Height != nil {
		a.Height = *patch.Height
	}
	s.annotations[i] = a
	return nil
}

// Remove Delete the annotation with the given id. Removing an absent id is a
// no-op. Clears the selection when the selected annotation is removed.
func (s *Set) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.annotations = append(s.annotations[:i], s.annotations[i+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
}

// ReplaceAll Atomically swap the whole set, e.g. after a remote refetch.
// The selection is cleared when the selected id is no longer present.
func (s *Set) ReplaceAll(list []Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.annotations = make([]Annotation, len(list))
	copy(s.annotations, list)
	if s.selectedID != "" && s.indexOf(s.selectedID) < 0 {
		s.selectedID = ""
	}
}

// Select Mark the annotation with the given id as selected. Selecting an
// absent id is a no-op.
func (s *Set) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(id) < 0 {
		return
	}
	s.selectedID = id
}

// Deselect Clear the selection.
func (s *Set) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
}

// Selected The currently selected annotation, if any.
func (s *Set) Selected() (Annotation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(s.selectedID)
	if i < 0 {
		return Annotation{}, false
	}
	return s.annotations[i], true
}

// SelectedID The id of the selected annotation, or "".
func (s *Set) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// Get Look up one annotation by id.
func (s *Set) Get(id string) (Annotation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return Annotation{}, false
	}
	return s.annotations[i], true
}

// indexOf Caller must hold the lock. Returns -1 for "" or an unknown id.
func (s *Set) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.annotations {
		if s.annotations[i].ID == id {
			return i
		}
	}
	return -1
}
