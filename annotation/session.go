package annotation

import (
	"context"

	"retinoscope/geometry"
)

// Hooks Callbacks the embedding UI registers on a session. All are optional.
type Hooks struct {
	// OnChange fires after any mutation of the set, with a fresh snapshot.
	OnChange func([]Annotation)
	// OnSelect fires after the selection changes; id is "" on deselect.
	OnSelect func(id string)
	// OnError fires for validation and sync failures the UI should surface.
	OnError func(error)
}

// Session One user's annotation session on one open image: the draw state
// machine, the in-memory set and the sync protocol behind a single surface.
// The embedding application owns its lifetime.
type Session struct {
	drafter *Drafter
	set     *Set
	syncer  *Syncer
	hooks   Hooks
}

// NewSession Create a session for (image, user) against the given store.
func NewSession(store Store, transform geometry.Transform, imageID, userEmail string, hooks Hooks) *Session {
	set := NewSet()
	return &Session{
		drafter: NewDrafter(transform),
		set:     set,
		syncer:  NewSyncer(store, set, imageID, userEmail),
		hooks:   hooks,
	}
}

// SetTransform Rebind the display transform after a zoom or viewport change.
func (s *Session) SetTransform(t geometry.Transform) {
	s.drafter.SetTransform(t)
}

// Annotations The current snapshot.
func (s *Session) Annotations() []Annotation {
	return s.set.Snapshot()
}

// Selected The selected annotation, if any.
func (s *Session) Selected() (Annotation, bool) {
	return s.set.Selected()
}

// PointerDown Forward a pointer-down to the draw state machine.
func (s *Session) PointerDown(p geometry.Point) {
	s.drafter.Begin(p)
}

// PointerMove Forward a pointer-move; returns the live rectangle for visual
// feedback when a draw is in progress.
func (s *Session) PointerMove(p geometry.Point) (geometry.Rect, bool) {
	return s.drafter.Update(p)
}

// PointerUp Finalize the draw. A valid rectangle is appended to the set and
// OnChange fires; a validation failure goes to OnError; a below-threshold
// drag does nothing.
func (s *Session) PointerUp(p geometry.Point, attrs Attributes) {
	ann, err := s.drafter.Finish(p, attrs)
	if err != nil {
		s.fail(err)
		return
	}
	if ann == nil {
		return
	}
	if err := s.set.Add(*ann); err != nil {
		s.fail(err)
		return
	}
	s.changed()
}

// Select Select one annotation by id.
func (s *Session) Select(id string) {
	s.set.Select(id)
	if s.hooks.OnSelect != nil {
		s.hooks.OnSelect(s.set.SelectedID())
	}
}

// Deselect Clear the selection.
func (s *Session) Deselect() {
	s.set.Deselect()
	if s.hooks.OnSelect != nil {
		s.hooks.OnSelect("")
	}
}

// UpdateField Apply a partial edit to one annotation.
func (s *Session) UpdateField(id string, patch Patch) {
	if err := s.set.UpdateField(id, patch); err != nil {
		s.fail(err)
		return
	}
	s.changed()
}

// Delete Remove one annotation remotely and locally.
func (s *Session) Delete(ctx context.Context, id string) {
	if err := s.syncer.DeleteOne(ctx, id); err != nil {
		s.fail(err)
		return
	}
	s.changed()
}

// Load Initial fetch of the user's persisted annotations.
func (s *Session) Load(ctx context.Context) {
	if err := s.syncer.Load(ctx); err != nil {
		s.fail(err)
		return
	}
	s.changed()
}

// Save Full-replace save of the user's annotations on this image.
func (s *Session) Save(ctx context.Context) {
	if err := s.syncer.Save(ctx); err != nil {
		s.fail(err)
		return
	}
	s.changed()
}

// Reset Discard local edits by refetching the persisted set.
func (s *Session) Reset(ctx context.Context) {
	s.Load(ctx)
}

func (s *Session) changed() {
	if s.hooks.OnChange != nil {
		s.hooks.OnChange(s.set.Snapshot())
	}
}

func (s *Session) fail(err error) {
	if s.hooks.OnError != nil {
		s.hooks.OnError(err)
	}
}
