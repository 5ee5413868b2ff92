package annotation

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Store The persisted annotation collection the engine reconciles against.
// Implementations are transport-agnostic; the reference one speaks HTTP/JSON.
// DeleteAnnotation is idempotent: deleting an id that no longer exists is not
// an error.
type Store interface {
	ListAnnotations(ctx context.Context, imageID, createdBy string) ([]Annotation, error)
	CreateAnnotation(ctx context.Context, a Annotation) (Annotation, error)
	DeleteAnnotation(ctx context.Context, id string) error
}

// Syncer Reconciles the in-memory set with the remote store for one
// (image, user) scope. Save is a full replace of the acting user's own
// records on that image; other users' annotations are untouched.
type Syncer struct {
	store     Store
	set       *Set
	imageID   string
	userEmail string
}

// NewSyncer Create a syncer for the given scope.
func NewSyncer(store Store, set *Set, imageID, userEmail string) *Syncer {
	return &Syncer{
		store:     store,
		set:       set,
		imageID:   imageID,
		userEmail: userEmail,
	}
}

// Set The local set this syncer reconciles.
func (s *Syncer) Set() *Set {
	return s.set
}

// Load Fetch the user's persisted annotations for the image and replace the
// local set with them. Used on initial entry and on explicit Reset. The local
// set is left unchanged on failure.
func (s *Syncer) Load(ctx context.Context) error {
	persisted, err := s.store.ListAnnotations(ctx, s.imageID, s.userEmail)
	if err != nil {
		return &SyncError{Op: "load", Err: err}
	}
	s.set.ReplaceAll(persisted)
	return nil
}

// Save Replace the user's persisted annotations for the image with the local
// set: fetch what is persisted, delete every record, then recreate one record
// per local annotation and reload the canonical copies. Deletes within one
// call run in parallel with no ordering among themselves but all settle
// before any create is issued. Not a diff; not transactional — a failure
// between the phases can leave the remote scope temporarily empty, and the
// local set stays untouched so the user can retry.
func (s *Syncer) Save(ctx context.Context) error {
	local := s.set.Snapshot()

	persisted, err := s.store.ListAnnotations(ctx, s.imageID, s.userEmail)
	if err != nil {
		return &SyncError{Op: "save", Err: err}
	}

	deletes, dctx := errgroup.WithContext(ctx)
	for _, old := range persisted {
		old := old
		deletes.Go(func() error {
			if err := s.store.DeleteAnnotation(dctx, old.ID); err != nil {
				return fmt.Errorf("delete %s: %w", old.ID, err)
			}
			return nil
		})
	}
	if err := deletes.Wait(); err != nil {
		return &SyncError{Op: "save", Err: err}
	}

	creates, cctx := errgroup.WithContext(ctx)
	for _, a := range local {
		a := a
		a.ImageID = s.imageID
		a.CreatedBy = s.userEmail
		creates.Go(func() error {
			if _, err := s.store.CreateAnnotation(cctx, a); err != nil {
				return fmt.Errorf("create %s: %w", a.ID, err)
			}
			return nil
		})
	}
	if err := creates.Wait(); err != nil {
		return &SyncError{Op: "save", Err: err}
	}

	log.Info(fmt.Sprintf("Saved %d annotations for %s on image %s", len(local), s.userEmail, s.imageID))
	return s.Load(ctx)
}

// DeleteOne Delete one persisted record, then drop it from the local set.
// Idempotent end to end: the store treats an unknown id as already deleted
// and the local removal is a no-op when absent.
func (s *Syncer) DeleteOne(ctx context.Context, id string) error {
	if err := s.store.DeleteAnnotation(ctx, id); err != nil {
		return &SyncError{Op: "delete", Err: err}
	}
	s.set.Remove(id)
	return nil
}
