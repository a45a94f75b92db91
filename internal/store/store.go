// Package store holds the in-memory entity collections. The store is the
// exclusive owner of projects, activities and quotations: every mutation
// goes through its typed operations, which persist the touched collection
// to the persistence collaborator after each change.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/crtic/ptc-manager/internal/domain/activity"
	"github.com/crtic/ptc-manager/internal/domain/project"
	"github.com/crtic/ptc-manager/internal/domain/quotation"
	"github.com/crtic/ptc-manager/internal/repository"
	"github.com/crtic/ptc-manager/internal/seed"
)

// Persistence keys, one per collection.
const (
	KeyProjects   = "ptc_projects"
	KeyActivities = "ptc_activities"
	KeyQuotations = "ptc_quotations"
)

// Store owns the three entity collections.
type Store struct {
	mu          sync.Mutex
	collections repository.Collections
	logger      *slog.Logger

	projects   []project.Project
	activities []activity.Activity
	quotations []quotation.Quotation
}

// New creates an empty store backed by the given persistence collaborator.
func New(collections repository.Collections, logger *slog.Logger) *Store {
	return &Store{collections: collections, logger: logger}
}

// Load restores the collections from persistence, falling back to the seed
// dataset for any collection that was never saved. Every loaded project is
// normalized so the model invariants hold even for data written by a prior
// schema version.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	if err := loadCollection(ctx, s.collections, KeyProjects, &s.projects, func() []project.Project {
		return seed.Projects(now)
	}); err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}
	for i := range s.projects {
		project.Normalize(&s.projects[i], now)
	}

	if err := loadCollection(ctx, s.collections, KeyActivities, &s.activities, func() []activity.Activity {
		return seed.Activities(now)
	}); err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}

	if err := loadCollection(ctx, s.collections, KeyQuotations, &s.quotations, func() []quotation.Quotation {
		return seed.Quotations(now)
	}); err != nil {
		return fmt.Errorf("loading quotations: %w", err)
	}

	return nil
}

func loadCollection[T any](ctx context.Context, collections repository.Collections, key string, dst *[]T, fallback func() []T) error {
	blob, err := collections.Load(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		*dst = fallback()
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(blob, dst)
}

// persist saves one collection. An empty collection is never persisted, so
// a transient empty state can't clobber previously saved data. Failures are
// logged and swallowed: in-memory state stays authoritative for the
// session.
func (s *Store) persist(ctx context.Context, key string, collection any, size int) {
	if size == 0 {
		return
	}
	blob, err := json.Marshal(collection)
	if err != nil {
		s.warn("marshal collection", key, err)
		return
	}
	if err := s.collections.Save(ctx, key, blob); err != nil {
		s.warn("save collection", key, err)
	}
}

func (s *Store) warn(op, key string, err error) {
	if s.logger != nil {
		s.logger.Warn("persistence failure", "op", op, "key", key, "error", err)
	}
}

// InsertProject prepends a project and persists the collection.
func (s *Store) InsertProject(ctx context.Context, p *project.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = append([]project.Project{*p}, s.projects...)
	s.persist(ctx, KeyProjects, s.projects, len(s.projects))
	return nil
}

// GetProject returns a copy of the project with the given ID.
func (s *Store) GetProject(ctx context.Context, id string) (*project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, project.ErrNotFound
}

// UpdateProject replaces the stored project with the same ID.
func (s *Store) UpdateProject(ctx context.Context, p *project.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = *p
			s.persist(ctx, KeyProjects, s.projects, len(s.projects))
			return nil
		}
	}
	return project.ErrNotFound
}

// DeleteProject removes a project. Activity entries referencing it are not
// touched; their weak references are allowed to dangle.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			s.persist(ctx, KeyProjects, s.projects, len(s.projects))
			return nil
		}
	}
	return project.ErrNotFound
}

// ListProjects returns a copy of the project collection, most recent first.
func (s *Store) ListProjects(ctx context.Context) ([]project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]project.Project, len(s.projects))
	copy(out, s.projects)
	return out, nil
}

// ProjectName resolves a project ID to its name, or repository.ErrNotFound.
func (s *Store) ProjectName(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			return s.projects[i].Name, nil
		}
	}
	return "", repository.ErrNotFound
}

// PrependActivity appends an entry at the head of the activity log. The log
// is append-only: entries are never edited or removed.
func (s *Store) PrependActivity(ctx context.Context, entry *activity.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = append([]activity.Activity{*entry}, s.activities...)
	s.persist(ctx, KeyActivities, s.activities, len(s.activities))
	return nil
}

// ListActivities returns a copy of the activity log, most recent first.
func (s *Store) ListActivities(ctx context.Context) ([]activity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]activity.Activity, len(s.activities))
	copy(out, s.activities)
	return out, nil
}

// InsertQuotation prepends a quotation and persists the collection.
func (s *Store) InsertQuotation(ctx context.Context, q *quotation.Quotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quotations = append([]quotation.Quotation{*q}, s.quotations...)
	s.persist(ctx, KeyQuotations, s.quotations, len(s.quotations))
	return nil
}

// ListQuotations returns a copy of the quotation collection.
func (s *Store) ListQuotations(ctx context.Context) ([]quotation.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]quotation.Quotation, len(s.quotations))
	copy(out, s.quotations)
	return out, nil
}
