package store

import "todocards/internal/model"

// Seed is the pair of records every session starts with.
var Seed = []struct{ Title, Project string }{
	{Title: "Clean up files", Project: "Office Chores"},
	{Title: "Walk dog", Project: "Life Chores"},
}

// Store is the in-memory, ordered record store.
//
// It has a single owner and no locking; all mutation goes through Add, Delete
// and Update. Each effective mutation installs a new backing slice, so a
// snapshot returned by Tasks never changes afterwards.
type Store struct {
	tasks   []model.Task
	newID   func() string
	version uint64

	// issued holds every id handed out, including deleted ones.
	issued map[string]struct{}
}

type Option func(*Store)

// WithIDFunc replaces the id generator. Ids it already produced for this
// store, live or deleted, are discarded and it is asked again.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{newID: newTaskID, issued: map[string]struct{}{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeeded returns a store holding the Seed records.
func NewSeeded(opts ...Option) *Store {
	s := New(opts...)
	for _, r := range Seed {
		s.Add(r.Title, r.Project)
	}
	return s
}

// Add appends a new record and returns it. Title and project are stored as-is.
func (s *Store) Add(title, project string) model.Task {
	t := model.Task{
		ID:      freshID(s.newID, s.issued),
		Title:   title,
		Project: project,
	}
	s.issued[t.ID] = struct{}{}
	next := make([]model.Task, 0, len(s.tasks)+1)
	next = append(next, s.tasks...)
	next = append(next, t)
	s.install(next)
	return t
}

// Delete removes the record with the given id. It reports whether a record
// was removed; a missing id leaves the store untouched.
func (s *Store) Delete(id string) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	next := make([]model.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:idx]...)
	next = append(next, s.tasks[idx+1:]...)
	s.install(next)
	return true
}

// Update replaces title and project of the record with the given id, keeping
// its id and position. It reports whether a record matched.
func (s *Store) Update(id, title, project string) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	next := make([]model.Task, len(s.tasks))
	copy(next, s.tasks)
	next[idx].Title = title
	next[idx].Project = project
	s.install(next)
	return true
}

// Tasks returns the current snapshot in store order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) Find(id string) (model.Task, bool) {
	if idx := s.index(id); idx >= 0 {
		return s.tasks[idx], true
	}
	return model.Task{}, false
}

// Version counts effective mutations since the store was created.
func (s *Store) Version() uint64 { return s.version }

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) install(next []model.Task) {
	s.tasks = next
	s.version++
}
