// Package notes implements CRUD over the note collection on top of a
// storage gateway. The repository owns the collection invariants:
// most-recently-added first, UpdatedAt refreshed on every mutation.
package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/boltnotes/bolt-notes/internal/model"
	"github.com/boltnotes/bolt-notes/internal/storage"
)

// ErrNoteNotFound is returned by Get and the task operations when no
// note has the given id.
var ErrNoteNotFound = errors.New("note not found")

// ErrTaskNotFound is returned by task operations when the note exists
// but the task id does not.
var ErrTaskNotFound = errors.New("task not found")

// Repository performs read-modify-write over the whole collection for
// every mutation. Fine for a personal dataset; callers serialize
// mutations themselves, there is no internal locking.
type Repository struct {
	gw storage.Gateway
}

// NewRepository wraps a gateway.
func NewRepository(gw storage.Gateway) *Repository {
	return &Repository{gw: gw}
}

// Load returns the stored collection plus a recovered flag: true when
// an empty collection was substituted for a corrupt blob or a failed
// read. A never-written slot is a normal empty state, not recovery.
// Either way the caller gets a usable collection, never an error.
func (r *Repository) Load(ctx context.Context) (collection []model.Note, recovered bool) {
	data, err := r.gw.Read(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return []model.Note{}, false
	}
	if err != nil {
		return []model.Note{}, true
	}
	collection, err = decode(data)
	if err != nil {
		return []model.Note{}, true
	}
	if collection == nil {
		collection = []model.Note{}
	}
	return collection, false
}

// List returns the full collection in stored order, newest first.
func (r *Repository) List(ctx context.Context) []model.Note {
	collection, _ := r.Load(ctx)
	return collection
}

// Get returns the note with the given id.
func (r *Repository) Get(ctx context.Context, id string) (model.Note, error) {
	for _, n := range r.List(ctx) {
		if n.ID == id {
			return n, nil
		}
	}
	return model.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
}

// Add prepends the note and persists the collection. Ids are not
// checked for collision; callers mint fresh ones.
func (r *Repository) Add(ctx context.Context, note model.Note) error {
	collection := r.List(ctx)
	collection = append([]model.Note{note}, collection...)
	return r.save(ctx, collection)
}

// Update replaces the stored note with a matching id. Silent no-op
// when no note matches. The caller refreshes UpdatedAt first.
func (r *Repository) Update(ctx context.Context, note model.Note) error {
	collection := r.List(ctx)
	for i := range collection {
		if collection[i].ID == note.ID {
			collection[i] = note
			return r.save(ctx, collection)
		}
	}
	return nil
}

// Delete removes the note with the given id. No-op when absent.
func (r *Repository) Delete(ctx context.Context, id string) error {
	collection := r.List(ctx)
	kept := collection[:0]
	for _, n := range collection {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(collection) {
		return nil
	}
	return r.save(ctx, kept)
}

// Rename sets the note title and refreshes UpdatedAt.
func (r *Repository) Rename(ctx context.Context, id, title string) error {
	return r.mutate(ctx, id, func(n *model.Note) error {
		n.Title = title
		return nil
	})
}

// AddTask appends an unchecked task to the note.
func (r *Repository) AddTask(ctx context.Context, id, text string) error {
	return r.mutate(ctx, id, func(n *model.Note) error {
		n.Tasks = append(n.Tasks, model.NewTask(text))
		return nil
	})
}

// RemoveTask deletes a task from the note.
func (r *Repository) RemoveTask(ctx context.Context, id, taskID string) error {
	return r.mutate(ctx, id, func(n *model.Note) error {
		for i, t := range n.Tasks {
			if t.ID == taskID {
				n.Tasks = append(n.Tasks[:i], n.Tasks[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	})
}

// EditTask replaces a task's text.
func (r *Repository) EditTask(ctx context.Context, id, taskID, text string) error {
	return r.mutate(ctx, id, func(n *model.Note) error {
		for i := range n.Tasks {
			if n.Tasks[i].ID == taskID {
				n.Tasks[i].Text = text
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	})
}

// ToggleTask flips a task's completion state.
func (r *Repository) ToggleTask(ctx context.Context, id, taskID string) error {
	return r.mutate(ctx, id, func(n *model.Note) error {
		for i := range n.Tasks {
			if n.Tasks[i].ID == taskID {
				n.Tasks[i].Completed = !n.Tasks[i].Completed
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	})
}

// Import replaces the whole collection with the given notes. Used by
// the import command; order is kept as given.
func (r *Repository) Import(ctx context.Context, collection []model.Note) error {
	return r.save(ctx, collection)
}

// mutate applies fn to the note with the given id, refreshes
// UpdatedAt and persists. Unlike Update, a missing id is an error:
// these operations are always user-directed at a specific note.
func (r *Repository) mutate(ctx context.Context, id string, fn func(*model.Note) error) error {
	collection := r.List(ctx)
	for i := range collection {
		if collection[i].ID == id {
			if err := fn(&collection[i]); err != nil {
				return err
			}
			collection[i].Touch()
			return r.save(ctx, collection)
		}
	}
	return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
}

func (r *Repository) save(ctx context.Context, collection []model.Note) error {
	data, err := encode(collection)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := r.gw.Write(ctx, data); err != nil {
		return fmt.Errorf("persist collection: %w", err)
	}
	return nil
}
