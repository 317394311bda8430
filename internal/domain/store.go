package domain

import "context"

// Document is the entire persisted state: two ordered collections read and
// written wholesale. Field names must round-trip exactly against existing
// db.json files.
type Document struct {
	Users []User `json:"users"`
	Todos []Todo `json:"todos"`
}

// Store owns the canonical persisted document. Each implementation re-reads
// the backing medium on every call so callers always observe the latest
// persisted state.
//
// View runs fn with a freshly loaded document; the document must not be
// mutated. Update runs fn under an exclusive lock and persists the document
// afterwards; if fn returns an error nothing is written. Both return any
// load/save failure wrapped in ErrStorage.
type Store interface {
	View(ctx context.Context, fn func(doc *Document) error) error
	Update(ctx context.Context, fn func(doc *Document) error) error
}

// UserByLogin returns the user with the given login, or nil.
func (d *Document) UserByLogin(login string) *User {
	for i := range d.Users {
		if d.Users[i].Login == login {
			return &d.Users[i]
		}
	}
	return nil
}

// UserByID returns the user with the given id, or nil.
func (d *Document) UserByID(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// TodoByID returns the todo with the given id, or nil.
func (d *Document) TodoByID(id string) *Todo {
	for i := range d.Todos {
		if d.Todos[i].ID == id {
			return &d.Todos[i]
		}
	}
	return nil
}

// UserTodoByTitle returns the todo with the given title owned by userID,
// or nil. At most one todo can match given the per-user title uniqueness
// invariant.
func (d *Document) UserTodoByTitle(title, userID string) *Todo {
	for i := range d.Todos {
		if d.Todos[i].Title == title && d.Todos[i].UserID == userID {
			return &d.Todos[i]
		}
	}
	return nil
}
