package service

import (
	"context"
	"fmt"

	"github.com/alphav1/to-do-list/internal/domain"
)

// TodoService implements todo lookups and mutations. Todos are addressed by
// (title, owner login): titles are unique per owner, not globally.
type TodoService struct {
	store domain.Store
}

// NewTodoService creates a new TodoService.
func NewTodoService(store domain.Store) *TodoService {
	return &TodoService{store: store}
}

// List returns a snapshot of all todos.
func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	var todos []domain.Todo
	err := s.store.View(ctx, func(doc *domain.Document) error {
		todos = append(todos, doc.Todos...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// FindByID returns the todo with the given id, or nil if absent.
func (s *TodoService) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	var found *domain.Todo
	err := s.store.View(ctx, func(doc *domain.Document) error {
		if t := doc.TodoByID(id); t != nil {
			cp := *t
			found = &cp
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// FindByTitle returns the todo with the given title owned by the user with
// the given login, or nil if the user has no such todo. An unresolved login
// is an error, not an absent result.
func (s *TodoService) FindByTitle(ctx context.Context, title, userLogin string) (*domain.Todo, error) {
	var found *domain.Todo
	err := s.store.View(ctx, func(doc *domain.Document) error {
		user := doc.UserByLogin(userLogin)
		if user == nil {
			return fmt.Errorf("%w: login %q", domain.ErrUserNotFound, userLogin)
		}
		if t := doc.UserTodoByTitle(title, user.ID); t != nil {
			cp := *t
			found = &cp
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Create adds a new todo for the user with the given login. The title must
// not already be taken by another todo of the same user.
func (s *TodoService) Create(ctx context.Context, title string, completed bool, userLogin string) (*domain.Todo, error) {
	var created domain.Todo
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		user := doc.UserByLogin(userLogin)
		if user == nil {
			return fmt.Errorf("%w: login %q", domain.ErrUserNotFound, userLogin)
		}
		if doc.UserTodoByTitle(title, user.ID) != nil {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateTitle, title)
		}
		id, err := nextTodoID(doc)
		if err != nil {
			return err
		}
		created = domain.Todo{ID: id, Title: title, Completed: completed, UserID: user.ID}
		doc.Todos = append(doc.Todos, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies a partial update to the todo matching (title, login).
// A nil (or empty) newTitle and a nil completed are left untouched. A new
// title that collides with another todo of the same user is rejected.
func (s *TodoService) Update(ctx context.Context, title string, newTitle *string, completed *bool, userLogin string) (*domain.Todo, error) {
	var updated domain.Todo
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		user := doc.UserByLogin(userLogin)
		if user == nil {
			return fmt.Errorf("%w: login %q", domain.ErrUserNotFound, userLogin)
		}
		todo := doc.UserTodoByTitle(title, user.ID)
		if todo == nil {
			return fmt.Errorf("%w: title %q for user %q", domain.ErrTodoNotFound, title, userLogin)
		}
		if newTitle != nil && *newTitle != "" {
			if other := doc.UserTodoByTitle(*newTitle, user.ID); other != nil && other.ID != todo.ID {
				return fmt.Errorf("%w: %q", domain.ErrDuplicateTitle, *newTitle)
			}
			todo.Title = *newTitle
		}
		if completed != nil {
			todo.Completed = *completed
		}
		updated = *todo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the todo matching (title, login). Reports whether anything
// was removed; at most one todo can match.
func (s *TodoService) Delete(ctx context.Context, title, userLogin string) (bool, error) {
	var removed bool
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		user := doc.UserByLogin(userLogin)
		if user == nil {
			return fmt.Errorf("%w: login %q", domain.ErrUserNotFound, userLogin)
		}
		todos := make([]domain.Todo, 0, len(doc.Todos))
		for _, t := range doc.Todos {
			if t.Title == title && t.UserID == user.ID {
				removed = true
				continue
			}
			todos = append(todos, t)
		}
		doc.Todos = todos
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// Toggle flips the completed flag of the todo matching (title, login) and
// returns the updated todo.
func (s *TodoService) Toggle(ctx context.Context, title, userLogin string) (*domain.Todo, error) {
	var updated domain.Todo
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		user := doc.UserByLogin(userLogin)
		if user == nil {
			return fmt.Errorf("%w: login %q", domain.ErrUserNotFound, userLogin)
		}
		todo := doc.UserTodoByTitle(title, user.ID)
		if todo == nil {
			return fmt.Errorf("%w: title %q for user %q", domain.ErrTodoNotFound, title, userLogin)
		}
		todo.Completed = !todo.Completed
		updated = *todo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Owner resolves a todo's user_id to its owning user. Returns nil for a
// dangling reference, which the cascade on user deletion should make
// impossible.
func (s *TodoService) Owner(ctx context.Context, userID string) (*domain.User, error) {
	var owner *domain.User
	err := s.store.View(ctx, func(doc *domain.Document) error {
		if u := doc.UserByID(userID); u != nil {
			cp := *u
			owner = &cp
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return owner, nil
}
