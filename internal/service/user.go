package service

import (
	"context"
	"fmt"

	"github.com/alphav1/to-do-list/internal/domain"
)

// UserService implements user lookups and mutations against the shared
// document. Every operation re-reads the document through the store; there
// is no cross-operation caching.
type UserService struct {
	store domain.Store
}

// NewUserService creates a new UserService.
func NewUserService(store domain.Store) *UserService {
	return &UserService{store: store}
}

// List returns a snapshot of all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := s.store.View(ctx, func(doc *domain.Document) error {
		users = append(users, doc.Users...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// FindByLogin returns the user with the given login, or nil if absent.
func (s *UserService) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	return s.find(ctx, func(doc *domain.Document) *domain.User {
		return doc.UserByLogin(login)
	})
}

// FindByID returns the user with the given id, or nil if absent.
func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.find(ctx, func(doc *domain.Document) *domain.User {
		return doc.UserByID(id)
	})
}

func (s *UserService) find(ctx context.Context, match func(*domain.Document) *domain.User) (*domain.User, error) {
	var found *domain.User
	err := s.store.View(ctx, func(doc *domain.Document) error {
		if u := match(doc); u != nil {
			cp := *u
			found = &cp
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Create adds a new user. The login must not be taken.
func (s *UserService) Create(ctx context.Context, name, email, login string) (*domain.User, error) {
	var created domain.User
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		if doc.UserByLogin(login) != nil {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateLogin, login)
		}
		id, err := nextUserID(doc)
		if err != nil {
			return err
		}
		created = domain.User{ID: id, Name: name, Email: email, Login: login}
		doc.Users = append(doc.Users, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies a partial update to the user with the given login. Nil (or
// empty) name and email are left untouched; login itself is immutable.
func (s *UserService) Update(ctx context.Context, login string, name, email *string) (*domain.User, error) {
	var updated domain.User
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		u := doc.UserByLogin(login)
		if u == nil {
			return fmt.Errorf("%w: login %q", domain.ErrUserNotFound, login)
		}
		if name != nil && *name != "" {
			u.Name = *name
		}
		if email != nil && *email != "" {
			u.Email = *email
		}
		updated = *u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the user with the given login and cascades to every todo
// owned by that user, so no todo is ever left referencing a missing user.
func (s *UserService) Delete(ctx context.Context, login string) (bool, error) {
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		u := doc.UserByLogin(login)
		if u == nil {
			return fmt.Errorf("%w: login %q", domain.ErrUserNotFound, login)
		}
		userID := u.ID

		todos := make([]domain.Todo, 0, len(doc.Todos))
		for _, t := range doc.Todos {
			if t.UserID != userID {
				todos = append(todos, t)
			}
		}
		doc.Todos = todos

		users := make([]domain.User, 0, len(doc.Users)-1)
		for _, x := range doc.Users {
			if x.Login != login {
				users = append(users, x)
			}
		}
		doc.Users = users
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Todos returns the todos owned by the given user id. The result is a fresh
// filter over the current collection, not a cached back-reference.
func (s *UserService) Todos(ctx context.Context, userID string) ([]domain.Todo, error) {
	var todos []domain.Todo
	err := s.store.View(ctx, func(doc *domain.Document) error {
		for _, t := range doc.Todos {
			if t.UserID == userID {
				todos = append(todos, t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return todos, nil
}
