package handler

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/alphav1/to-do-list/internal/domain"
	"github.com/alphav1/to-do-list/internal/service"
)

// NewSchema builds the executable GraphQL schema over the user and todo
// services. The facade only maps operations and field resolution onto the
// services; every integrity rule lives below it.
func NewSchema(users *service.UserService, todos *service.TodoService) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.String},
			"email": &graphql.Field{Type: graphql.String},
			"login": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	todoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ToDoItem",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"completed": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	// The two relations are added after both types exist to break the cycle.
	// Each resolution is a fresh read over the current document.
	userType.AddFieldConfig("todos", &graphql.Field{
		Type: graphql.NewList(todoType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u, ok := userSource(p.Source)
			if !ok {
				return nil, nil
			}
			return users.Todos(p.Context, u.ID)
		},
	})
	todoType.AddFieldConfig("user", &graphql.Field{
		Type: userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			t, ok := todoSource(p.Source)
			if !ok {
				return nil, nil
			}
			owner, err := todos.Owner(p.Context, t.UserID)
			if err != nil {
				return nil, err
			}
			if owner == nil {
				return nil, nil
			}
			return owner, nil
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"demo": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Witaj, GraphQL działa!", nil
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewList(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return users.List(p.Context)
				},
			},
			"todos": &graphql.Field{
				Type: graphql.NewList(todoType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return todos.List(p.Context)
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"login": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := users.FindByLogin(p.Context, stringArg(p, "login"))
					if err != nil || u == nil {
						return nil, err
					}
					return u, nil
				},
			},
			"todo": &graphql.Field{
				Type: todoType,
				Args: graphql.FieldConfigArgument{
					"title":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"userLogin": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, err := todos.FindByTitle(p.Context, stringArg(p, "title"), stringArg(p, "userLogin"))
					if err != nil || t == nil {
						return nil, err
					}
					return t, nil
				},
			},
			"userById": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := users.FindByID(p.Context, stringArg(p, "id"))
					if err != nil || u == nil {
						return nil, err
					}
					return u, nil
				},
			},
			"todoById": &graphql.Field{
				Type: todoType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, err := todos.FindByID(p.Context, stringArg(p, "id"))
					if err != nil || t == nil {
						return nil, err
					}
					return t, nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createTodo": &graphql.Field{
				Type: todoType,
				Args: graphql.FieldConfigArgument{
					"title":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"completed": &graphql.ArgumentConfig{Type: graphql.Boolean},
					"userLogin": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					login, err := requireLogin(p, "userLogin", "create a todo")
					if err != nil {
						return nil, err
					}
					completed := false
					if v, ok := p.Args["completed"].(bool); ok {
						completed = v
					}
					return todos.Create(p.Context, stringArg(p, "title"), completed, login)
				},
			},
			"updateTodo": &graphql.Field{
				Type: todoType,
				Args: graphql.FieldConfigArgument{
					"title":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"newTitle":  &graphql.ArgumentConfig{Type: graphql.String},
					"completed": &graphql.ArgumentConfig{Type: graphql.Boolean},
					"userLogin": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					login, err := requireLogin(p, "userLogin", "update a specific todo")
					if err != nil {
						return nil, err
					}
					return todos.Update(p.Context, stringArg(p, "title"),
						optionalString(p, "newTitle"), optionalBool(p, "completed"), login)
				},
			},
			"deleteTodo": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"title":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"userLogin": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					login, err := requireLogin(p, "userLogin", "delete a specific todo")
					if err != nil {
						return nil, err
					}
					return todos.Delete(p.Context, stringArg(p, "title"), login)
				},
			},
			"toggleTodoCompleted": &graphql.Field{
				Type: todoType,
				Args: graphql.FieldConfigArgument{
					"title":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"userLogin": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					login, err := requireLogin(p, "userLogin", "toggle the todo")
					if err != nil {
						return nil, err
					}
					return todos.Toggle(p.Context, stringArg(p, "title"), login)
				},
			},
			"createUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"login": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return users.Create(p.Context, stringArg(p, "name"), stringArg(p, "email"), stringArg(p, "login"))
				},
			},
			"updateUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"login": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":  &graphql.ArgumentConfig{Type: graphql.String},
					"email": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					login, err := requireLogin(p, "login", "update a user")
					if err != nil {
						return nil, err
					}
					return users.Update(p.Context, login, optionalString(p, "name"), optionalString(p, "email"))
				},
			},
			"deleteUser": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"login": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					login, err := requireLogin(p, "login", "delete a user")
					if err != nil {
						return nil, err
					}
					return users.Delete(p.Context, login)
				},
			},
			"getUserByLogin": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"login": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := users.FindByLogin(p.Context, stringArg(p, "login"))
					if err != nil || u == nil {
						return nil, err
					}
					return u, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// userSource and todoSource normalize resolver sources: list resolvers hand
// out values, single-object resolvers hand out pointers.
func userSource(src interface{}) (domain.User, bool) {
	switch u := src.(type) {
	case domain.User:
		return u, true
	case *domain.User:
		if u != nil {
			return *u, true
		}
	}
	return domain.User{}, false
}

func todoSource(src interface{}) (domain.Todo, bool) {
	switch t := src.(type) {
	case domain.Todo:
		return t, true
	case *domain.Todo:
		if t != nil {
			return *t, true
		}
	}
	return domain.Todo{}, false
}

func stringArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

func optionalString(p graphql.ResolveParams, name string) *string {
	if v, ok := p.Args[name].(string); ok {
		return &v
	}
	return nil
}

func optionalBool(p graphql.ResolveParams, name string) *bool {
	if v, ok := p.Args[name].(bool); ok {
		return &v
	}
	return nil
}

// requireLogin rejects an empty login argument before any service call.
// Non-null schema arguments catch absence, this catches the empty string.
func requireLogin(p graphql.ResolveParams, arg, action string) (string, error) {
	v, _ := p.Args[arg].(string)
	if v == "" {
		return "", fmt.Errorf("%w: user login is required to %s", domain.ErrMissingArgument, action)
	}
	return v, nil
}
