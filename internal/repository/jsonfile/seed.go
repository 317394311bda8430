package jsonfile

import "github.com/alphav1/to-do-list/internal/domain"

// Seed returns the dataset written on first run: three sample users and six
// sample todos. Exported so tests can assert against the initial state.
func Seed() *domain.Document {
	return &domain.Document{
		Users: []domain.User{
			{ID: "1", Name: "Jan Konieczny", Email: "jan.konieczny@wonet.pl", Login: "jkonieczny"},
			{ID: "2", Name: "Anna Wesołowska", Email: "anna.w@sad.gov.pl", Login: "anna.wesolowska"},
			{ID: "3", Name: "Piotr Waleczny", Email: "piotr.waleczny@gp.pl", Login: "p.waleczny"},
		},
		Todos: []domain.Todo{
			{ID: "1", Title: "Naprawić samochód", Completed: false, UserID: "3"},
			{ID: "2", Title: "Posprzątać garaż", Completed: true, UserID: "3"},
			{ID: "3", Title: "Napisać e-mail", Completed: false, UserID: "3"},
			{ID: "4", Title: "Odebrać buty", Completed: false, UserID: "2"},
			{ID: "5", Title: "Wysłać paczkę", Completed: true, UserID: "2"},
			{ID: "6", Title: "Zamówic kuriera", Completed: false, UserID: "3"},
		},
	}
}
