package domain

// User represents a registered user. IDs are decimal strings ("1", "2", ...)
// for compatibility with existing db.json files; the service layer's
// allocator assigns them.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Login string `json:"login"`
}
