package domain

// Todo represents a single todo item owned by a user. Titles are unique per
// owner, not globally; UserID references User.ID.
type Todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	UserID    string `json:"user_id"`
}
