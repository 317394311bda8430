package service

import (
	"fmt"
	"strconv"

	"github.com/alphav1/to-do-list/internal/domain"
)

// nextID derives the next identifier for a collection: the maximum of the
// existing numeric ids plus one, as a decimal string. An empty collection
// starts at "1". Ids are recomputed from the surviving entries, so gaps left
// by deletes are never backfilled unless the maximum itself was deleted.
func nextID(ids []string) (string, error) {
	max := 0
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			return "", fmt.Errorf("%w: non-numeric id %q", domain.ErrStorage, id)
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}

func nextUserID(doc *domain.Document) (string, error) {
	ids := make([]string, len(doc.Users))
	for i, u := range doc.Users {
		ids[i] = u.ID
	}
	return nextID(ids)
}

func nextTodoID(doc *domain.Document) (string, error) {
	ids := make([]string, len(doc.Todos))
	for i, t := range doc.Todos {
		ids[i] = t.ID
	}
	return nextID(ids)
}
