package service

import (
	"errors"
	"testing"

	"github.com/alphav1/to-do-list/internal/domain"
)

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"empty collection starts at 1", nil, "1"},
		{"single id", []string{"1"}, "2"},
		{"max plus one", []string{"1", "2", "3"}, "4"},
		{"unordered", []string{"7", "2", "5"}, "8"},
		{"gaps are not backfilled", []string{"1", "9"}, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextID(tt.ids)
			if err != nil {
				t.Fatalf("nextID(%v): %v", tt.ids, err)
			}
			if got != tt.want {
				t.Errorf("nextID(%v): got %q, want %q", tt.ids, got, tt.want)
			}
		})
	}
}

func TestNextID_NonNumeric(t *testing.T) {
	_, err := nextID([]string{"1", "abc"})
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage for non-numeric id, got %v", err)
	}
}
