package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const MaxTitleLength = 200

type Task struct {
	ID          uint64
	Title       string
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// SetCompleted applies the completion toggle. Marking a task completed always
// stamps completedAt with now, including when it was already completed.
func (t *Task) SetCompleted(completed bool, now time.Time) {
	t.Completed = completed
	if !completed {
		t.CompletedAt = nil
		return
	}
	t.CompletedAt = &now
}

// NormalizeTitle trims surrounding white space and checks the title fits the
// task title column.
func NormalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > MaxTitleLength {
		return "", ErrInvalidTitle
	}
	return title, nil
}
