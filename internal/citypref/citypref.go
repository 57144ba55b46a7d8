// Package citypref records which cities a user likes or never wants to see again.
package citypref

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("city preference not found")
	ErrInvalidAction = errors.New("action must be like or dislike")
	ErrEmptyCity     = errors.New("city name is required")
)

type Action string

const (
	ActionLike    Action = "like"
	ActionDislike Action = "dislike"
)

func (a Action) Valid() bool {
	return a == ActionLike || a == ActionDislike
}

type Preference struct {
	UserID    uuid.UUID
	CityName  string
	Action    Action
	CreatedAt time.Time
}

// Summary is a user's preferences split by action, most recent first.
type Summary struct {
	UserID      uuid.UUID
	Preferences []*Preference
	Likes       []string
	Dislikes    []string
}
