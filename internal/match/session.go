package match

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

// Session is the caller context a request is made under. It is captured when a request
// starts, so changing the tier mid-flight does not affect an in-flight request.
type Session struct {
	Tier   preference.Tier
	UserID uuid.UUID // uuid.Nil for anonymous callers
}

func (s Session) Identified() bool {
	return s.UserID != uuid.Nil
}
