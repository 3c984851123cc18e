package i

import (
	"time"

	"github.com/google/uuid"
)

// Tokenizer issues and verifies the tokens that grant control of a generation session.
type Tokenizer interface {
	// Issue creates a token bound to the session, valid for ttl.
	Issue(sessionID uuid.UUID, ttl time.Duration) (string, error)

	// SessionID validates a token and returns the session it is bound to.
	SessionID(token string) (uuid.UUID, error)
}
