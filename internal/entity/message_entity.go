package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time

	// Pending marks an assistant message whose content is still being
	// revealed. At most one message per conversation may be pending.
	Pending bool
}
