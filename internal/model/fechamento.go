package model

import (
	"time"

	"github.com/google/uuid"
)

// Fechamento closes one cycle of a paiol. Append-only; the sole source of
// cycle-boundary information. N fechamentos imply N+1 cycles so far — an
// event's cycle equals 1 + count(fechamentos strictly before it).
type Fechamento struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PaiolID        uuid.UUID `gorm:"type:uuid;index;not null"`
	DataFechamento time.Time `gorm:"index;not null"`
	CreatedAt      time.Time
}
