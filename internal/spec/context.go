package spec

import (
	"time"

	"github.com/google/uuid"
)

// ProcessingContext is the engine-scoped runtime state accompanying one
// specification. The builder only creates it; the engine fills the
// registries with user-defined variables and calendars.
type ProcessingContext struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Variables map[string][]float64
	Calendars map[string]string
}

// NewProcessingContext creates an empty context with a new ID.
func NewProcessingContext() *ProcessingContext {
	return &ProcessingContext{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Variables: make(map[string][]float64),
		Calendars: make(map[string]string),
	}
}

// IsEmpty reports whether no variable or calendar has been registered.
func (c *ProcessingContext) IsEmpty() bool {
	return len(c.Variables) == 0 && len(c.Calendars) == 0
}
