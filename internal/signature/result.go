package signature

import (
	"image"
	"time"
)

// Result is the outcome of one commit. It is not modified after creation.
type Result struct {
	Image     image.Image
	Mode      Mode
	CreatedAt time.Time
}

// Persister stores a committed signature. Persistence is best effort: the
// controller logs a returned error and carries on.
type Persister interface {
	Persist(res *Result) error
}
