package model

import "time"

// BaseModel carries the store-assigned identifier and creation timestamp.
// Both are set once on insert and never change afterwards.
type BaseModel struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// clonePtr returns a pointer to a copy of *p, or nil.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
