// Package model defines the domain entities.
package model

// Note is the sole persisted entity: an owned piece of text content.
// ID is assigned by the store and unique for the process lifetime.
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	User    string `json:"user"`
}

// IsOwnedBy reports whether the note belongs to the given identity.
func (n *Note) IsOwnedBy(user string) bool {
	return n.User == user
}
