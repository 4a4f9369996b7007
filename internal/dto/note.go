// Package dto defines the request and response bodies of the HTTP API.
package dto

// NoteModifyRequest is the body of POST /notes and PUT /notes/:id.
// User may be empty, in which case the authenticated identity is used.
type NoteModifyRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
	User    string `json:"user" form:"user"`
}

// NotePatchRequest is the body of PATCH /notes/:id. Nil fields keep their
// prior value.
type NotePatchRequest struct {
	Title   *string `json:"title" form:"title"`
	Content *string `json:"content" form:"content"`
	User    *string `json:"user" form:"user"`
}

// NoteResponse is a single note as returned by GET routes.
type NoteResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	User    string `json:"user"`
}
