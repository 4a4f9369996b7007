// Package service implements the business logic layer.
package service

import (
	"context"

	"github.com/haierkeys/simple-notes-service/internal/dao"
	"github.com/haierkeys/simple-notes-service/internal/dto"
	"github.com/haierkeys/simple-notes-service/internal/model"
	"github.com/haierkeys/simple-notes-service/pkg/code"
	"github.com/haierkeys/simple-notes-service/pkg/convert"
	"github.com/haierkeys/simple-notes-service/pkg/logger"

	"go.uber.org/zap"
)

// NoteService carries the ownership-matching contract of the note
// lifecycle. Handlers never touch the store directly.
//
// Ownership rules, applied uniformly on every id-addressed operation:
//   - a note that does not exist or belongs to another user is reported
//     as not found, so the existence of foreign notes is never revealed
//   - a request body naming a different user than the authenticated
//     identity is rejected as a mismatch; notes cannot be created for or
//     reassigned to other users
type NoteService interface {
	// Create inserts a new note owned by user.
	Create(ctx context.Context, user string, params *dto.NoteModifyRequest) (*dto.NoteResponse, error)

	// List returns all notes owned by user, ascending by id.
	List(ctx context.Context, user string) ([]*dto.NoteResponse, error)

	// Get returns a single owned note.
	Get(ctx context.Context, user string, id int64) (*dto.NoteResponse, error)

	// Replace overwrites title, content and user of an owned note.
	Replace(ctx context.Context, user string, id int64, params *dto.NoteModifyRequest) error

	// Patch replaces only the provided fields of an owned note.
	Patch(ctx context.Context, user string, id int64, params *dto.NotePatchRequest) error

	// Delete removes an owned note.
	Delete(ctx context.Context, user string, id int64) error
}

type noteService struct {
	store  *dao.Store
	logger *zap.Logger
}

// NewNoteService creates a NoteService on top of the injected store.
func NewNoteService(store *dao.Store, lg *zap.Logger) NoteService {
	return &noteService{
		store:  store,
		logger: lg,
	}
}

func (s *noteService) Create(ctx context.Context, user string, params *dto.NoteModifyRequest) (*dto.NoteResponse, error) {
	owner := params.User
	if owner == "" {
		owner = user
	}
	if owner != user {
		return nil, code.ErrorNoteOwnerMismatch
	}

	note := s.store.Create(model.Note{
		Title:   params.Title,
		Content: params.Content,
		User:    owner,
	})

	s.logger.Info("note created",
		zap.String(logger.FieldUser, user),
		zap.Int64(logger.FieldNoteID, note.ID),
	)

	return noteToResponse(note)
}

func (s *noteService) List(ctx context.Context, user string) ([]*dto.NoteResponse, error) {
	notes := s.store.ListByUser(user)

	list := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		r, err := noteToResponse(n)
		if err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, nil
}

func (s *noteService) Get(ctx context.Context, user string, id int64) (*dto.NoteResponse, error) {
	note, ok := s.store.Get(id)
	if !ok || !note.IsOwnedBy(user) {
		return nil, code.ErrorNoteNotFound
	}
	return noteToResponse(note)
}

func (s *noteService) Replace(ctx context.Context, user string, id int64, params *dto.NoteModifyRequest) error {
	note, ok := s.store.Get(id)
	if !ok || !note.IsOwnedBy(user) {
		return code.ErrorNoteNotFound
	}

	owner := params.User
	if owner == "" {
		owner = user
	}
	if owner != user {
		return code.ErrorNoteOwnerMismatch
	}

	if _, ok := s.store.Update(id, func(n *model.Note) {
		n.Title = params.Title
		n.Content = params.Content
		n.User = owner
	}); !ok {
		return code.ErrorNoteNotFound
	}

	s.logger.Info("note replaced",
		zap.String(logger.FieldUser, user),
		zap.Int64(logger.FieldNoteID, id),
	)
	return nil
}

func (s *noteService) Patch(ctx context.Context, user string, id int64, params *dto.NotePatchRequest) error {
	note, ok := s.store.Get(id)
	if !ok || !note.IsOwnedBy(user) {
		return code.ErrorNoteNotFound
	}

	if params.User != nil && *params.User != user {
		return code.ErrorNoteOwnerMismatch
	}

	if _, ok := s.store.Update(id, func(n *model.Note) {
		if params.Title != nil {
			n.Title = *params.Title
		}
		if params.Content != nil {
			n.Content = *params.Content
		}
		if params.User != nil {
			n.User = *params.User
		}
	}); !ok {
		return code.ErrorNoteNotFound
	}

	s.logger.Info("note patched",
		zap.String(logger.FieldUser, user),
		zap.Int64(logger.FieldNoteID, id),
	)
	return nil
}

func (s *noteService) Delete(ctx context.Context, user string, id int64) error {
	note, ok := s.store.Get(id)
	if !ok || !note.IsOwnedBy(user) {
		return code.ErrorNoteNotFound
	}

	if !s.store.Delete(id) {
		return code.ErrorNoteNotFound
	}

	s.logger.Info("note deleted",
		zap.String(logger.FieldUser, user),
		zap.Int64(logger.FieldNoteID, id),
	)
	return nil
}

func noteToResponse(n model.Note) (*dto.NoteResponse, error) {
	r := &dto.NoteResponse{}
	if err := convert.StructAssign(&n, r); err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}
	return r, nil
}
