package service

import (
	"context"
	"testing"

	"github.com/haierkeys/simple-notes-service/internal/dao"
	"github.com/haierkeys/simple-notes-service/internal/dto"
	"github.com/haierkeys/simple-notes-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (NoteService, *dao.Store) {
	t.Helper()
	store := dao.NewStore()
	return NewNoteService(store, zap.NewNop()), store
}

func strPtr(s string) *string {
	return &s
}

func TestCreateAndGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "anna", &dto.NoteModifyRequest{
		Title:   "Einkauf",
		Content: "Milch",
		User:    "anna",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "anna", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Einkauf", got.Title)
	assert.Equal(t, "Milch", got.Content)
	assert.Equal(t, "anna", got.User)
}

func TestCreateDefaultsOwnerToIdentity(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), "anna", &dto.NoteModifyRequest{Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, "anna", created.User)
}

func TestCreateOwnerMismatch(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.Create(context.Background(), "anna", &dto.NoteModifyRequest{
		Title: "fremd",
		User:  "bernd",
	})
	assert.ErrorIs(t, err, code.ErrorNoteOwnerMismatch)
	assert.Equal(t, 0, store.Count())
}

func TestListFiltersByOwner(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "anna", &dto.NoteModifyRequest{Title: "a1", User: "anna"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bernd", &dto.NoteModifyRequest{Title: "b1", User: "bernd"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "anna", &dto.NoteModifyRequest{Title: "a2", User: "anna"})
	require.NoError(t, err)

	list, err := svc.List(ctx, "anna")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a1", list[0].Title)
	assert.Equal(t, "a2", list[1].Title)

	empty, err := svc.List(ctx, "carla")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetForeignNoteIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "anna", &dto.NoteModifyRequest{Title: "geheim", User: "anna"})
	require.NoError(t, err)

	// Existence of another user's note must not be revealed.
	_, err = svc.Get(ctx, "bernd", created.ID)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}

func TestReplace(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "anna", &dto.NoteModifyRequest{Title: "alt", Content: "alt", User: "anna"})
	require.NoError(t, err)

	err = svc.Replace(ctx, "anna", created.ID, &dto.NoteModifyRequest{Title: "neu", Content: "neu", User: "anna"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "anna", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "neu", got.Title)
	assert.Equal(t, "neu", got.Content)
}

func TestReplaceCannotReassignOwner(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "anna", &dto.NoteModifyRequest{Title: "x", User: "anna"})
	require.NoError(t, err)

	err = svc.Replace(ctx, "anna", created.ID, &dto.NoteModifyRequest{Title: "y", User: "bernd"})
	assert.ErrorIs(t, err, code.ErrorNoteOwnerMismatch)

	got, err := svc.Get(ctx, "anna", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "x", got.Title)
	assert.Equal(t, "anna", got.User)
}

func TestReplaceForeignOrMissingIsNotFound(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "anna", &dto.NoteModifyRequest{Title: "x", User: "anna"})
	require.NoError(t, err)

	err = svc.Replace(ctx, "bernd", created.ID, &dto.NoteModifyRequest{Title: "y", User: "bernd"})
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)

	err = svc.Replace(ctx, "anna", 9999, &dto.NoteModifyRequest{Title: "y", User: "anna"})
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
	assert.Equal(t, 1, store.Count())
}

func TestPatchPartialFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "anna", &dto.NoteModifyRequest{Title: "Titel", Content: "alt", User: "anna"})
	require.NoError(t, err)

	err = svc.Patch(ctx, "anna", created.ID, &dto.NotePatchRequest{Content: strPtr("neu")})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "anna", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Titel", got.Title)
	assert.Equal(t, "neu", got.Content)
	assert.Equal(t, "anna", got.User)
}

func TestPatchOwnerMismatch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "anna", &dto.NoteModifyRequest{Title: "x", User: "anna"})
	require.NoError(t, err)

	err = svc.Patch(ctx, "anna", created.ID, &dto.NotePatchRequest{User: strPtr("bernd")})
	assert.ErrorIs(t, err, code.ErrorNoteOwnerMismatch)
}

func TestDelete(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "anna", &dto.NoteModifyRequest{Title: "weg", User: "anna"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "anna", created.ID))

	_, err = svc.Get(ctx, "anna", created.ID)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
	assert.Equal(t, 0, store.Count())

	err = svc.Delete(ctx, "anna", created.ID)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}

func TestDeleteForeignNoteIsNotFound(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "anna", &dto.NoteModifyRequest{Title: "x", User: "anna"})
	require.NoError(t, err)

	err = svc.Delete(ctx, "bernd", created.ID)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
	assert.Equal(t, 1, store.Count())
}
