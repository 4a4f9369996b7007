package code

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusOK, Success.StatusCode())
	assert.Equal(t, http.StatusNoContent, SuccessNoContent.StatusCode())
	assert.Equal(t, http.StatusUnauthorized, ErrorNotAuthToken.StatusCode())
	assert.Equal(t, http.StatusUnauthorized, ErrorInvalidAuthToken.StatusCode())
	assert.Equal(t, http.StatusNotFound, ErrorNoteNotFound.StatusCode())
	assert.Equal(t, http.StatusForbidden, ErrorNoteOwnerMismatch.StatusCode())

	assert.True(t, Success.Status())
	assert.True(t, SuccessNoContent.Status())
	assert.False(t, ErrorNoteNotFound.Status())
}

func TestWithDetailsDoesNotMutateRegistered(t *testing.T) {
	detailed := ErrorNoteNotFound.WithDetails("note 42")

	assert.True(t, detailed.HaveDetails())
	assert.Equal(t, []string{"note 42"}, detailed.Details())

	// The registered value stays clean for the next request.
	assert.False(t, ErrorNoteNotFound.HaveDetails())
	assert.Empty(t, ErrorNoteNotFound.Details())
}

func TestClonesMatchWithErrorsIs(t *testing.T) {
	detailed := ErrorNoteOwnerMismatch.WithDetails("user mismatch")

	assert.ErrorIs(t, detailed, ErrorNoteOwnerMismatch)
	assert.NotErrorIs(t, detailed, ErrorNoteNotFound)
}

func TestLanguageSelection(t *testing.T) {
	prev := GetGlobalDefaultLang()
	defer func() { require.NoError(t, SetGlobalDefaultLang(prev)) }()

	require.NoError(t, SetGlobalDefaultLang("de"))
	assert.Equal(t, "Diese Notiz gibt es nicht", ErrorNoteNotFound.Msg())

	require.NoError(t, SetGlobalDefaultLang("en"))
	assert.Equal(t, "Note does not exist", ErrorNoteNotFound.Msg())

	// Unknown languages fall back to English.
	assert.Error(t, SetGlobalDefaultLang("fr"))
	assert.Equal(t, "en", GetGlobalDefaultLang())
	assert.Equal(t, "Invalid authorization token", ErrorInvalidAuthToken.Msg())
}

func TestSupportedLanguages(t *testing.T) {
	assert.ElementsMatch(t, []string{"de", "en"}, GetSupportedLanguages())
}
