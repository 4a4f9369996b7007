package code

import "net/http"

// Success codes
var (
	Success = NewSuss(0, http.StatusOK, lang{
		de: "Erfolg",
		en: "Success",
	})
	SuccessNoContent = NewSuss(1, http.StatusNoContent, lang{
		de: "Erfolg, keine Inhalte",
		en: "Success, no content",
	})
)

// Request level errors
var (
	ErrorInvalidParams = NewError(10000, http.StatusBadRequest, lang{
		de: "Ungültige Anfrageparameter",
		en: "Invalid request parameters",
	})
	ErrorNotFoundAPI = NewError(10001, http.StatusNotFound, lang{
		de: "Schnittstelle nicht gefunden",
		en: "API not found",
	})
	ErrorTooManyRequests = NewError(10002, http.StatusTooManyRequests, lang{
		de: "Zu viele Anfragen",
		en: "Too many requests",
	})
	ErrorServerInternal = NewError(10003, http.StatusInternalServerError, lang{
		de: "Interner Serverfehler",
		en: "Internal server error",
	})
)

// Auth errors
var (
	ErrorNotAuthToken = NewError(20000, http.StatusUnauthorized, lang{
		de: "Bitte melde dich an",
		en: "Authorization credential is missing",
	})
	ErrorInvalidAuthToken = NewError(20001, http.StatusUnauthorized, lang{
		de: "Ungültiges Anmelde-Token",
		en: "Invalid authorization token",
	})
	ErrorUserEmpty = NewError(20002, http.StatusBadRequest, lang{
		de: "Benutzername darf nicht leer sein",
		en: "User must not be empty",
	})
)

// Note resource errors
var (
	ErrorNoteNotFound = NewError(30000, http.StatusNotFound, lang{
		de: "Diese Notiz gibt es nicht",
		en: "Note does not exist",
	})
	ErrorNoteOwnerMismatch = NewError(30001, http.StatusForbidden, lang{
		de: "Du kannst keine Notizen für andere Benutzer anlegen",
		en: "Notes may only be written for your own user",
	})
)
