package logger

// Shared log field names, so log queries stay consistent across handlers
// and services.
const (
	// FieldTraceID request trace id
	FieldTraceID = "traceId"

	// FieldUser authenticated user identity
	FieldUser = "user"

	// FieldNoteID note id
	FieldNoteID = "noteId"

	// FieldMethod handler or method name
	FieldMethod = "method"

	// FieldDuration elapsed time
	FieldDuration = "duration"

	// FieldError error message
	FieldError = "error"
)
