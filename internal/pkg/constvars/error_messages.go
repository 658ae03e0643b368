package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "Cannot process request"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application"
	ErrClientServerLongRespond             = "Server takes too long to respond"

	ErrClientFailedToBookAppointment    = "Failed to book appointment"
	ErrClientFailedToFetchAppointments  = "Failed to fetch appointments"
	ErrClientFailedToConfirmAppointment = "Failed to confirm appointment"
	ErrClientFailedToDeleteAppointment  = "Failed to delete appointment"
	ErrClientAppointmentNotFound        = "Appointment not found"

	ErrClientNotAuthorized      = "Unauthorized"
	ErrClientInvalidCredentials = "Invalid credentials"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON  = "Failed to parse JSON request body"
	ErrDevCannotParseDate  = "Failed to parse appointment date"
	ErrDevValidationFailed = "Request validation failed"
	ErrDevInvalidInput     = "Invalid input"

	ErrDevServerDeadlineExceeded = "Server deadline exceeded while processing request"

	ErrDevAuthSessionCookieMissing  = "Session cookie is missing from request"
	ErrDevAuthTokenInvalid          = "Session token is invalid"
	ErrDevAuthSigningMethod         = "Unexpected signing method on session token"
	ErrDevAuthSessionNotFound       = "Session does not exist or has expired"
	ErrDevAuthInvalidCredentials    = "Submitted credentials do not match the configured admin pair"
	ErrDevAuthGenerateToken         = "Failed to sign session token"
	ErrDevAppointmentNotFound       = "No appointment document matches the given id"
	ErrDevDBFailedToInsertDocument  = "Failed to insert document to database"
	ErrDevDBFailedToFindDocument    = "Failed to find document in database"
	ErrDevDBFailedToUpdateDocument  = "Failed to update document in database"
	ErrDevDBFailedToDeleteDocument  = "Failed to delete document from database"
	ErrDevDBFailedToIterateDocument = "Failed to iterate documents from database"

	ErrDevSessionStoreSave    = "Failed to save session to session store"
	ErrDevSessionStoreFind    = "Failed to read session from session store"
	ErrDevSessionStoreDestroy = "Failed to delete session from session store"

	ErrDevSMTPSendEmail = "Failed to send email through SMTP host: %s"
)
