package constvars

const (
	ResponseUnknown = "unknown"

	// Appointment messages
	AppointmentBookedSuccess        = "Appointment booked successfully!"
	AppointmentConfirmedEmailSent   = "Appointment confirmed and email sent!"
	AppointmentConfirmedEmailFailed = "Appointment confirmed, but email failed to send."
	AppointmentDeletedSuccess       = "Appointment deleted successfully"

	// Auth messages
	LoginSuccess  = "Logged in"
	LogoutSuccess = "Logged out"
)
