package mailer

import (
	"geics-service/internal/app/models"
	"time"
)

// MailerService is the outbound notification transport. SendConfirmation is
// the only caller-facing operation in normal use; SendTestEmail backs the
// admin SMTP smoke-test route.
type MailerService interface {
	SendConfirmation(appointment *models.Appointment, date time.Time, timeOfDay string) error
	SendTestEmail(to string) error
}
