package mailer

import (
	"fmt"
	"geics-service/internal/app/config"
	"geics-service/internal/app/drivers/mailer"
	"geics-service/internal/app/models"
	"geics-service/internal/pkg/constvars"
	"geics-service/internal/pkg/exceptions"
	"net/smtp"
	"time"
)

type mailerService struct {
	Client     *mailer.SMTPClient
	SenderName string
	ReplyTo    string
}

func NewMailerService(client *mailer.SMTPClient, internalConfig *config.InternalConfig) MailerService {
	replyTo := internalConfig.Mailer.ReplyTo
	if replyTo == "" {
		replyTo = client.EmailSender
	}
	return &mailerService{
		Client:     client,
		SenderName: internalConfig.Mailer.SenderName,
		ReplyTo:    replyTo,
	}
}

func (svc *mailerService) SendConfirmation(appointment *models.Appointment, date time.Time, timeOfDay string) error {
	body, err := buildConfirmationBody(
		appointment.Name,
		appointment.ConsultationType,
		appointment.PreferredCountry,
		date,
		timeOfDay,
	)
	if err != nil {
		return exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, "Failed to render confirmation email template")
	}
	return svc.sendHTMLEmail(appointment.Email, constvars.EmailConfirmationSubject, body)
}

func (svc *mailerService) SendTestEmail(to string) error {
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailFormat, svc.fromHeader(), to, svc.ReplyTo, constvars.EmailSMTPTestSubject, constvars.EmailSMTPTestBody))
	err := smtp.SendMail(svc.Client.Addr(), svc.Client.Auth, svc.Client.EmailSender, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}

func (svc *mailerService) sendHTMLEmail(to, subject, htmlBody string) error {
	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLFormat, svc.fromHeader(), to, svc.ReplyTo, subject, htmlBody))
	err := smtp.SendMail(svc.Client.Addr(), svc.Client.Auth, svc.Client.EmailSender, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}

func (svc *mailerService) fromHeader() string {
	return fmt.Sprintf("%q <%s>", svc.SenderName, svc.Client.EmailSender)
}
