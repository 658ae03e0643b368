package appointments

import (
	"context"
	"geics-service/internal/app/config"
	"geics-service/internal/app/models"
	"geics-service/internal/app/services/shared/mailer"
	"geics-service/internal/pkg/constvars"
	"geics-service/internal/pkg/dto/requests"
	"geics-service/internal/pkg/dto/responses"
	"geics-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	MailerService         mailer.MailerService
	Log                   *zap.Logger
	InternalConfig        *config.InternalConfig
}

func NewAppointmentUsecase(
	appointmentRepository AppointmentRepository,
	mailerService mailer.MailerService,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		MailerService:         mailerService,
		Log:                   logger,
		InternalConfig:        internalConfig,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (string, error) {
	appointment := &models.Appointment{
		Name:             request.Name,
		Email:            request.Email,
		Phone:            request.Phone,
		PreferredCountry: request.PreferredCountry,
		ConsultationType: request.ConsultationType,
		Message:          request.Message,
		Status:           constvars.AppointmentStatusPending,
		CreatedAt:        time.Now(),
	}
	return uc.AppointmentRepository.Create(ctx, appointment)
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return uc.AppointmentRepository.FindAll(ctx)
}

// ConfirmAppointment flips the record to confirmed, then attempts the
// notification. The two steps are deliberately non-atomic: a failed send
// leaves the record confirmed and only changes the response message.
func (uc *appointmentUsecase) ConfirmAppointment(ctx context.Context, appointmentID string, request *requests.ConfirmAppointment) (*responses.Message, error) {
	date, err := parseAppointmentDate(request.AppointmentDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	appointment, err := uc.AppointmentRepository.Confirm(ctx, appointmentID, date, request.AppointmentTime)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if err := uc.MailerService.SendConfirmation(appointment, date, request.AppointmentTime); err != nil {
		uc.Log.Warn("Confirmation email failed to send",
			zap.String("appointment_id", appointmentID),
			zap.Error(err),
		)
		return &responses.Message{Message: constvars.AppointmentConfirmedEmailFailed}, nil
	}

	return &responses.Message{Message: constvars.AppointmentConfirmedEmailSent}, nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	deleted, err := uc.AppointmentRepository.Delete(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	return nil
}

func (uc *appointmentUsecase) SendTestEmail(ctx context.Context) (*responses.EmailTest, error) {
	to := uc.InternalConfig.Mailer.ReplyTo
	if err := uc.MailerService.SendTestEmail(to); err != nil {
		uc.Log.Warn("SMTP test email failed", zap.Error(err))
		return &responses.EmailTest{OK: false, Error: constvars.ErrClientSomethingWrongWithApplication}, err
	}
	return &responses.EmailTest{OK: true}, nil
}

func parseAppointmentDate(value string) (time.Time, error) {
	date, err := time.Parse(constvars.AppointmentDateLayout, value)
	if err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, value)
}
