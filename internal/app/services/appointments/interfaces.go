package appointments

import (
	"context"
	"geics-service/internal/app/models"
	"geics-service/internal/pkg/dto/requests"
	"geics-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository is the Record Store contract. Both backends (Mongo
// and in-memory) keep FindAll ordered by createdAt descending. Confirm and
// Delete report an unknown id as (nil, nil) / (false, nil) rather than an
// error so the usecase can map it to a not-found response.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (string, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	Confirm(ctx context.Context, appointmentID string, date time.Time, timeOfDay string) (*models.Appointment, error)
	Delete(ctx context.Context, appointmentID string) (bool, error)
}

// NewAppointmentRepository selects the backend: the durable Mongo collection
// when the startup probe produced a client, the volatile in-memory list
// otherwise.
func NewAppointmentRepository(client *mongo.Client, dbName string) AppointmentRepository {
	if client == nil {
		return NewAppointmentMemoryRepository()
	}
	return NewAppointmentMongoRepository(client, dbName)
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (string, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ConfirmAppointment(ctx context.Context, appointmentID string, request *requests.ConfirmAppointment) (*responses.Message, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
	SendTestEmail(ctx context.Context) (*responses.EmailTest, error)
}
