package appointments

import (
	"context"
	"geics-service/internal/app/models"
	"geics-service/internal/pkg/constvars"
	"sort"
	"strconv"
	"sync"
	"time"
)

// AppointmentMemoryRepository is the volatile Record Store backend, selected
// when MongoDB is unreachable at startup. It owns its list and counter
// behind a mutex and loses everything on restart.
type AppointmentMemoryRepository struct {
	mu           sync.Mutex
	appointments []models.Appointment
	counter      int
}

func NewAppointmentMemoryRepository() AppointmentRepository {
	return &AppointmentMemoryRepository{}
}

func (repo *AppointmentMemoryRepository) Create(ctx context.Context, appointment *models.Appointment) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.counter++
	appointment.ID = strconv.Itoa(repo.counter)
	repo.appointments = append(repo.appointments, *appointment)
	return appointment.ID, nil
}

func (repo *AppointmentMemoryRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	sorted := make([]models.Appointment, len(repo.appointments))
	// Reverse insertion order first so equal createdAt timestamps still come
	// out newest-first after the stable sort.
	for i, appointment := range repo.appointments {
		sorted[len(repo.appointments)-1-i] = appointment
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted, nil
}

func (repo *AppointmentMemoryRepository) Confirm(ctx context.Context, appointmentID string, date time.Time, timeOfDay string) (*models.Appointment, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.appointments {
		if repo.appointments[i].ID == appointmentID {
			repo.appointments[i].Status = constvars.AppointmentStatusConfirmed
			repo.appointments[i].AppointmentDate = &date
			repo.appointments[i].AppointmentTime = timeOfDay
			updated := repo.appointments[i]
			return &updated, nil
		}
	}
	return nil, nil
}

func (repo *AppointmentMemoryRepository) Delete(ctx context.Context, appointmentID string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.appointments {
		if repo.appointments[i].ID == appointmentID {
			repo.appointments = append(repo.appointments[:i], repo.appointments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
