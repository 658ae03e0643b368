package appointments

import (
	"context"
	"geics-service/internal/app/models"
	"geics-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAppointmentRepository_FallbackWithoutClient(t *testing.T) {
	repo := NewAppointmentRepository(nil, "geics_appointments")
	assert.IsType(t, &AppointmentMemoryRepository{}, repo, "no Mongo client must select the volatile backend")
}

func TestAppointmentMemoryRepository_Create(t *testing.T) {
	repo := NewAppointmentMemoryRepository()
	ctx := context.Background()

	t.Run("Assigns Unique Sequential IDs", func(t *testing.T) {
		firstID, err := repo.Create(ctx, &models.Appointment{
			Name:      "Aarav Sharma",
			Email:     "aarav@example.com",
			Status:    constvars.AppointmentStatusPending,
			CreatedAt: time.Now(),
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, firstID)

		secondID, err := repo.Create(ctx, &models.Appointment{
			Name:      "Meera Patel",
			Email:     "meera@example.com",
			Status:    constvars.AppointmentStatusPending,
			CreatedAt: time.Now(),
		})
		assert.NoError(t, err)
		assert.NotEqual(t, firstID, secondID, "each record should get its own id")
	})
}

func TestAppointmentMemoryRepository_FindAll(t *testing.T) {
	repo := NewAppointmentMemoryRepository()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"First", "Second", "Third"} {
		_, err := repo.Create(ctx, &models.Appointment{
			Name:      name,
			Status:    constvars.AppointmentStatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		assert.NoError(t, err)
	}

	t.Run("Returns Newest First", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, all, 3)
		assert.Equal(t, "Third", all[0].Name)
		assert.Equal(t, "Second", all[1].Name)
		assert.Equal(t, "First", all[2].Name)
	})

	t.Run("Equal Timestamps Keep Insertion Recency", func(t *testing.T) {
		sameMoment := time.Now()
		repo := NewAppointmentMemoryRepository()
		for _, name := range []string{"Older", "Newer"} {
			_, err := repo.Create(ctx, &models.Appointment{
				Name:      name,
				CreatedAt: sameMoment,
			})
			assert.NoError(t, err)
		}

		all, err := repo.FindAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "Newer", all[0].Name)
		assert.Equal(t, "Older", all[1].Name)
	})
}

func TestAppointmentMemoryRepository_Confirm(t *testing.T) {
	repo := NewAppointmentMemoryRepository()
	ctx := context.Background()

	appointmentID, err := repo.Create(ctx, &models.Appointment{
		Name:      "Aarav Sharma",
		Status:    constvars.AppointmentStatusPending,
		CreatedAt: time.Now(),
	})
	assert.NoError(t, err)

	confirmDate := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Sets Status Date And Time", func(t *testing.T) {
		updated, err := repo.Confirm(ctx, appointmentID, confirmDate, "10:30")
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, updated.Status)
		assert.Equal(t, confirmDate, *updated.AppointmentDate)
		assert.Equal(t, "10:30", updated.AppointmentTime)
	})

	t.Run("Reconfirm Overwrites Schedule", func(t *testing.T) {
		laterDate := confirmDate.AddDate(0, 0, 2)
		updated, err := repo.Confirm(ctx, appointmentID, laterDate, "14:00")
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, updated.Status)
		assert.Equal(t, laterDate, *updated.AppointmentDate)
		assert.Equal(t, "14:00", updated.AppointmentTime)
	})

	t.Run("Unknown ID Returns Nil Without Error", func(t *testing.T) {
		updated, err := repo.Confirm(ctx, "9999", confirmDate, "10:30")
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestAppointmentMemoryRepository_Delete(t *testing.T) {
	repo := NewAppointmentMemoryRepository()
	ctx := context.Background()

	appointmentID, err := repo.Create(ctx, &models.Appointment{
		Name:      "Meera Patel",
		CreatedAt: time.Now(),
	})
	assert.NoError(t, err)

	t.Run("Deletes Existing Record", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, appointmentID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		all, err := repo.FindAll(ctx)
		assert.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Second Delete Reports Not Found", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, appointmentID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
