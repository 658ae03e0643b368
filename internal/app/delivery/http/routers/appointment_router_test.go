package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"geics-service/internal/app/config"
	"geics-service/internal/app/delivery/http/middlewares"
	"geics-service/internal/app/models"
	"geics-service/internal/app/services/appointments"
	"geics-service/internal/app/services/auth"
	"geics-service/internal/app/services/shared/session"
	"geics-service/internal/pkg/constvars"
	"geics-service/internal/pkg/dto/requests"
	"geics-service/internal/pkg/dto/responses"
	"geics-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentUsecase) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		return result.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentUsecase) ConfirmAppointment(ctx context.Context, appointmentID string, request *requests.ConfirmAppointment) (*responses.Message, error) {
	args := m.Called(ctx, appointmentID, request)
	if result := args.Get(0); result != nil {
		return result.(*responses.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) SendTestEmail(ctx context.Context) (*responses.EmailTest, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		return result.(*responses.EmailTest), args.Error(1)
	}
	return nil, args.Error(1)
}

// newAppointmentTestRouter wires the appointment routes behind a real session
// gate so the tests cover the authentication path as deployed.
func newAppointmentTestRouter(mockUsecase *MockAppointmentUsecase) (*chi.Mux, *http.Cookie) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		Session: config.Session{
			Secret:             "test-session-secret",
			CookieName:         "geics.sid",
			ExpiredTimeInHours: 1,
		},
		Admin: config.Admin{
			Username: "admin",
			Password: "admin123",
		},
	}

	authUsecase := auth.NewAuthUsecase(session.NewMemorySessionStore(), internalConfig)
	middlewareInstance := middlewares.NewMiddlewares(logger, authUsecase, internalConfig)
	appointmentController := appointments.NewAppointmentController(logger, mockUsecase)

	router := chi.NewRouter()
	attachAppointmentRoutes(router, middlewareInstance, appointmentController)

	token, err := authUsecase.Login(context.Background(), &requests.Login{Username: "admin", Password: "admin123"})
	if err != nil {
		panic(err)
	}
	adminCookie := &http.Cookie{Name: internalConfig.Session.CookieName, Value: token}

	return router, adminCookie
}

func TestAppointmentRouter_Create(t *testing.T) {
	t.Run("Booking Is Public And Returns 201", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router, _ := newAppointmentTestRouter(mockUsecase)

		mockUsecase.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(request *requests.CreateAppointment) bool {
			return request.Name == "Aarav Sharma" && request.PreferredCountry == "Canada"
		})).Return("66a1b2c3d4e5f60718293a4b", nil)

		jsonBody, _ := json.Marshal(requests.CreateAppointment{
			Name:             "Aarav Sharma",
			Email:            "aarav@example.com",
			Phone:            "+91 98765 43210",
			PreferredCountry: "Canada",
			ConsultationType: "Study Visa",
			Message:          "Looking for a fall intake.",
		})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var response responses.AppointmentCreated
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, constvars.AppointmentBookedSuccess, response.Message)
		assert.Equal(t, "66a1b2c3d4e5f60718293a4b", response.AppointmentID)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Missing Required Field Returns 400", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router, _ := newAppointmentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(map[string]string{
			"name":  "Aarav Sharma",
			"email": "aarav@example.com",
		})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "CreateAppointment")
	})
}

func TestAppointmentRouter_List(t *testing.T) {
	t.Run("Unauthenticated API Call Gets 401 JSON", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router, _ := newAppointmentTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var response responses.Error
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, constvars.ErrClientNotAuthorized, response.Error)
		mockUsecase.AssertNotCalled(t, "ListAppointments")
	})

	t.Run("Unauthenticated Browser Navigation Redirects To Login", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router, _ := newAppointmentTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})

	t.Run("Authenticated List Returns Raw Record Array", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router, adminCookie := newAppointmentTestRouter(mockUsecase)

		createdAt := time.Date(2026, time.August, 20, 9, 0, 0, 0, time.UTC)
		mockUsecase.On("ListAppointments", mock.Anything).Return([]models.Appointment{
			{
				ID:               "66a1b2c3d4e5f60718293a4b",
				Name:             "Aarav Sharma",
				Email:            "aarav@example.com",
				Phone:            "+91 98765 43210",
				PreferredCountry: "Canada",
				ConsultationType: "Study Visa",
				Status:           constvars.AppointmentStatusPending,
				CreatedAt:        createdAt,
			},
		}, nil)

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(adminCookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var records []map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
		assert.Len(t, records, 1)
		assert.Equal(t, "66a1b2c3d4e5f60718293a4b", records[0]["_id"])
		assert.Equal(t, constvars.AppointmentStatusPending, records[0]["status"])
		mockUsecase.AssertExpectations(t)
	})
}

func TestAppointmentRouter_Confirm(t *testing.T) {
	confirmBody := func() *bytes.Buffer {
		jsonBody, _ := json.Marshal(requests.ConfirmAppointment{
			AppointmentDate: "2026-09-15",
			AppointmentTime: "10:30",
		})
		return bytes.NewBuffer(jsonBody)
	}

	t.Run("Confirm Returns Outcome Message", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router, adminCookie := newAppointmentTestRouter(mockUsecase)

		mockUsecase.On("ConfirmAppointment", mock.Anything, "66a1b2c3d4e5f60718293a4b", mock.AnythingOfType("*requests.ConfirmAppointment")).
			Return(&responses.Message{Message: constvars.AppointmentConfirmedEmailSent}, nil)

		req := httptest.NewRequest("PUT", "/66a1b2c3d4e5f60718293a4b/confirm", confirmBody())
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(adminCookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response responses.Message
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, constvars.AppointmentConfirmedEmailSent, response.Message)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Unknown ID Returns 404", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router, adminCookie := newAppointmentTestRouter(mockUsecase)

		mockUsecase.On("ConfirmAppointment", mock.Anything, "9999", mock.AnythingOfType("*requests.ConfirmAppointment")).
			Return(nil, exceptions.ErrAppointmentNotFound(nil))

		req := httptest.NewRequest("PUT", "/9999/confirm", confirmBody())
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(adminCookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var response responses.Error
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, constvars.ErrClientAppointmentNotFound, response.Error)
	})

	t.Run("Missing Date Or Time Returns 400", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router, adminCookie := newAppointmentTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(map[string]string{"appointmentDate": "2026-09-15"})

		req := httptest.NewRequest("PUT", "/66a1b2c3d4e5f60718293a4b/confirm", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(adminCookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "ConfirmAppointment")
	})

	t.Run("Unauthenticated Confirm Rejected", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router, _ := newAppointmentTestRouter(mockUsecase)

		req := httptest.NewRequest("PUT", "/66a1b2c3d4e5f60718293a4b/confirm", confirmBody())
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUsecase.AssertNotCalled(t, "ConfirmAppointment")
	})
}

func TestAppointmentRouter_Delete(t *testing.T) {
	t.Run("Delete Existing Record", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router, adminCookie := newAppointmentTestRouter(mockUsecase)

		mockUsecase.On("DeleteAppointment", mock.Anything, "66a1b2c3d4e5f60718293a4b").Return(nil)

		req := httptest.NewRequest("DELETE", "/66a1b2c3d4e5f60718293a4b", nil)
		req.AddCookie(adminCookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response responses.Message
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, constvars.AppointmentDeletedSuccess, response.Message)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Unknown ID Returns 404", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router, adminCookie := newAppointmentTestRouter(mockUsecase)

		mockUsecase.On("DeleteAppointment", mock.Anything, "9999").Return(exceptions.ErrAppointmentNotFound(nil))

		req := httptest.NewRequest("DELETE", "/9999", nil)
		req.AddCookie(adminCookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Unauthenticated Delete Rejected", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		router, _ := newAppointmentTestRouter(mockUsecase)

		req := httptest.NewRequest("DELETE", "/66a1b2c3d4e5f60718293a4b", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUsecase.AssertNotCalled(t, "DeleteAppointment")
	})
}
