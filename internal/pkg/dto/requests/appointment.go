package requests

type CreateAppointment struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required"`
	Phone            string `json:"phone" validate:"required"`
	PreferredCountry string `json:"preferredCountry" validate:"required"`
	ConsultationType string `json:"consultationType" validate:"required"`
	Message          string `json:"message"`
}

type ConfirmAppointment struct {
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	AppointmentTime string `json:"appointmentTime" validate:"required"`
}
