package responses

type AppointmentCreated struct {
	Message       string `json:"message"`
	AppointmentID string `json:"appointmentId"`
}

type EmailTest struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
