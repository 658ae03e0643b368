package models

import "time"

// Appointment is a client's consultation request, tracked through the
// pending/confirmed states. AppointmentDate and AppointmentTime are set only
// by the confirm operation; everything else is immutable after creation.
type Appointment struct {
	ID               string     `json:"_id" bson:"_id,omitempty"`
	Name             string     `json:"name" bson:"name"`
	Email            string     `json:"email" bson:"email"`
	Phone            string     `json:"phone" bson:"phone"`
	PreferredCountry string     `json:"preferredCountry" bson:"preferredCountry"`
	ConsultationType string     `json:"consultationType" bson:"consultationType"`
	Message          string     `json:"message,omitempty" bson:"message,omitempty"`
	Status           string     `json:"status" bson:"status"`
	AppointmentDate  *time.Time `json:"appointmentDate,omitempty" bson:"appointmentDate,omitempty"`
	AppointmentTime  string     `json:"appointmentTime,omitempty" bson:"appointmentTime,omitempty"`
	CreatedAt        time.Time  `json:"createdAt" bson:"createdAt"`
}
