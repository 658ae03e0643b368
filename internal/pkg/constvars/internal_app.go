package constvars

type ContextKey string

const (
	ContextRequestIDKey   ContextKey = "requestID"
	ContextSessionUserKey ContextKey = "sessionUser"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
)

const (
	MongoCollectionAppointments = "appointments"
)

const (
	SessionKeyPrefix = "session:"

	// AppointmentDateLayout is the wire format the dashboard submits on confirm.
	AppointmentDateLayout = "2006-01-02"
)
