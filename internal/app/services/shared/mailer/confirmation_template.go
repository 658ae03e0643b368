package mailer

import (
	"bytes"
	"html/template"
	"time"
)

// confirmationHTML mirrors the email clients have been receiving since the
// first deployment; the layout is inlined because most mail clients strip
// external styles.
const confirmationHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #2563eb; padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">GEICS Consultancy</h1>
    <p style="color: #e5e7eb; margin: 5px 0;">Global Education &amp; Immigration Consultancy Services</p>
  </div>
  <div style="padding: 30px; background-color: #f8fafc;">
    <h2 style="color: #1e40af;">Appointment Confirmed!</h2>
    <p>Dear {{.Name}},</p>
    <p>Your appointment has been confirmed. Please find the details below:</p>

    <div style="background-color: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #2563eb; margin-top: 0;">Appointment Details</h3>
      <p><strong>Date:</strong> {{.Date}}</p>
      <p><strong>Time:</strong> {{.Time}}</p>
      <p><strong>Consultation Type:</strong> {{.ConsultationType}}</p>
      <p><strong>Preferred Country:</strong> {{.PreferredCountry}}</p>
    </div>

    <p>Please arrive 10 minutes early. For reschedules, reply to this email at least 24 hours in advance.</p>
    <p>Thank you for choosing GEICS Consultancy!</p>

    <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb;">
      <p style="color: #6b7280; font-size: 14px;">
        Best regards,<br>
        GEICS Consultancy Team
      </p>
    </div>
  </div>
</div>
`

var confirmationTemplate = template.Must(template.New("confirmation").Parse(confirmationHTML))

type confirmationData struct {
	Name             string
	Date             string
	Time             string
	ConsultationType string
	PreferredCountry string
}

func buildConfirmationBody(name, consultationType, preferredCountry string, date time.Time, timeOfDay string) (string, error) {
	var buf bytes.Buffer
	err := confirmationTemplate.Execute(&buf, confirmationData{
		Name:             name,
		Date:             date.Format("January 2, 2006"),
		Time:             timeOfDay,
		ConsultationType: consultationType,
		PreferredCountry: preferredCountry,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
