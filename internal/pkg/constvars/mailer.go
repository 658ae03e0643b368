package constvars

const (
	EmailConfirmationSubject = "Appointment Confirmed - GEICS Consultancy"
	EmailSMTPTestSubject     = "SMTP Test - GEICS"
	EmailSMTPTestBody        = "If you received this, SMTP is working."
)

const (
	EmailSendBasicEmailFormat = "From: %s\r\nTo: %s\r\nReply-To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLFormat       = "From: %s\r\nTo: %s\r\nReply-To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
)
