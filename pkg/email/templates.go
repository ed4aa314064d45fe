package email

import "fmt"

// WelcomeEmailData carries the fields for the post-registration welcome mail.
type WelcomeEmailData struct {
	FirstName string
	Email     string
	AppName   string
}

// BuildWelcomeEmail creates the welcome message sent after a successful
// registration. Delivery is best-effort; registration never fails on it.
func BuildWelcomeEmail(data WelcomeEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "HEAL"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("Welcome to %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Your %s account is ready. You can now sign in, complete your medical
profile, and book appointments with our doctors.

Thanks,
The %s Team`, firstName, appName, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your %s account is ready.</p>
    <p>You can now sign in, complete your medical profile, and book appointments with our doctors.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`, firstName, appName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BookingEmailData carries the fields for the booking confirmation mail.
type BookingEmailData struct {
	FirstName        string
	Email            string
	DoctorName       string
	Date             string
	Time             string
	ConsultationType string
	AppName          string
}

// BuildBookingConfirmationEmail creates the appointment confirmation message.
func BuildBookingConfirmationEmail(data BookingEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "HEAL"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("Your appointment with %s is booked", data.DoctorName)

	textBody := fmt.Sprintf(`Hi %s,

Your %s appointment with %s is confirmed for %s at %s.

If you need to change it, please reach out to the clinic.

Thanks,
The %s Team`, firstName, data.ConsultationType, data.DoctorName, data.Date, data.Time, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your <strong>%s</strong> appointment with <strong>%s</strong> is confirmed.</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="font-size: 20px; font-weight: bold;">%s</span><br>
        <span style="font-size: 16px;">%s</span>
    </p>
    <p>If you need to change it, please reach out to the clinic.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`, firstName, data.ConsultationType, data.DoctorName, data.Date, data.Time, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
