package mail

import "fmt"

// GenerateOTPEmail renders the HTML body for an OTP mail. A resend gets its
// own heading so the reader knows the previous code stopped working.
func GenerateOTPEmail(code, kind string) string {
	heading := "Verify Your Email"
	intro := "Use the code below to verify your email address."
	if kind == "resend" {
		heading = "Your New OTP Code"
		intro = "Here is your new verification code. The previous code is no longer valid."
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f7; margin: 0; padding: 24px;">
  <div style="max-width: 480px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    <h2 style="color: #1a1a2e; margin-top: 0;">%s</h2>
    <p style="color: #444;">%s</p>
    <div style="font-size: 32px; font-weight: bold; letter-spacing: 8px; text-align: center; color: #1a1a2e; padding: 16px 0;">%s</div>
    <p style="color: #888; font-size: 13px;">This code expires in 5 minutes. If you did not request it, you can safely ignore this email.</p>
  </div>
</body>
</html>`, heading, intro, code)
}
