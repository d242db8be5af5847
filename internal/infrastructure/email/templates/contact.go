package templates

import (
	"bytes"
	"html/template"
	"log"
)

// ContactNotificationProps carries the submitted message into the owner
// notification email.
type ContactNotificationProps struct {
	Name       string
	Email      string
	Message    string
	ReceivedAt string
}

var contactNotificationTemplate = template.Must(template.New("contactNotification").Parse(`
<h1 style="font-family: Helvetica, sans-serif; font-size: 24px; font-weight: bold; margin: 0 0 16px;">New contact message</h1>
<p style="font-family: Helvetica, sans-serif; font-size: 16px; margin: 0 0 16px;">Someone reached out through your portfolio contact form.</p>
<table role="presentation" border="0" cellpadding="0" cellspacing="0" style="border-collapse: separate; width: 100%; margin-bottom: 16px;">
  <tr>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 0; color: #9a9ea6; width: 96px;">From</td>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 0;">{{.Name}}</td>
  </tr>
  <tr>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 0; color: #9a9ea6;">Email</td>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 0;"><a href="mailto:{{.Email}}" style="color: #0867ec;">{{.Email}}</a></td>
  </tr>
  <tr>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 0; color: #9a9ea6;">Received</td>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 0;">{{.ReceivedAt}}</td>
  </tr>
</table>
<div style="font-family: Helvetica, sans-serif; font-size: 16px; background: #f4f5f6; border-radius: 8px; padding: 16px; white-space: pre-wrap;">{{.Message}}</div>
<p style="font-family: Helvetica, sans-serif; font-size: 14px; color: #9a9ea6; margin: 16px 0 0;">Reply directly to this email to answer.</p>`))

// GetContactNotificationContent renders the body of the owner notification.
func GetContactNotificationContent(props ContactNotificationProps) string {
	var buf bytes.Buffer
	if err := contactNotificationTemplate.Execute(&buf, props); err != nil {
		log.Printf("Error executing contact notification template: %v", err)
		return ""
	}
	return buf.String()
}
