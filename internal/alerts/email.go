package alerts

import (
	"context"
	"fmt"
	"log"

	"github.com/nikoksr/notify"
	"github.com/nikoksr/notify/service/mail"
)

// EmailDispatcher sends alarm notifications over SMTP to the ranked staff
// that have an email address. Delivery is best-effort; guaranteed delivery
// belongs to a downstream paging integration, not here.
type EmailDispatcher struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
}

func NewEmailDispatcher(host string, port int, user, password string) *EmailDispatcher {
	return &EmailDispatcher{
		SMTPHost:     host,
		SMTPPort:     port,
		SMTPUser:     user,
		SMTPPassword: password,
	}
}

func (d *EmailDispatcher) Dispatch(ctx context.Context, alarm Alarm) error {
	var emails []string
	for _, rc := range alarm.Notified {
		if rc.Email != "" {
			emails = append(emails, rc.Email)
		}
	}
	if len(emails) == 0 {
		log.Printf("[alerts] %s subject=%s: no responder with an email address", alarm.Kind, alarm.SubjectID)
		return nil
	}

	subject := fmt.Sprintf("[HavenWatch] %s: resident %s", alarm.Kind, alarm.SubjectID)
	body := fmt.Sprintf(
		"Resident: %s\nAlarm: %s\nLast position: %.6f, %.6f\nTime: %s\n",
		alarm.SubjectID,
		alarm.Kind,
		alarm.Lat, alarm.Lng,
		alarm.At.Format("2006-01-02 15:04:05 UTC"),
	)

	// Fresh mail service per alarm — nikoksr/notify accumulates receivers
	// across AddReceivers calls, so reusing one would cause duplicate sends.
	mailSvc := mail.New(d.SMTPUser, fmt.Sprintf("%s:%d", d.SMTPHost, d.SMTPPort))
	mailSvc.AuthenticateSMTP("", d.SMTPUser, d.SMTPPassword, d.SMTPHost)
	mailSvc.AddReceivers(emails...)

	notifier := notify.New()
	notifier.UseServices(mailSvc)

	if err := notifier.Send(ctx, subject, body); err != nil {
		return fmt.Errorf("send alarm email: %w", err)
	}

	log.Printf("[alerts] %s subject=%s: emailed %d responders", alarm.Kind, alarm.SubjectID, len(emails))
	return nil
}
