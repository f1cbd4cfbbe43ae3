package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"
	"github.com/templui/goaltracker/internal/model"
)

var ErrDigestNotConfigured = errors.New("deadline digest not configured (missing RESEND_API_KEY or DIGEST_TO)")

// EmailSender is the part of the Resend client the digest uses.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// DigestService mails the open tasks due on a date to a single address.
type DigestService struct {
	calendarService *CalendarService
	sender          EmailSender
	fromEmail       string
	toEmail         string
	appName         string
	isDev           bool
}

func NewDigestService(calendarService *CalendarService, apiKey, fromEmail, toEmail, appName string, isDev bool) *DigestService {
	var sender EmailSender
	if apiKey != "" && !isDev {
		sender = resend.NewClient(apiKey).Emails
	}

	return &DigestService{
		calendarService: calendarService,
		sender:          sender,
		fromEmail:       fromEmail,
		toEmail:         toEmail,
		appName:         appName,
		isDev:           isDev,
	}
}

// Send mails the digest for date and returns how many open tasks it listed.
// Nothing is sent when no open task is due.
func (s *DigestService) Send(ctx context.Context, date model.Date) (int, error) {
	due, err := s.calendarService.TasksOnDate(date)
	if err != nil {
		return 0, err
	}

	var open []*model.DueTask
	for _, task := range due {
		if !task.Completed {
			open = append(open, task)
		}
	}
	if len(open) == 0 {
		slog.InfoContext(ctx, "no open tasks due, digest skipped", "date", date.String())
		return 0, nil
	}

	subject, body := digestEmail(s.appName, date, open)

	if s.isDev {
		slog.InfoContext(ctx, "email sent (dev mode)", "type", "deadline_digest", "to", s.toEmail, "subject", subject, "tasks", len(open))
		return len(open), nil
	}

	if s.sender == nil || s.toEmail == "" {
		return 0, ErrDigestNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.toEmail},
		Subject: subject,
		Text:    body,
	}

	_, err = s.sender.SendWithContext(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("failed to send deadline digest: %w", err)
	}

	slog.InfoContext(ctx, "email sent", "type", "deadline_digest", "to", s.toEmail, "tasks", len(open))
	return len(open), nil
}

func digestEmail(appName string, date model.Date, tasks []*model.DueTask) (string, string) {
	day := date.Time().Format("02/01/2006")
	subject := fmt.Sprintf("%s: %d task(s) due %s", appName, len(tasks), day)

	var b strings.Builder
	fmt.Fprintf(&b, "Due on %s:\n\n", day)
	for _, task := range tasks {
		fmt.Fprintf(&b, "- %s (%s)\n", task.Description, task.GoalName)
	}
	return subject, b.String()
}
