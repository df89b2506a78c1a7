package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// EmailService отправляет служебные письма.
type EmailService interface {
	SendReportNotification(ctx context.Context, toEmail, reference, questionText, description string) error
}

// NoopEmailService используется, когда уведомления о жалобах отключены.
type NoopEmailService struct{}

func (s *NoopEmailService) SendReportNotification(ctx context.Context, toEmail, reference, questionText, description string) error {
	log.Printf("[EmailService] noop report notification to=%s reference=%s", toEmail, reference)
	return nil
}

// ResendEmailService отправляет письма через Resend REST API.
type ResendEmailService struct {
	from   string
	client *resend.Client
}

func NewResendEmailService(apiKey, from string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendEmailService{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

func (s *ResendEmailService) SendReportNotification(ctx context.Context, toEmail, reference, questionText, description string) error {
	if toEmail == "" || reference == "" {
		return fmt.Errorf("toEmail and reference are required")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Новая жалоба на вопрос [%s]", reference),
		Text: fmt.Sprintf("Поступила жалоба %s.\n\nВопрос: %s\n\nОписание: %s",
			reference, questionText, description),
		Html: fmt.Sprintf("<p>Поступила жалоба <strong>%s</strong>.</p><p>Вопрос: %s</p><p>Описание: %s</p>",
			reference, questionText, description),
	}

	options := &resend.SendEmailOptions{IdempotencyKey: reference}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		_, err := s.client.Emails.SendWithOptions(ctx, params, options)
		if err == nil {
			return nil
		}
		lastErr = err

		if wait, ok := resendRetryDelay(err, attempt); ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
				continue
			}
		}

		return fmt.Errorf("resend send failed: %w", err)
	}

	return fmt.Errorf("resend send failed after retries: %w", lastErr)
}

func resendRetryDelay(err error, attempt int) (time.Duration, bool) {
	var rateLimitErr *resend.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if seconds, convErr := strconv.Atoi(strings.TrimSpace(rateLimitErr.RetryAfter)); convErr == nil && seconds > 0 {
			if seconds > 30 {
				seconds = 30
			}
			return time.Duration(seconds) * time.Second, true
		}
		return time.Duration(attempt+1) * time.Second, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "temporar") {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	return 0, false
}
