package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/saadtahsin/portfolio-backend/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from the Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ResendNotifier delivers contact notifications as emails through the Resend
// HTTP API instead of spawning the mailer process.
//
// Required configuration:
//   - RESEND_API_KEY: the Resend API key
//   - RESEND_FROM_EMAIL: sender address, e.g. "Portfolio <noreply@example.com>"
//   - CONTACT_EMAIL: site owner's inbox
type ResendNotifier struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
}

func NewResendNotifier(cfg map[string]string) ResendNotifier {
	return ResendNotifier{
		apiKey:    config.GetString(cfg, "RESEND_API_KEY", ""),
		fromEmail: config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		toEmail:   config.GetString(cfg, "CONTACT_EMAIL", ""),
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (r ResendNotifier) Notify(ctx context.Context, n ContactNotification) error {
	if r.apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY is not configured")
	}
	if r.fromEmail == "" || r.toEmail == "" {
		return fmt.Errorf("RESEND_FROM_EMAIL and CONTACT_EMAIL must be configured")
	}

	payload := ResendEmailRequest{
		From:    r.fromEmail,
		To:      []string{r.toEmail},
		Subject: fmt.Sprintf("New Contact Form Submission from %s", n.Name),
		Html: fmt.Sprintf(
			"<h2>New Contact Form Submission</h2><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong></p><p>%s</p>",
			html.EscapeString(n.Name), html.EscapeString(n.Email), html.EscapeString(n.Message)),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent contact notification via Resend")
	}

	return nil
}
