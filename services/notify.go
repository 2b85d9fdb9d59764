package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/dalemartenxen/PECE-Portfolio/config"
	"github.com/dalemartenxen/PECE-Portfolio/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// SendEmail sends a plain-text email using the Resend API.
//
// Requires environment variables:
//   - RESEND_API_KEY: the Resend API key
//   - RESEND_FROM_EMAIL: the sender address (e.g. "PECE <hello@pece.dev>")
func SendEmail(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	cfg := config.New()

	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	if apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY environment variable is required")
	}
	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "PECE Portfolio <onboarding@resend.dev>")

	reqBody := ResendEmailRequest{
		From:    fromEmail,
		To:      recipients,
		Subject: subject,
		Text:    body,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("creating email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending email request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading email response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ResendErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}

	var emailResp ResendEmailResponse
	if err := json.Unmarshal(respBody, &emailResp); err == nil && emailResp.ID != "" {
		log.Debug().Str("emailID", emailResp.ID).Msg("Email sent")
	}

	return nil
}

// NotifyContactSubmission emails the configured inbox about a new
// contact-form submission. Missing CONTACT_NOTIFY_EMAIL disables the
// notification rather than failing the submission.
func NotifyContactSubmission(sub models.ContactSubmission) error {
	recipient := config.GetString(config.New(), "CONTACT_NOTIFY_EMAIL", "")
	if recipient == "" {
		log.Debug().Msg("CONTACT_NOTIFY_EMAIL not set, skipping contact notification")
		return nil
	}

	company := "-"
	if sub.Company != nil {
		company = *sub.Company
	}
	service := "-"
	if sub.Service != nil {
		service = *sub.Service
	}

	subject := fmt.Sprintf("New contact submission from %s", sub.Name)
	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nCompany: %s\nService: %s\nSubmitted: %s\n\n%s\n",
		sub.Name, sub.Email, company, service,
		sub.CreatedAt.Format("2006-01-02 15:04:05 MST"),
		sub.Message,
	)

	return SendEmail(subject, body, []string{recipient})
}
