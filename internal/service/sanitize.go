package service

import (
	"strings"

	"github.com/rmachado/landing-intake/models"
)

// maxFieldLength is the storage bound for every free-text field.
const maxFieldLength = 500

// sanitizeText normalizes one free-text form value: surrounding whitespace
// is trimmed, angle brackets are stripped to block stored-markup injection,
// and the result is truncated to maxFieldLength characters.
//
// Sanitization is idempotent: sanitizing already-sanitized text is a no-op.
func sanitizeText(value string) string {
	value = strings.TrimSpace(value)
	value = strings.ReplaceAll(value, "<", "")
	value = strings.ReplaceAll(value, ">", "")

	runes := []rune(value)
	if len(runes) > maxFieldLength {
		value = string(runes[:maxFieldLength])
	}

	return value
}

// parseStudyingFlag interprets the raw "estuda" checkbox value.
func parseStudyingFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sim", "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// sanitizeSubmission applies sanitizeText to every text field of the
// submission and produces the response record to be validated and stored.
// Server-assigned fields (ID, IPAddress, ImagePath, CreatedAt) stay zero.
func sanitizeSubmission(submission models.Submission) models.Response {
	return models.Response{
		FirstName:   sanitizeText(submission.FirstName),
		LastName:    sanitizeText(submission.LastName),
		Email:       sanitizeText(submission.Email),
		WhatsApp:    sanitizeText(submission.WhatsApp),
		City:        sanitizeText(submission.City),
		State:       sanitizeText(submission.State),
		Movement:    sanitizeText(submission.Movement),
		Union:       sanitizeText(submission.Union),
		Category:    sanitizeText(submission.Category),
		Employer:    sanitizeText(submission.Employer),
		Studying:    parseStudyingFlag(submission.Studying),
		Course:      sanitizeText(submission.Course),
		Institution: sanitizeText(submission.Institution),
		Message:     sanitizeText(submission.Message),
	}
}
