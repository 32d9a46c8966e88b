package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"HSP-PORTAL/internal/models"
)

func TestCanTransition_ReviewFlow(t *testing.T) {
	allowed := []struct {
		from, to models.ApplicationStatus
	}{
		{models.ApplicationDraft, models.ApplicationSubmitted},
		{models.ApplicationSubmitted, models.ApplicationReviewing},
		{models.ApplicationSubmitted, models.ApplicationRejected},
		{models.ApplicationReviewing, models.ApplicationAccepted},
		{models.ApplicationReviewing, models.ApplicationRejected},
		// A rejected application can be reopened for another review
		{models.ApplicationRejected, models.ApplicationReviewing},
	}
	for _, tc := range allowed {
		assert.True(t, canTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	blocked := []struct {
		from, to models.ApplicationStatus
	}{
		{models.ApplicationDraft, models.ApplicationReviewing},
		{models.ApplicationDraft, models.ApplicationAccepted},
		{models.ApplicationDraft, models.ApplicationRejected},
		{models.ApplicationSubmitted, models.ApplicationAccepted},
		{models.ApplicationSubmitted, models.ApplicationDraft},
		{models.ApplicationSubmitted, models.ApplicationSubmitted},
		{models.ApplicationReviewing, models.ApplicationSubmitted},
		{models.ApplicationReviewing, models.ApplicationDraft},
		{models.ApplicationRejected, models.ApplicationAccepted},
		{models.ApplicationRejected, models.ApplicationSubmitted},
	}
	for _, tc := range blocked {
		assert.False(t, canTransition(tc.from, tc.to), "%s -> %s should be blocked", tc.from, tc.to)
	}
}

func TestCanTransition_AcceptedIsTerminal(t *testing.T) {
	all := []models.ApplicationStatus{
		models.ApplicationDraft,
		models.ApplicationSubmitted,
		models.ApplicationReviewing,
		models.ApplicationAccepted,
		models.ApplicationRejected,
	}
	for _, to := range all {
		assert.False(t, canTransition(models.ApplicationAccepted, to), "accepted -> %s should be blocked", to)
	}
}
