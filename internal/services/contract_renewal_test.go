package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HSP-PORTAL/internal/models"
)

func TestCheckDecision(t *testing.T) {
	assert.NoError(t, checkDecision(models.RenewalPending, models.RenewalRenewed))
	assert.NoError(t, checkDecision(models.RenewalPending, models.RenewalDeclined))

	err := checkDecision(models.RenewalPending, models.RenewalPending)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid renewal decision")

	// A decided renewal cannot be decided again, in either direction
	for _, current := range []models.RenewalStatus{models.RenewalRenewed, models.RenewalDeclined} {
		err := checkDecision(current, models.RenewalRenewed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already decided")

		err = checkDecision(current, models.RenewalDeclined)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already decided")
	}
}

func TestValidateContractPeriod(t *testing.T) {
	assert.NoError(t, validateContractPeriod("2026-01-01", "2026-12-31"))
	assert.NoError(t, validateContractPeriod("2026-01-01", "2026-01-01"))

	err := validateContractPeriod("01/01/2026", "2026-12-31")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")

	err = validateContractPeriod("2026-01-01", "not-a-date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")

	err = validateContractPeriod("2026-12-31", "2026-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start date")
}
