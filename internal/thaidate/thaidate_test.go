package thaidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayMonthYear(t *testing.T) {
	assert.Equal(t, "15", Day("2024-03-15"))
	assert.Equal(t, "มีนาคม", MonthName("2024-03-15"))
	assert.Equal(t, "2024", Year("2024-03-15"))
}

func TestFullDate_KeepsGregorianYear(t *testing.T) {
	assert.Equal(t, "15 มีนาคม 2024", FullDate("2024-03-15"))
}

func TestBuddhistSlashDate(t *testing.T) {
	assert.Equal(t, "15/3/2567", BuddhistSlashDate("2024-03-15"))
	assert.Equal(t, "1/1/2543", BuddhistSlashDate("2000-01-01"))
}

func TestFullAndSlashDiverge_OnlyInYear(t *testing.T) {
	// Same date, two render forms: one Gregorian, one Buddhist era.
	assert.Contains(t, FullDate("2024-03-15"), "2024")
	assert.Contains(t, BuddhistSlashDate("2024-03-15"), "2567")
}

func TestInvalidInputsRenderEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-date", "2024-13-40", "99999"} {
		assert.Empty(t, Day(input), "Day(%q)", input)
		assert.Empty(t, MonthName(input), "MonthName(%q)", input)
		assert.Empty(t, Year(input), "Year(%q)", input)
		assert.Empty(t, FullDate(input), "FullDate(%q)", input)
		assert.Empty(t, BuddhistSlashDate(input), "BuddhistSlashDate(%q)", input)
	}
}

func TestTimestampInputTruncatesToDate(t *testing.T) {
	assert.Equal(t, "15", Day("2024-03-15T08:30:00Z"))
	assert.Equal(t, "2024", Year("2024-03-15T23:59:59+07:00"))
}
