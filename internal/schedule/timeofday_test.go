package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drd/internal/models"
)

func TestParseTimeOfDay_Canonical(t *testing.T) {
	ct, ok := ParseTimeOfDay("10:00")
	require.True(t, ok)
	assert.Equal(t, models.CanonicalTime{Hour: 10, Minute: 0}, ct)
}

func TestParseTimeOfDay_SingleGroupIsFullHour(t *testing.T) {
	ct, ok := ParseTimeOfDay("9")
	require.True(t, ok)
	assert.Equal(t, models.CanonicalTime{Hour: 9, Minute: 0}, ct)
}

func TestParseTimeOfDay_SeparatorVariants(t *testing.T) {
	for _, raw := range []string{"09-30", "09.30", "09 30", "09h30", "::09::30::"} {
		ct, ok := ParseTimeOfDay(raw)
		require.True(t, ok, raw)
		assert.Equal(t, models.CanonicalTime{Hour: 9, Minute: 30}, ct, raw)
	}
}

func TestParseTimeOfDay_DevanagariDigits(t *testing.T) {
	ct, ok := ParseTimeOfDay("१८:३०")
	require.True(t, ok)
	assert.Equal(t, models.CanonicalTime{Hour: 18, Minute: 30}, ct)
}

func TestParseTimeOfDay_ArabicIndicDigits(t *testing.T) {
	ct, ok := ParseTimeOfDay("٢١:٠٥")
	require.True(t, ok)
	assert.Equal(t, models.CanonicalTime{Hour: 21, Minute: 5}, ct)
}

func TestParseTimeOfDay_PadsShortGroups(t *testing.T) {
	ct, ok := ParseTimeOfDay("7:5")
	require.True(t, ok)
	assert.Equal(t, models.CanonicalTime{Hour: 7, Minute: 5}, ct)
}

func TestParseTimeOfDay_TruncatesLongGroups(t *testing.T) {
	ct, ok := ParseTimeOfDay("123:456")
	require.True(t, ok)
	assert.Equal(t, models.CanonicalTime{Hour: 12, Minute: 45}, ct)
}

func TestParseTimeOfDay_ExtraGroupsIgnored(t *testing.T) {
	ct, ok := ParseTimeOfDay("18:30:59")
	require.True(t, ok)
	assert.Equal(t, models.CanonicalTime{Hour: 18, Minute: 30}, ct)
}

func TestParseTimeOfDay_HourOutOfRange(t *testing.T) {
	_, ok := ParseTimeOfDay("24:00")
	assert.False(t, ok)
}

func TestParseTimeOfDay_MinuteOutOfRange(t *testing.T) {
	_, ok := ParseTimeOfDay("10:75")
	assert.False(t, ok)
}

func TestParseTimeOfDay_NoDigits(t *testing.T) {
	for _, raw := range []string{"", "::", "soon", "--", "  "} {
		_, ok := ParseTimeOfDay(raw)
		assert.False(t, ok, raw)
	}
}

func TestParseTimeOfDay_MidnightBoundary(t *testing.T) {
	ct, ok := ParseTimeOfDay("00:00")
	require.True(t, ok)
	assert.Equal(t, models.CanonicalTime{Hour: 0, Minute: 0}, ct)

	ct, ok = ParseTimeOfDay("23:59")
	require.True(t, ok)
	assert.Equal(t, models.CanonicalTime{Hour: 23, Minute: 59}, ct)
}

func TestCanonicalTime_String(t *testing.T) {
	assert.Equal(t, "08:05", models.CanonicalTime{Hour: 8, Minute: 5}.String())
	assert.Equal(t, "23:59", models.CanonicalTime{Hour: 23, Minute: 59}.String())
}
