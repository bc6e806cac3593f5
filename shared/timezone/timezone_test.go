package timezone_test

import (
	"jamat/shared/date"
	"jamat/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Cleanup(func() { timezone.Load("UTC") })

	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "iana name", zone: "Asia/Karachi", want: "Asia/Karachi"},
		{name: "empty", zone: "", want: "UTC"},
		{name: "unknown", zone: "Mars/Olympus", want: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := timezone.Load(tt.zone)

			assert.Equal(t, tt.want, loc.String())
			assert.Equal(t, tt.want, timezone.Location().String())
			assert.Equal(t, tt.want, timezone.Now().Location().String())
		})
	}
}

func TestTodayFollowsZone(t *testing.T) {
	t.Cleanup(func() { timezone.Load("UTC") })

	timezone.Load("Pacific/Kiritimati")

	assert.Equal(t, timezone.Now().Format(date.Layout), timezone.Today().String())
}

func TestFormat(t *testing.T) {
	t.Cleanup(func() { timezone.Load("UTC") })

	timezone.Load("Asia/Karachi")

	instant := time.Date(2025, 3, 1, 20, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-02 01:30", timezone.Format(instant, "2006-01-02 15:04"))
}

func TestParseDate(t *testing.T) {
	def := date.MustParse("2025-01-01")

	got, err := timezone.ParseDate("", def)
	require.NoError(t, err)
	assert.Equal(t, def, got)

	got, err = timezone.ParseDate("2025-02-14", def)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-14", got.String())

	_, err = timezone.ParseDate("14/02/2025", def)
	assert.Error(t, err)
}
