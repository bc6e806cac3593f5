package timezone

import (
	"jamat/config"
	"jamat/shared/date"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var location atomic.Pointer[time.Location]

func init() {
	Load(config.Get().App.Timezone)
}

// Load switches the application timezone and returns the location in effect.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")
		location.Store(time.UTC)

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, falling back to UTC")
		location.Store(time.UTC)

		return time.UTC
	}

	location.Store(loc)
	log.Debug().Str("timezone", loc.String()).Msg("Application timezone loaded")

	return loc
}

func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(Location())
}

func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// Today is the current calendar day in the application timezone.
func Today() date.Date {
	return date.Of(Now())
}

// ParseDate parses a YYYY-MM-DD value. An empty value yields def.
func ParseDate(value string, def date.Date) (date.Date, error) {
	if value == "" {
		return def, nil
	}

	return date.Parse(value)
}
