package timezone

import (
	"fmt"
	"sync/atomic"
	"time"

	"luxhome/config"

	"github.com/rs/zerolog/log"
)

const defaultZone = "UTC"

var location atomic.Pointer[time.Location]

func init() {
	name := config.Get().App.Timezone

	if err := Set(name); err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, record timestamps fall back to UTC")

		return
	}

	log.Debug().Str("timezone", Location().String()).Msg("Record timezone loaded")
}

// Set switches the zone used for record timestamps. An empty name selects UTC.
func Set(name string) error {
	if name == "" {
		name = defaultZone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		location.Store(time.UTC)

		return fmt.Errorf("load timezone %q: %w", name, err)
	}

	location.Store(loc)

	return nil
}

func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now stamps created_at and modified_at columns.
func Now() time.Time {
	return time.Now().In(Location())
}

// Format renders t in the record zone. A zero time renders as an empty string.
func Format(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}

	return t.In(Location()).Format(layout)
}
