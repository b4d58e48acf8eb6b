package cosmicrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/cosmic"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/util"
)

// PostgresRepository reads and writes the daily_cosmic_events table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get implements cosmic.Repository.
func (r *PostgresRepository) Get(ctx context.Context, date time.Time) (cosmic.DailyEvents, bool, error) {
	var (
		ev        cosmic.DailyEvents
		eventDate time.Time
		moonSign  *string
		transits  []byte
		theme     *string
		rating    *int
	)
	err := r.pool.QueryRow(ctx, `
		SELECT event_date, moon_phase, moon_sign, planetary_transits::text, cosmic_events,
		       collective_energy_theme, manifestation_power_rating
		FROM daily_cosmic_events
		WHERE event_date = $1::date
		LIMIT 1
	`, date.Format(util.DateLayout)).Scan(&eventDate, &ev.MoonPhase, &moonSign, &transits, &ev.CosmicEvents, &theme, &rating)
	if errors.Is(err, pgx.ErrNoRows) {
		return cosmic.DailyEvents{}, false, nil
	}
	if err != nil {
		return cosmic.DailyEvents{}, false, err
	}
	ev.Date = eventDate.Format(util.DateLayout)
	if moonSign != nil {
		ev.MoonSign = *moonSign
	}
	if theme != nil {
		ev.CollectiveEnergyTheme = *theme
	}
	if rating != nil {
		ev.ManifestationPowerRating = *rating
	}
	if len(transits) > 0 {
		if err := json.Unmarshal(transits, &ev.PlanetaryTransits); err != nil {
			return cosmic.DailyEvents{}, false, fmt.Errorf("decode planetary_transits: %w", err)
		}
	}
	return ev, true, nil
}

// Upsert implements cosmic.Repository.
func (r *PostgresRepository) Upsert(ctx context.Context, events cosmic.DailyEvents) error {
	transits, err := json.Marshal(events.PlanetaryTransits)
	if err != nil {
		return fmt.Errorf("encode planetary_transits: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO daily_cosmic_events (
			event_date, moon_phase, moon_sign, planetary_transits, cosmic_events,
			collective_energy_theme, manifestation_power_rating
		)
		VALUES ($1::date, $2, NULLIF($3, ''), $4::jsonb, $5, $6, $7)
		ON CONFLICT (event_date) DO UPDATE SET
			moon_phase = EXCLUDED.moon_phase,
			moon_sign = EXCLUDED.moon_sign,
			planetary_transits = EXCLUDED.planetary_transits,
			cosmic_events = EXCLUDED.cosmic_events,
			collective_energy_theme = EXCLUDED.collective_energy_theme,
			manifestation_power_rating = EXCLUDED.manifestation_power_rating
	`, events.Date, events.MoonPhase, events.MoonSign, string(transits), events.CosmicEvents,
		events.CollectiveEnergyTheme, events.ManifestationPowerRating)
	return err
}

var _ cosmic.Repository = (*PostgresRepository)(nil)
