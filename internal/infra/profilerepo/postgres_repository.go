package profilerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/guidance"
)

// PostgresRepository reads and writes user_spiritual_profiles.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get implements guidance.ProfileRepository.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (guidance.SpiritualProfile, bool, error) {
	var (
		p        guidance.SpiritualProfile
		lifePath *int
		contract *string
		akashic  *string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT user_id::text, life_path_number, personal_spirit_guides, soul_contract,
		       starseed_origins, akashic_records_access_level
		FROM user_spiritual_profiles
		WHERE user_id = $1::uuid
		LIMIT 1
	`, userID).Scan(&p.UserID, &lifePath, &p.PersonalSpiritGuides, &contract, &p.StarseedOrigins, &akashic)
	if errors.Is(err, pgx.ErrNoRows) {
		return guidance.SpiritualProfile{}, false, nil
	}
	if err != nil {
		return guidance.SpiritualProfile{}, false, err
	}
	if lifePath != nil {
		p.LifePathNumber = *lifePath
	}
	if contract != nil {
		p.SoulContract = *contract
	}
	if akashic != nil {
		p.AkashicAccessLevel = *akashic
	}
	return p, true, nil
}

// Upsert implements guidance.ProfileRepository.
func (r *PostgresRepository) Upsert(ctx context.Context, p guidance.SpiritualProfile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_spiritual_profiles (
			user_id, life_path_number, personal_spirit_guides, soul_contract,
			starseed_origins, akashic_records_access_level, updated_at
		)
		VALUES ($1::uuid, NULLIF($2, 0), $3, NULLIF($4, ''), $5, NULLIF($6, ''), now())
		ON CONFLICT (user_id) DO UPDATE SET
			life_path_number = EXCLUDED.life_path_number,
			personal_spirit_guides = EXCLUDED.personal_spirit_guides,
			soul_contract = EXCLUDED.soul_contract,
			starseed_origins = EXCLUDED.starseed_origins,
			akashic_records_access_level = EXCLUDED.akashic_records_access_level,
			updated_at = now()
	`, p.UserID, p.LifePathNumber, p.PersonalSpiritGuides, p.SoulContract, p.StarseedOrigins, p.AkashicAccessLevel)
	return err
}

var _ guidance.ProfileRepository = (*PostgresRepository)(nil)
