package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridianhr/pathfinder/internal/domain"
)

// ProfileRepository reads employee profile snapshots. The engine never
// writes profiles; the user-record store owns them.
type ProfileRepository struct {
	db dbtx
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: pool}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	var certsJSON, prefsJSON []byte
	err := r.db.QueryRow(ctx,
		`SELECT id, name, role, department, skills, interests, certifications, career_preferences, leave_balance
		 FROM profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Role, &p.Department, &p.Skills, &p.Interests, &certsJSON, &prefsJSON, &p.LeaveBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	// Malformed structured fields are treated as absent, not fatal.
	if len(certsJSON) > 0 {
		if err := json.Unmarshal(certsJSON, &p.Certifications); err != nil {
			log.Printf("profile %s: unparseable certifications, treating as empty: %v", p.ID, err)
			p.Certifications = nil
		}
	}
	if len(prefsJSON) > 0 {
		var prefs domain.CareerPreferences
		if err := json.Unmarshal(prefsJSON, &prefs); err != nil {
			log.Printf("profile %s: unparseable career preferences, treating as empty: %v", p.ID, err)
		} else {
			p.Preferences = &prefs
		}
	}

	return &p, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	certsJSON, err := json.Marshal(p.Certifications)
	if err != nil {
		return err
	}

	var prefsJSON []byte
	if p.Preferences != nil {
		prefsJSON, err = json.Marshal(p.Preferences)
		if err != nil {
			return err
		}
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO profiles (id, name, role, department, skills, interests, certifications, career_preferences, leave_balance)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO NOTHING`,
		p.ID, p.Name, p.Role, p.Department, p.Skills, p.Interests, certsJSON, prefsJSON, p.LeaveBalance,
	)
	return err
}
