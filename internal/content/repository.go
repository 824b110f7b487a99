// AngelaMos | 2026
// repository.go

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cricketacademy/academy-api/internal/core"
)

type Repository interface {
	ListPlayers(ctx context.Context) ([]StarPlayer, error)
	GetPlayer(ctx context.Context, id string) (*StarPlayer, error)
	CreatePlayer(ctx context.Context, p *StarPlayer) error
	// UpdatePlayer replaces the stored stats and tournaments with p's.
	UpdatePlayer(ctx context.Context, p *StarPlayer) error
	DeletePlayer(ctx context.Context, id string) error

	ListFacilities(ctx context.Context) ([]Facility, error)
	GetFacility(ctx context.Context, id string) (*Facility, error)
	CreateFacility(ctx context.Context, f *Facility) error
	UpdateFacility(ctx context.Context, f *Facility) error
	DeleteFacility(ctx context.Context, id string) error

	GetHero(ctx context.Context) (*HeroImage, error)
	SetHero(ctx context.Context, imageURL string) (*HeroImage, error)
	ClearHero(ctx context.Context) error

	// Reorder applies every item in one transaction and reports how many
	// rows matched. Unknown ids are skipped.
	Reorder(ctx context.Context, target ReorderTarget, items []SortItem) (int, error)
}

type ReorderTarget string

const (
	ReorderPlayers    ReorderTarget = "star_players"
	ReorderFacilities ReorderTarget = "facility_items"
)

type repository struct {
	db core.TxBeginner
}

func NewRepository(db core.TxBeginner) Repository {
	return &repository{db: db}
}

const playerColumns = `id, name, photo_url, achievements, player_types, represents,
	sort_order, created_at, updated_at`

const facilityColumns = `id, title, description, image_url, features, sort_order,
	created_at, updated_at`

func (r *repository) ListPlayers(ctx context.Context) ([]StarPlayer, error) {
	var players []StarPlayer
	if err := r.db.SelectContext(ctx, &players,
		`SELECT `+playerColumns+` FROM star_players ORDER BY sort_order, created_at`,
	); err != nil {
		return nil, fmt.Errorf("list star players: %w", err)
	}
	if len(players) == 0 {
		return players, nil
	}

	ids := make([]string, len(players))
	for i := range players {
		ids[i] = players[i].ID
	}
	stats, tournaments, err := loadChildren(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range players {
		players[i].Stats = stats[players[i].ID]
		players[i].Tournaments = tournaments[players[i].ID]
	}
	return players, nil
}

func loadChildren(
	ctx context.Context,
	db core.DBTX,
	playerIDs []string,
) (map[string][]PlayerStat, map[string][]Tournament, error) {
	query, args, err := sqlx.In(`
		SELECT id, player_id, year, runs, wickets, matches, centuries,
		       half_centuries, strike_rate, economy_rate, average
		FROM star_player_stats
		WHERE player_id IN (?)
		ORDER BY year DESC`, playerIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("build stats query: %w", err)
	}
	var stats []PlayerStat
	if err := db.SelectContext(ctx, &stats, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		return nil, nil, fmt.Errorf("list player stats: %w", err)
	}

	query, args, err = sqlx.In(`
		SELECT id, player_id, name, month, year, runs, wickets, matches
		FROM star_player_tournaments
		WHERE player_id IN (?)
		ORDER BY year DESC, name`, playerIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("build tournaments query: %w", err)
	}
	var tournaments []Tournament
	if err := db.SelectContext(ctx, &tournaments, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		return nil, nil, fmt.Errorf("list player tournaments: %w", err)
	}

	statsBy := make(map[string][]PlayerStat, len(playerIDs))
	for _, s := range stats {
		statsBy[s.PlayerID] = append(statsBy[s.PlayerID], s)
	}
	tournamentsBy := make(map[string][]Tournament, len(playerIDs))
	for _, t := range tournaments {
		tournamentsBy[t.PlayerID] = append(tournamentsBy[t.PlayerID], t)
	}
	return statsBy, tournamentsBy, nil
}

func (r *repository) GetPlayer(ctx context.Context, id string) (*StarPlayer, error) {
	var p StarPlayer
	err := r.db.GetContext(ctx, &p, `SELECT `+playerColumns+` FROM star_players WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get star player: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get star player: %w", err)
	}

	stats, tournaments, err := loadChildren(ctx, r.db, []string{id})
	if err != nil {
		return nil, err
	}
	p.Stats = stats[id]
	p.Tournaments = tournaments[id]
	return &p, nil
}

func (r *repository) CreatePlayer(ctx context.Context, p *StarPlayer) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO star_players (id, name, photo_url, achievements,
			                          player_types, represents, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at, updated_at`

		err := tx.QueryRowxContext(ctx, query,
			p.ID, p.Name, p.PhotoURL, p.Achievements,
			p.PlayerTypes, p.Represents, p.SortOrder,
		).Scan(&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("create star player: %w", err)
		}
		return insertChildren(ctx, tx, p)
	})
}

func (r *repository) UpdatePlayer(ctx context.Context, p *StarPlayer) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE star_players SET
				name = $2, photo_url = $3, achievements = $4, player_types = $5,
				represents = $6, sort_order = $7, updated_at = NOW()
			WHERE id = $1
			RETURNING updated_at`

		err := tx.GetContext(ctx, &p.UpdatedAt, query,
			p.ID, p.Name, p.PhotoURL, p.Achievements,
			p.PlayerTypes, p.Represents, p.SortOrder,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("update star player: %w", core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("update star player: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM star_player_stats WHERE player_id = $1`, p.ID); err != nil {
			return fmt.Errorf("clear player stats: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM star_player_tournaments WHERE player_id = $1`, p.ID); err != nil {
			return fmt.Errorf("clear player tournaments: %w", err)
		}
		return insertChildren(ctx, tx, p)
	})
}

func insertChildren(ctx context.Context, tx *sqlx.Tx, p *StarPlayer) error {
	for _, s := range p.Stats {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO star_player_stats (id, player_id, year, runs, wickets,
			                               matches, centuries, half_centuries,
			                               strike_rate, economy_rate, average)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			s.ID, p.ID, s.Year, s.Runs, s.Wickets,
			s.Matches, s.Centuries, s.HalfCenturies,
			s.StrikeRate, s.EconomyRate, s.Average,
		); err != nil {
			return fmt.Errorf("insert player stat: %w", err)
		}
	}

	for _, t := range p.Tournaments {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO star_player_tournaments (id, player_id, name, month, year,
			                                     runs, wickets, matches)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			t.ID, p.ID, t.Name, t.Month, t.Year, t.Runs, t.Wickets, t.Matches,
		); err != nil {
			return fmt.Errorf("insert player tournament: %w", err)
		}
	}
	return nil
}

func (r *repository) DeletePlayer(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "star_players", id)
}

func (r *repository) ListFacilities(ctx context.Context) ([]Facility, error) {
	var facilities []Facility
	if err := r.db.SelectContext(ctx, &facilities,
		`SELECT `+facilityColumns+` FROM facility_items ORDER BY sort_order, created_at`,
	); err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	return facilities, nil
}

func (r *repository) GetFacility(ctx context.Context, id string) (*Facility, error) {
	var f Facility
	err := r.db.GetContext(ctx, &f, `SELECT `+facilityColumns+` FROM facility_items WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get facility: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}
	return &f, nil
}

func (r *repository) CreateFacility(ctx context.Context, f *Facility) error {
	query := `
		INSERT INTO facility_items (id, title, description, image_url, features, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		f.ID, f.Title, f.Description, f.ImageURL, f.Features, f.SortOrder,
	).Scan(&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create facility: %w", err)
	}
	return nil
}

func (r *repository) UpdateFacility(ctx context.Context, f *Facility) error {
	query := `
		UPDATE facility_items SET
			title = $2, description = $3, image_url = $4, features = $5,
			sort_order = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &f.UpdatedAt, query,
		f.ID, f.Title, f.Description, f.ImageURL, f.Features, f.SortOrder,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update facility: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update facility: %w", err)
	}
	return nil
}

func (r *repository) DeleteFacility(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "facility_items", id)
}

func (r *repository) GetHero(ctx context.Context) (*HeroImage, error) {
	var h HeroImage
	err := r.db.GetContext(ctx, &h, `SELECT image_url, updated_at FROM hero_image WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get hero image: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get hero image: %w", err)
	}
	return &h, nil
}

func (r *repository) SetHero(ctx context.Context, imageURL string) (*HeroImage, error) {
	query := `
		INSERT INTO hero_image (id, image_url) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET image_url = EXCLUDED.image_url, updated_at = NOW()
		RETURNING image_url, updated_at`

	var h HeroImage
	if err := r.db.GetContext(ctx, &h, query, imageURL); err != nil {
		return nil, fmt.Errorf("set hero image: %w", err)
	}
	return &h, nil
}

func (r *repository) ClearHero(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM hero_image WHERE id = 1`); err != nil {
		return fmt.Errorf("clear hero image: %w", err)
	}
	return nil
}

func (r *repository) Reorder(ctx context.Context, target ReorderTarget, items []SortItem) (int, error) {
	var updated int
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `UPDATE ` + string(target) + ` SET sort_order = $2, updated_at = NOW() WHERE id = $1`
		for _, item := range items {
			result, err := tx.ExecContext(ctx, query, item.ID, item.SortOrder)
			if err != nil {
				return fmt.Errorf("reorder %s: %w", target, err)
			}
			n, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("reorder %s: %w", target, err)
			}
			updated += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func deleteByID(ctx context.Context, db core.DBTX, table, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if rows == 0 {
		return fmt.Errorf("delete from %s: %w", table, core.ErrNotFound)
	}
	return nil
}
