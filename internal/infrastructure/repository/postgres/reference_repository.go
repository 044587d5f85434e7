package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kwucouncil/council-api/internal/domain/college"
	"github.com/kwucouncil/council-api/internal/domain/sport"
	"github.com/kwucouncil/council-api/internal/domain/venue"
	qb "github.com/kwucouncil/council-api/internal/platform/querybuilder"
)

type CollegeRepository struct {
	db *sqlx.DB
}

func NewCollegeRepository(db *sqlx.DB) *CollegeRepository {
	return &CollegeRepository{db: db}
}

func (r *CollegeRepository) List(ctx context.Context) ([]college.College, error) {
	query, args, err := qb.Select("id", "name", "name_eng").From("college").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select colleges query: %w", err)
	}

	var rows []collegeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select colleges: %w", err)
	}

	out := make([]college.College, 0, len(rows))
	for _, row := range rows {
		out = append(out, college.College{
			ID:      row.ID,
			Name:    row.Name,
			NameEng: nullStringValue(row.NameEng),
		})
	}
	return out, nil
}

type SportRepository struct {
	db *sqlx.DB
}

func NewSportRepository(db *sqlx.DB) *SportRepository {
	return &SportRepository{db: db}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	query, args, err := qb.Select("id", "name", "name_eng", "COALESCE(is_team_sport, false) AS is_team_sport").From("sport").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select sports query: %w", err)
	}

	var rows []sportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sports: %w", err)
	}

	out := make([]sport.Sport, 0, len(rows))
	for _, row := range rows {
		out = append(out, sport.Sport{
			ID:          row.ID,
			Name:        row.Name,
			NameEng:     nullStringValue(row.NameEng),
			IsTeamSport: row.IsTeamSport,
		})
	}
	return out, nil
}

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	query, args, err := qb.Select("id", "name", "location_note").From("venue").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select venues query: %w", err)
	}

	var rows []venueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}

	out := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		out = append(out, venue.Venue{
			ID:           row.ID,
			Name:         row.Name,
			LocationNote: nullStringValue(row.LocationNote),
		})
	}
	return out, nil
}
