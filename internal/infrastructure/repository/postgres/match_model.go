package postgres

import (
	"database/sql"

	"github.com/kwucouncil/council-api/internal/domain/match"
)

type matchTableModel struct {
	ID           int64          `db:"id"`
	MatchDate    string         `db:"match_date"`
	PeriodStart  int            `db:"period_start"`
	IsPlayed     bool           `db:"is_played"`
	RainCanceled bool           `db:"rain_canceled"`
	AdminNote    sql.NullString `db:"admin_note"`
	SportID      sql.NullInt64  `db:"sport_id"`
	SportName    string         `db:"sport_name"`
	SportNameEng string         `db:"sport_name_eng"`
	VenueID      sql.NullInt64  `db:"venue_id"`
	VenueName    string         `db:"venue_name"`
	CreatedAt    sql.NullTime   `db:"created_at"`
	UpdatedAt    sql.NullTime   `db:"updated_at"`
}

type participationTableModel struct {
	ID                int64          `db:"id"`
	MatchID           int64          `db:"match_id"`
	Side              string         `db:"side"`
	Score             int            `db:"score"`
	DepartmentID      sql.NullInt64  `db:"department_id"`
	DepartmentName    sql.NullString `db:"department_name"`
	DepartmentNameEng sql.NullString `db:"department_name_eng"`
	DepartmentLogo    sql.NullString `db:"department_logo_url"`
	CollegeID         sql.NullInt64  `db:"college_id"`
}

type matchStatusModel struct {
	ID           int64          `db:"id"`
	IsPlayed     bool           `db:"is_played"`
	RainCanceled bool           `db:"rain_canceled"`
	AdminNote    sql.NullString `db:"admin_note"`
}

var matchColumns = []string{
	"m.id",
	"m.match_date::text AS match_date",
	"m.period_start",
	"m.is_played",
	"m.rain_canceled",
	"m.admin_note",
	"m.sport_id",
	"COALESCE(s.name, '') AS sport_name",
	"COALESCE(s.name_eng, '') AS sport_name_eng",
	"m.venue_id",
	"COALESCE(v.name, '') AS venue_name",
	"m.created_at",
	"m.updated_at",
}

const matchFrom = "match m LEFT JOIN sport s ON s.id = m.sport_id LEFT JOIN venue v ON v.id = m.venue_id"

var participationColumns = []string{
	"p.id",
	"p.match_id",
	"p.side",
	"COALESCE(p.score, 0) AS score",
	"p.department_id",
	"d.name AS department_name",
	"d.name_eng AS department_name_eng",
	"d.logo_url AS department_logo_url",
	"d.college_id",
}

const participationFrom = "participation p LEFT JOIN department d ON d.id = p.department_id"

// matchSortColumns is the allow-list of sortable columns.
var matchSortColumns = map[string]string{
	"id":            "m.id",
	"match_date":    "m.match_date",
	"period_start":  "m.period_start",
	"is_played":     "m.is_played",
	"rain_canceled": "m.rain_canceled",
	"sport_id":      "m.sport_id",
	"created_at":    "m.created_at",
	"updated_at":    "m.updated_at",
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:           row.ID,
		Date:         row.MatchDate,
		PeriodStart:  row.PeriodStart,
		IsPlayed:     row.IsPlayed,
		RainCanceled: row.RainCanceled,
		AdminNote:    nullStringPtr(row.AdminNote),
		SportID:      nullInt64Ptr(row.SportID),
		SportName:    row.SportName,
		SportNameEng: row.SportNameEng,
		VenueID:      nullInt64Ptr(row.VenueID),
		VenueName:    row.VenueName,
		CreatedAt:    nullTimePtr(row.CreatedAt),
		UpdatedAt:    nullTimePtr(row.UpdatedAt),
	}
}

func participationFromRow(row participationTableModel) match.Participation {
	p := match.Participation{
		ID:      row.ID,
		MatchID: row.MatchID,
		Side:    match.Side(row.Side),
		Score:   row.Score,
	}
	if row.DepartmentID.Valid && row.DepartmentName.Valid {
		p.Department = &match.Team{
			ID:        row.DepartmentID.Int64,
			Name:      row.DepartmentName.String,
			NameEng:   nullStringValue(row.DepartmentNameEng),
			LogoURL:   nullStringValue(row.DepartmentLogo),
			CollegeID: nullInt64Ptr(row.CollegeID),
		}
	}
	return p
}
