package postgres

import "database/sql"

type collegeTableModel struct {
	ID      int64          `db:"id"`
	Name    string         `db:"name"`
	NameEng sql.NullString `db:"name_eng"`
}

type sportTableModel struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	NameEng     sql.NullString `db:"name_eng"`
	IsTeamSport bool           `db:"is_team_sport"`
}

type venueTableModel struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	LocationNote sql.NullString `db:"location_note"`
}

type departmentTableModel struct {
	ID             int64          `db:"id"`
	Name           string         `db:"name"`
	NameEng        sql.NullString `db:"name_eng"`
	LogoURL        sql.NullString `db:"logo_url"`
	Score          int            `db:"score"`
	CollegeID      sql.NullInt64  `db:"college_id"`
	CollegeName    sql.NullString `db:"college_name"`
	CollegeNameEng sql.NullString `db:"college_name_eng"`
}

type futsalStandingTableModel struct {
	ID           int64          `db:"id"`
	DepartmentID sql.NullInt64  `db:"department_id"`
	Name         sql.NullString `db:"department_name"`
	NameEng      sql.NullString `db:"department_name_eng"`
	LogoURL      sql.NullString `db:"department_logo_url"`
	GroupName    sql.NullString `db:"group_name"`
	Matches      int            `db:"matches"`
	Wins         int            `db:"wins"`
	Draws        int            `db:"draws"`
	Losses       int            `db:"losses"`
	GoalsFor     int            `db:"goals_for"`
	GoalsAgainst int            `db:"goals_against"`
	Points       int            `db:"points"`
	Wildcard     bool           `db:"wildcard"`
}
