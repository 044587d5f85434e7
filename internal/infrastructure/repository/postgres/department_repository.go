package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kwucouncil/council-api/internal/domain/department"
	"github.com/kwucouncil/council-api/internal/domain/standing"
	qb "github.com/kwucouncil/council-api/internal/platform/querybuilder"
)

var departmentColumns = []string{
	"d.id",
	"d.name",
	"d.name_eng",
	"d.logo_url",
	"COALESCE(d.score, 0) AS score",
	"d.college_id",
	"c.name AS college_name",
	"c.name_eng AS college_name_eng",
}

const departmentFrom = "department d LEFT JOIN college c ON c.id = d.college_id"

type DepartmentRepository struct {
	db *sqlx.DB
}

func NewDepartmentRepository(db *sqlx.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) List(ctx context.Context, filter department.Filter) ([]department.Department, error) {
	var conditions []qb.Condition
	if filter.CollegeID != nil {
		conditions = append(conditions, qb.Eq("d.college_id", *filter.CollegeID))
	}
	if filter.Search != "" {
		conditions = append(conditions, qb.Or(
			qb.ILikeContains("d.name", filter.Search),
			qb.ILikeContains("d.name_eng", filter.Search),
		))
	}

	query, args, err := qb.Select(departmentColumns...).From(departmentFrom).
		Where(conditions...).
		OrderBy("d.name", "d.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select departments query: %w", err)
	}

	var rows []departmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select departments: %w", err)
	}

	out := make([]department.Department, 0, len(rows))
	for _, row := range rows {
		out = append(out, departmentFromRow(row))
	}
	return out, nil
}

func (r *DepartmentRepository) FindByExactName(ctx context.Context, name string) (department.Department, bool, error) {
	return r.findFirst(ctx, "exact name", qb.Or(
		qb.Expr("LOWER(d.name) = LOWER(?)", name),
		qb.Expr("LOWER(d.name_eng) = LOWER(?)", name),
	))
}

func (r *DepartmentRepository) FindByNameFragment(ctx context.Context, fragment string) (department.Department, bool, error) {
	return r.findFirst(ctx, "name fragment", qb.Or(
		qb.ILikeContains("d.name", fragment),
		qb.ILikeContains("d.name_eng", fragment),
	))
}

func (r *DepartmentRepository) findFirst(ctx context.Context, label string, condition qb.Condition) (department.Department, bool, error) {
	query, args, err := qb.Select(departmentColumns...).From(departmentFrom).
		Where(condition).
		OrderBy("d.id").
		Limit(1).
		ToSQL()
	if err != nil {
		return department.Department{}, false, fmt.Errorf("build find department by %s query: %w", label, err)
	}

	var row departmentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return department.Department{}, false, nil
		}
		return department.Department{}, false, fmt.Errorf("find department by %s: %w", label, err)
	}
	return departmentFromRow(row), true, nil
}

func departmentFromRow(row departmentTableModel) department.Department {
	return department.Department{
		ID:             row.ID,
		Name:           row.Name,
		NameEng:        nullStringValue(row.NameEng),
		LogoURL:        nullStringValue(row.LogoURL),
		Score:          row.Score,
		CollegeID:      nullInt64Ptr(row.CollegeID),
		CollegeName:    nullStringValue(row.CollegeName),
		CollegeNameEng: nullStringValue(row.CollegeNameEng),
	}
}

type FutsalStandingRepository struct {
	db *sqlx.DB
}

func NewFutsalStandingRepository(db *sqlx.DB) *FutsalStandingRepository {
	return &FutsalStandingRepository{db: db}
}

func (r *FutsalStandingRepository) ListFutsal(ctx context.Context) ([]standing.FutsalRow, error) {
	query, args, err := qb.Select(
		"fs.id",
		"fs.department_id",
		"d.name AS department_name",
		"d.name_eng AS department_name_eng",
		"d.logo_url AS department_logo_url",
		"fs.group_name",
		"COALESCE(fs.matches, 0) AS matches",
		"COALESCE(fs.wins, 0) AS wins",
		"COALESCE(fs.draws, 0) AS draws",
		"COALESCE(fs.losses, 0) AS losses",
		"COALESCE(fs.goals_for, 0) AS goals_for",
		"COALESCE(fs.goals_against, 0) AS goals_against",
		"COALESCE(fs.points, 0) AS points",
		"COALESCE(fs.wildcard, false) AS wildcard",
	).
		From("futsal_standings fs LEFT JOIN department d ON d.id = fs.department_id").
		OrderBy("fs.group_name", "fs.points DESC", "fs.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select futsal standings query: %w", err)
	}

	var rows []futsalStandingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select futsal standings: %w", err)
	}

	out := make([]standing.FutsalRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.FutsalRow{
			ID:           row.ID,
			DepartmentID: nullInt64Ptr(row.DepartmentID),
			Name:         nullStringValue(row.Name),
			NameEng:      nullStringValue(row.NameEng),
			LogoURL:      nullStringValue(row.LogoURL),
			GroupName:    nullStringValue(row.GroupName),
			Matches:      row.Matches,
			Wins:         row.Wins,
			Draws:        row.Draws,
			Losses:       row.Losses,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			Points:       row.Points,
			Wildcard:     row.Wildcard,
		})
	}
	return out, nil
}
