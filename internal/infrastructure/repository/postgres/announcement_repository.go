package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kwucouncil/council-api/internal/domain/announcement"
	qb "github.com/kwucouncil/council-api/internal/platform/querybuilder"
)

type AnnouncementRepository struct {
	db *sqlx.DB
}

func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) List(ctx context.Context, q announcement.Query) ([]announcement.Announcement, int, error) {
	builder := qb.Select("id", "title", "content", "image", "published_at", "created_at").From("announcements").
		OrderBy("published_at DESC", "id DESC").
		Limit(q.Limit).
		Offset(q.Offset)
	if q.Search != "" {
		builder.Where(qb.Or(
			qb.ILikeContains("title", q.Search),
			qb.ILikeContains("content", q.Search),
		))
	}

	countQuery, countArgs, err := builder.CountSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count announcements query: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count announcements: %w", err)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build list announcements query: %w", err)
	}
	var rows []announcementTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list announcements: %w", err)
	}

	out := make([]announcement.Announcement, 0, len(rows))
	for _, row := range rows {
		out = append(out, announcementFromRow(row))
	}
	return out, total, nil
}

func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (announcement.Announcement, bool, error) {
	query, args, err := qb.Select("id", "title", "content", "image", "published_at", "created_at").From("announcements").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return announcement.Announcement{}, false, fmt.Errorf("build get announcement query: %w", err)
	}

	var row announcementTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return announcement.Announcement{}, false, nil
		}
		return announcement.Announcement{}, false, fmt.Errorf("get announcement: %w", err)
	}
	return announcementFromRow(row), true, nil
}

func (r *AnnouncementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	query, args, err := qb.InsertModel("announcements", announcementInsertModel{
		Title:       a.Title,
		Content:     a.Content,
		Image:       a.Image,
		PublishedAt: a.PublishedAt,
	}, announcementReturning)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("build insert announcement query: %w", err)
	}

	var row announcementTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return announcement.Announcement{}, fmt.Errorf("insert announcement: %w", classifyError(err))
	}
	return announcementFromRow(row), nil
}

func announcementFromRow(row announcementTableModel) announcement.Announcement {
	return announcement.Announcement{
		ID:          row.ID,
		Title:       row.Title,
		Content:     row.Content,
		Image:       row.Image,
		PublishedAt: row.PublishedAt,
		CreatedAt:   row.CreatedAt,
	}
}
