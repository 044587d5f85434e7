package postgres

import "time"

type predictionTableModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	StudentID   string    `db:"student_id"`
	Phone       string    `db:"phone"`
	FirstPlace  int64     `db:"first_place"`
	SecondPlace int64     `db:"second_place"`
	ThirdPlace  int64     `db:"third_place"`
	CreatedAt   time.Time `db:"created_at"`
}

type predictionInsertModel struct {
	Name        string    `db:"name"`
	StudentID   string    `db:"student_id"`
	Phone       string    `db:"phone"`
	FirstPlace  int64     `db:"first_place"`
	SecondPlace int64     `db:"second_place"`
	ThirdPlace  int64     `db:"third_place"`
	CreatedAt   time.Time `db:"created_at"`
}

type announcementTableModel struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	Image       string    `db:"image"`
	PublishedAt time.Time `db:"published_at"`
	CreatedAt   time.Time `db:"created_at"`
}

type announcementInsertModel struct {
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	Image       string    `db:"image"`
	PublishedAt time.Time `db:"published_at"`
}

type minutesTableModel struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	FileURL   string    `db:"file_url"`
	Date      string    `db:"date"`
	CreatedAt time.Time `db:"created_at"`
}

type minutesInsertModel struct {
	Title   string `db:"title"`
	FileURL string `db:"file_url"`
	Date    string `db:"date"`
}

const (
	predictionReturning   = "RETURNING id, name, student_id, phone, first_place, second_place, third_place, created_at"
	announcementReturning = "RETURNING id, title, content, image, published_at, created_at"
	minutesReturning      = "RETURNING id, title, file_url, date::text AS date, created_at"
)

var minutesColumns = []string{"id", "title", "file_url", "date::text AS date", "created_at"}
