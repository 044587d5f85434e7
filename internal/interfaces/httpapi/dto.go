package httpapi

import (
	"time"

	"github.com/kwucouncil/council-api/internal/domain/announcement"
	"github.com/kwucouncil/council-api/internal/domain/college"
	"github.com/kwucouncil/council-api/internal/domain/department"
	"github.com/kwucouncil/council-api/internal/domain/match"
	"github.com/kwucouncil/council-api/internal/domain/minutes"
	"github.com/kwucouncil/council-api/internal/domain/prediction"
	"github.com/kwucouncil/council-api/internal/domain/sport"
	"github.com/kwucouncil/council-api/internal/domain/standing"
	"github.com/kwucouncil/council-api/internal/domain/venue"
	"github.com/kwucouncil/council-api/internal/platform/medialink"
)

type announcementDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type minutesDTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	FileURL   string    `json:"file_url"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

type predictionDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	StudentID   string    `json:"student_id"`
	Phone       string    `json:"phone"`
	FirstPlace  int64     `json:"first_place"`
	SecondPlace int64     `json:"second_place"`
	ThirdPlace  int64     `json:"third_place"`
	CreatedAt   time.Time `json:"created_at"`
}

type pageDTO[T any] struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Items []T `json:"items"`
}

type dataDTO[T any] struct {
	Data T `json:"data"`
}

type matchTeamDTO struct {
	ID      *int64 `json:"id"`
	Name    string `json:"name"`
	NameEng string `json:"name_eng"`
	Logo    string `json:"logo"`
	LogoRaw string `json:"logo_raw"`
	Score   int    `json:"score"`
}

type matchDTO struct {
	ID     int64         `json:"id"`
	Date   string        `json:"date"`
	Start  int           `json:"start"`
	Place  string        `json:"place"`
	Sport  string        `json:"sport"`
	Team1  matchTeamDTO  `json:"team1"`
	Team2  matchTeamDTO  `json:"team2"`
	Rain   bool          `json:"rain"`
	Result bool          `json:"result"`
	Win    *match.Winner `json:"win"`
}

type matchPageDTO struct {
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Total    int        `json:"total"`
	Items    []matchDTO `json:"items"`
}

type recentResultsDTO struct {
	Count int        `json:"count"`
	Items []matchDTO `json:"items"`
}

type standingDTO struct {
	Rank    int    `json:"rank"`
	Name    string `json:"name"`
	NameEng string `json:"name_eng"`
	Logo    string `json:"logo"`
	LogoRaw string `json:"logo_raw"`
	Score   int    `json:"score"`
}

type standingsDTO struct {
	SportID   *int64        `json:"sport_id"`
	UpdatedAt *string       `json:"updated_at"`
	Standings []standingDTO `json:"standings"`
}

type futsalRowDTO struct {
	Rank           int    `json:"rank"`
	Name           string `json:"name"`
	NameEng        string `json:"name_eng"`
	Logo           string `json:"logo"`
	LogoRaw        string `json:"logo_raw"`
	Group          string `json:"group"`
	Matches        int    `json:"matches"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
	Wildcard       bool   `json:"wildcard"`
}

type futsalStandingsDTO struct {
	Standings  map[string][]futsalRowDTO `json:"standings"`
	TotalTeams int                       `json:"total_teams"`
}

type collegeRefDTO struct {
	Name    string `json:"name"`
	NameEng string `json:"name_eng"`
}

type departmentDTO struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	NameEng      string         `json:"name_eng"`
	LogoURL      string         `json:"logo_url"`
	Score        int            `json:"score"`
	CollegeID    *int64         `json:"college_id"`
	College      *collegeRefDTO `json:"college"`
	LogoURLEmbed string         `json:"logo_url_embed"`
}

type departmentsDTO struct {
	CollegeID   *int64          `json:"college_id"`
	Search      *string         `json:"search"`
	Departments []departmentDTO `json:"departments"`
}

type adminDepartmentDTO struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	NameEng string         `json:"name_eng"`
	LogoURL string         `json:"logo_url"`
	College *collegeRefDTO `json:"college"`
}

type collegeDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	NameEng string `json:"name_eng"`
}

type sportDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	NameEng     string `json:"name_eng"`
	IsTeamSport bool   `json:"is_team_sport"`
}

type venueDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	LocationNote string `json:"location_note"`
}

type sportVenueDTO struct {
	Name         string `json:"name"`
	LocationNote string `json:"location_note"`
	Description  string `json:"description"`
}

type sportVenuesDTO struct {
	SportVenues map[string]sportVenueDTO `json:"sport_venues"`
	TotalSports int                      `json:"total_sports"`
}

type adminTeamDTO struct {
	ID           int64  `json:"id"`
	DepartmentID *int64 `json:"department_id"`
	Name         string `json:"name"`
	Score        int    `json:"score"`
}

type adminMatchDTO struct {
	ID           int64         `json:"id"`
	Date         string        `json:"date"`
	Start        int           `json:"start"`
	Sport        string        `json:"sport"`
	Venue        string        `json:"venue"`
	IsPlayed     bool          `json:"is_played"`
	RainCanceled bool          `json:"rain_canceled"`
	AdminNote    *string       `json:"admin_note"`
	HomeTeam     *adminTeamDTO `json:"home_team"`
	AwayTeam     *adminTeamDTO `json:"away_team"`
	CreatedAt    *time.Time    `json:"created_at"`
	UpdatedAt    *time.Time    `json:"updated_at"`
}

type adminMatchPageDTO struct {
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Total    int             `json:"total"`
	Matches  []adminMatchDTO `json:"matches"`
}

type scoreResultDTO struct {
	Message   string `json:"message"`
	MatchID   int64  `json:"match_id"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	IsPlayed  bool   `json:"is_played"`
}

type statusResultDTO struct {
	Message      string  `json:"message"`
	MatchID      int64   `json:"match_id"`
	IsPlayed     bool    `json:"is_played"`
	RainCanceled bool    `json:"rain_canceled"`
	AdminNote    *string `json:"admin_note"`
}

type uploadResultDTO struct {
	Message string `json:"message"`
	URL     string `json:"url"`
	Path    string `json:"path"`
}

type verifyResultDTO struct {
	IsForm bool `json:"is_form"`
	IsCost bool `json:"is_cost"`
	Result bool `json:"result"`
}

func announcementToDTO(a announcement.Announcement) announcementDTO {
	return announcementDTO{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Image:       a.Image,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
	}
}

func minutesToDTO(m minutes.Minutes) minutesDTO {
	return minutesDTO(m)
}

func predictionToDTO(p prediction.Prediction) predictionDTO {
	return predictionDTO(p)
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func matchTeamToDTO(t match.TeamView) matchTeamDTO {
	return matchTeamDTO(t)
}

func matchToDTO(v match.View) matchDTO {
	return matchDTO{
		ID:     v.ID,
		Date:   v.Date,
		Start:  v.Start,
		Place:  v.Place,
		Sport:  v.Sport,
		Team1:  matchTeamToDTO(v.Team1),
		Team2:  matchTeamToDTO(v.Team2),
		Rain:   v.Rain,
		Result: v.Result,
		Win:    v.Win,
	}
}

func standingToDTO(e standing.Entry) standingDTO {
	return standingDTO{
		Rank:    e.Rank,
		Name:    e.Name,
		NameEng: e.NameEng,
		Logo:    e.Logo,
		LogoRaw: e.LogoRaw,
		Score:   e.Score,
	}
}

func futsalRowToDTO(r standing.FutsalRow) futsalRowDTO {
	return futsalRowDTO{
		Rank:           r.Rank,
		Name:           r.Name,
		NameEng:        r.NameEng,
		Logo:           medialink.ToEmbeddable(r.LogoURL),
		LogoRaw:        r.LogoURL,
		Group:          r.GroupName,
		Matches:        r.Matches,
		Wins:           r.Wins,
		Draws:          r.Draws,
		Losses:         r.Losses,
		GoalsFor:       r.GoalsFor,
		GoalsAgainst:   r.GoalsAgainst,
		GoalDifference: r.GoalDifference(),
		Points:         r.Points,
		Wildcard:       r.Wildcard,
	}
}

func collegeRef(d department.Department) *collegeRefDTO {
	if d.CollegeID == nil {
		return nil
	}
	return &collegeRefDTO{Name: d.CollegeName, NameEng: d.CollegeNameEng}
}

// departmentToDTO always adds logo_url_embed; embed also swaps logo_url itself.
func departmentToDTO(d department.Department, embed bool) departmentDTO {
	embedded := medialink.ToEmbeddable(d.LogoURL)
	logo := d.LogoURL
	if embed {
		logo = embedded
	}
	return departmentDTO{
		ID:           d.ID,
		Name:         d.Name,
		NameEng:      d.NameEng,
		LogoURL:      logo,
		Score:        d.Score,
		CollegeID:    d.CollegeID,
		College:      collegeRef(d),
		LogoURLEmbed: embedded,
	}
}

func adminDepartmentToDTO(d department.Department) adminDepartmentDTO {
	return adminDepartmentDTO{
		ID:      d.ID,
		Name:    d.Name,
		NameEng: d.NameEng,
		LogoURL: d.LogoURL,
		College: collegeRef(d),
	}
}

func collegeToDTO(c college.College) collegeDTO {
	return collegeDTO(c)
}

func sportToDTO(s sport.Sport) sportDTO {
	return sportDTO(s)
}

func venueToDTO(v venue.Venue) venueDTO {
	return venueDTO(v)
}

func sportVenuesToDTO(items []venue.SportVenue) sportVenuesDTO {
	out := make(map[string]sportVenueDTO, len(items))
	for _, item := range items {
		out[item.Sport] = sportVenueDTO{Name: item.Name, LocationNote: item.LocationNote, Description: item.Description}
	}
	return sportVenuesDTO{SportVenues: out, TotalSports: len(out)}
}

func adminTeamToDTO(m match.Match, side match.Side) *adminTeamDTO {
	p, ok := m.Participant(side)
	if !ok {
		return nil
	}
	team := &adminTeamDTO{ID: p.ID, Score: p.Score}
	if p.Department != nil {
		id := p.Department.ID
		team.DepartmentID = &id
		team.Name = p.Department.Name
	}
	return team
}

func adminMatchToDTO(m match.Match) adminMatchDTO {
	return adminMatchDTO{
		ID:           m.ID,
		Date:         m.Date,
		Start:        m.PeriodStart,
		Sport:        m.SportName,
		Venue:        m.VenueName,
		IsPlayed:     m.IsPlayed,
		RainCanceled: m.RainCanceled,
		AdminNote:    m.AdminNote,
		HomeTeam:     adminTeamToDTO(m, match.SideHome),
		AwayTeam:     adminTeamToDTO(m, match.SideAway),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
