package httpapi

import (
	"net/http"
	"strings"

	"github.com/kwucouncil/council-api/internal/domain/department"
	"github.com/kwucouncil/council-api/internal/platform/pagination"
	"github.com/kwucouncil/council-api/internal/usecase"
)

const (
	defaultMatchPageSize = 20
	defaultRecentLimit   = 10
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	q, err := matchListQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.matchService.List(ctx, q)
	if err != nil {
		h.logFailure(ctx, "list matches failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchPageDTO{
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
		Items:    mapSlice(page.Items, matchToDTO),
	})
}

func matchListQuery(r *http.Request) (usecase.MatchListQuery, error) {
	query := r.URL.Query()

	sportID, err := queryInt64(r, "sport_id")
	if err != nil {
		return usecase.MatchListQuery{}, err
	}
	collegeID, err := queryInt64(r, "college_id")
	if err != nil {
		return usecase.MatchListQuery{}, err
	}
	departmentID, err := queryInt64(r, "department_id")
	if err != nil {
		return usecase.MatchListQuery{}, err
	}

	q := usecase.MatchListQuery{
		Date:         queryString(r, "date"),
		SportID:      sportID,
		CollegeID:    collegeID,
		DepartmentID: departmentID,
		Played:       queryBool(r, "played"),
		RainCanceled: queryBool(r, "rain"),
		Page:         pagination.Normalize(query.Get("page"), pagination.FirstNonEmpty(query.Get("page_size"), query.Get("limit")), defaultMatchPageSize, pagination.MatchCap),
	}
	if sportID == nil {
		q.SportName = queryString(r, "sport")
	}
	if sort := queryString(r, "sort"); sort != "" {
		q.Sort = pagination.ParseSort(sort, queryString(r, "order"), pagination.MatchSortAliases)
	}
	return q, nil
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.matchService.Get(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get match failed", err, "match_id", id)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, dataDTO[matchDTO]{Data: matchToDTO(item)})
}

func (h *Handler) ListRecentResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentResults")
	defer span.End()

	sportID, err := queryInt64(r, "sport_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	limit := pagination.Normalize("1", r.URL.Query().Get("limit"), defaultRecentLimit, pagination.MatchCap).Size
	items, err := h.matchService.RecentResults(ctx, usecase.RecentResultsQuery{
		Limit:   limit,
		SportID: sportID,
		DateTo:  queryString(r, "date_to"),
	})
	if err != nil {
		h.logFailure(ctx, "list recent results failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, recentResultsDTO{Count: len(items), Items: mapSlice(items, matchToDTO)})
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	sportID, err := queryInt64(r, "sport_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.standingsService.Overall(ctx, sportID)
	if err != nil {
		h.logFailure(ctx, "get standings failed", err, "mode", string(h.standingsService.Mode()))
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, standingsDTO{
		SportID:   table.SportID,
		UpdatedAt: table.UpdatedAt,
		Standings: mapSlice(table.Entries, standingToDTO),
	})
}

func (h *Handler) GetFutsalStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFutsalStandings")
	defer span.End()

	table, err := h.standingsService.Futsal(ctx)
	if err != nil {
		h.logFailure(ctx, "get futsal standings failed", err)
		writeError(ctx, w, err)
		return
	}

	groups := make(map[string][]futsalRowDTO, len(table.Groups))
	for name, rows := range table.Groups {
		groups[name] = mapSlice(rows, futsalRowToDTO)
	}
	writeJSON(ctx, w, http.StatusOK, futsalStandingsDTO{Standings: groups, TotalTeams: table.TotalTeams})
}

func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDepartments")
	defer span.End()

	collegeID, err := queryInt64(r, "college_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	search := queryString(r, "search")

	items, err := h.referenceService.Departments(ctx, department.Filter{CollegeID: collegeID, Search: search})
	if err != nil {
		h.logFailure(ctx, "list departments failed", err)
		writeError(ctx, w, err)
		return
	}

	embed := strings.EqualFold(queryString(r, "embed"), "true") || queryString(r, "embed") == "1"
	out := departmentsDTO{CollegeID: collegeID, Departments: make([]departmentDTO, 0, len(items))}
	if search != "" {
		out.Search = &search
	}
	for _, d := range items {
		out.Departments = append(out.Departments, departmentToDTO(d, embed))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListColleges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListColleges")
	defer span.End()

	items, err := h.referenceService.Colleges(ctx)
	if err != nil {
		h.logFailure(ctx, "list colleges failed", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string][]collegeDTO{"colleges": mapSlice(items, collegeToDTO)})
}

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	items, err := h.referenceService.Sports(ctx)
	if err != nil {
		h.logFailure(ctx, "list sports failed", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string][]sportDTO{"sports": mapSlice(items, sportToDTO)})
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenues")
	defer span.End()

	items, err := h.referenceService.Venues(ctx)
	if err != nil {
		h.logFailure(ctx, "list venues failed", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string][]venueDTO{"venues": mapSlice(items, venueToDTO)})
}

func (h *Handler) ListSportVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSportVenues")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, sportVenuesToDTO(h.referenceService.SportVenues()))
}
