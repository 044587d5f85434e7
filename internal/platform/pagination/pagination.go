// Package pagination turns raw query parameters into clamped page windows and
// sort specifications.
package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// ListCap bounds announcement, minutes and prediction listings.
	ListCap = 50
	// MatchCap bounds match listings and recent results.
	MatchCap = 100
)

// Page is an inclusive row window: rows From..To, zero-based.
type Page struct {
	Page int
	Size int
	From int
	To   int
}

func (p Page) Offset() int { return p.From }
func (p Page) Limit() int  { return p.Size }

// Normalize never fails; malformed input falls back to page 1 and defaultSize.
func Normalize(rawPage, rawSize string, defaultSize, limit int) Page {
	if limit < 1 {
		limit = 1
	}
	defaultSize = clamp(defaultSize, 1, limit)

	page := parseInt(rawPage, 1)
	if page < 1 {
		page = 1
	}
	size := clamp(parseInt(rawSize, defaultSize), 1, limit)
	if maxPage := math.MaxInt / size; page > maxPage {
		page = maxPage
	}

	from := (page - 1) * size
	return Page{
		Page: page,
		Size: size,
		From: from,
		To:   from + size - 1,
	}
}

// FirstNonEmpty supports endpoints that accept either page_size or limit.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type SortField struct {
	Column    string
	Direction Direction
}

func (f SortField) String() string {
	if f.Direction == Desc {
		return f.Column + " DESC"
	}
	return f.Column + " ASC"
}

// MatchSortAliases maps public sort tokens to match columns.
var MatchSortAliases = map[string]string{
	"date":  "match_date",
	"start": "period_start",
}

// ParseSort pairs comma-separated sort and order lists position-wise. Unknown
// tokens pass through unchanged; an absent or unrecognised order means ascending.
func ParseSort(sort, order string, aliases map[string]string) []SortField {
	orders := strings.Split(order, ",")

	out := make([]SortField, 0, 2)
	for i, token := range strings.Split(sort, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if column, ok := aliases[token]; ok {
			token = column
		}

		dir := Asc
		if i < len(orders) && strings.EqualFold(strings.TrimSpace(orders[i]), string(Desc)) {
			dir = Desc
		}
		out = append(out, SortField{Column: token, Direction: dir})
	}
	return out
}

// parseInt saturates out-of-range numbers at the int bounds so callers clamp
// them to the nearest edge. Fractions truncate toward zero.
func parseInt(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err == nil {
		return v
	}
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(raw, "-") {
			return math.MinInt
		}
		return math.MaxInt
	}

	f, ferr := strconv.ParseFloat(raw, 64)
	switch {
	case ferr != nil && !errors.Is(ferr, strconv.ErrRange):
		return fallback
	case math.IsNaN(f), ferr == nil && math.IsInf(f, 0):
		return fallback
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
