package handlers

import (
	"strconv"
	"strings"
	"time"

	"film-backend/internal/models"
	"film-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// dateLayout accepts zero-padded and unpadded month and day.
const dateLayout = "2006-1-2"

const (
	reasonInteger   = "Should be specified as integer."
	reasonDate      = "Should be specified in format: YYYY-m-d."
	reasonRating    = "Integer in range [0, 10]."
	reasonGenreIDs  = "IDs in format: 1,2,3."
	reasonPage      = "Integer more than 0."
	reasonSortBy    = "Allowed values: id, premiere_date, rating."
	reasonSortOrder = "Allowed values: 1, -1."
	reasonRequired  = "Required string field."
	reasonNotNull   = "Must not be null."
)

func parseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, invalid(field, reasonDate)
	}
	return d, nil
}

func parseRating(field string, value int) error {
	if !models.ValidRating(value) {
		return invalid(field, reasonRating)
	}
	return nil
}

func parseSortOrder(value string) (repository.SortOrder, error) {
	switch value {
	case "", "1":
		return repository.Ascending, nil
	case "-1":
		return repository.Descending, nil
	}
	return 0, invalid("sort_order", reasonSortOrder)
}

// parsePage returns 0 when page is absent. Pages past repository.MaxPage
// are clamped to it and come back empty.
func parsePage(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return 0, invalid("page", reasonPage)
	}
	return min(page, repository.MaxPage), nil
}

func parseGenreIDs(value string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil || id == 0 {
			return nil, invalid("genres_ids", reasonGenreIDs)
		}
		ids = append(ids, uint(id))
	}
	if len(ids) == 0 {
		return nil, invalid("genres_ids", reasonGenreIDs)
	}
	return models.UniqueIDs(ids), nil
}

// parseFilmQuery validates the film list query string. Absent parameters do
// not filter; page defaults to 1.
func parseFilmQuery(c *fiber.Ctx) (repository.FilmQuery, error) {
	q := repository.FilmQuery{
		Search: strings.TrimSpace(c.Query("search")),
		SortBy: repository.SortByID,
		Page:   1,
	}

	if v := c.Query("director_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return q, invalid("director_id", reasonInteger)
		}
		director := uint(id)
		q.DirectorID = &director
	}

	if v := c.Query("rating"); v != "" {
		rating, err := strconv.Atoi(v)
		if err != nil {
			return q, invalid("rating", reasonRating)
		}
		if err := parseRating("rating", rating); err != nil {
			return q, err
		}
		q.Rating = &rating
	}

	for _, bound := range []struct {
		field string
		dst   **time.Time
	}{
		{"start_premiere_date", &q.StartPremiereDate},
		{"end_premiere_date", &q.EndPremiereDate},
	} {
		v := c.Query(bound.field)
		if v == "" {
			continue
		}
		d, err := parseDate(bound.field, v)
		if err != nil {
			return q, err
		}
		*bound.dst = &d
	}

	if v := c.Query("genres_ids"); v != "" {
		ids, err := parseGenreIDs(v)
		if err != nil {
			return q, err
		}
		q.GenreIDs = ids
	}

	if v := c.Query("sort_by"); v != "" {
		key := repository.FilmSortKey(v)
		if !key.Valid() {
			return q, invalid("sort_by", reasonSortBy)
		}
		q.SortBy = key
	}

	order, err := parseSortOrder(c.Query("sort_order"))
	if err != nil {
		return q, err
	}
	q.SortOrder = order

	page, err := parsePage(c.Query("page"))
	if err != nil {
		return q, err
	}
	if page > 0 {
		q.Page = page
	}

	return q, nil
}

// parseListOptions reads page and sort_order for director and genre lists.
// Without page every row is returned.
func parseListOptions(c *fiber.Ctx, pageSize int) (repository.ListOptions, error) {
	page, err := parsePage(c.Query("page"))
	if err != nil {
		return repository.ListOptions{}, err
	}
	order, err := parseSortOrder(c.Query("sort_order"))
	if err != nil {
		return repository.ListOptions{}, err
	}
	return repository.ListOptions{Page: page, PageSize: pageSize, Order: order}, nil
}
