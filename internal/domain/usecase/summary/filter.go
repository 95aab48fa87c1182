package summary

import (
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/usecase"
)

const (
	dateLayout     = "2006-01-02"
	maxSearchRunes = 100
)

// ParseTransactionQuery converts raw listing parameters into a filter.
// Dates are read in loc; a bare date as upper bound covers that whole day.
func ParseTransactionQuery(q usecase.TransactionQuery, loc *time.Location) (entity.TransactionFilter, error) {
	filter := entity.TransactionFilter{
		TenantID:  strings.TrimSpace(q.TenantID),
		Status:    entity.StatusAll,
		Page:      1,
		Limit:     entity.DefaultPageLimit,
		SortOrder: entity.SortDesc,
	}
	if filter.TenantID == "" {
		return filter, errs.ErrInvalidTenant
	}

	if v := strings.TrimSpace(q.Type); v != "" {
		t, err := entity.ParseTransactionType(v)
		if err != nil {
			return filter, errs.NewFilterError("type", v)
		}
		filter.Type = &t
	}

	if v := strings.TrimSpace(q.Category); v != "" {
		c, err := entity.ParseCategory(v)
		if err != nil {
			return filter, errs.NewFilterError("category", v)
		}
		filter.Category = &c
	}

	if v := strings.TrimSpace(q.PaymentMethod); v != "" {
		m, err := entity.ParsePaymentMethod(v)
		if err != nil {
			return filter, errs.NewFilterError("paymentMethod", v)
		}
		filter.PaymentMethod = &m
	}

	if v := strings.TrimSpace(q.Source); v != "" {
		s, err := entity.ParseSource(v)
		if err != nil {
			return filter, errs.NewFilterError("source", v)
		}
		filter.Source = &s
	}

	if v := strings.TrimSpace(q.Status); v != "" {
		switch status := entity.StatusFilter(strings.ToLower(v)); status {
		case entity.StatusActive, entity.StatusCancelled, entity.StatusAll:
			filter.Status = status
		default:
			return filter, errs.NewFilterError("status", v)
		}
	}

	filter.CustomerRef = strings.TrimSpace(q.CustomerRef)

	filter.Search = strings.TrimSpace(q.Search)
	if len([]rune(filter.Search)) > maxSearchRunes {
		return filter, errs.NewFilterError("search", filter.Search)
	}

	from, to, err := parseWindow(q.From, q.To, loc)
	if err != nil {
		return filter, err
	}
	filter.From, filter.To = from, to

	if v := strings.TrimSpace(q.Page); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return filter, errs.NewFilterError("page", v)
		}
		filter.Page = page
	}

	if v := strings.TrimSpace(q.Limit); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return filter, errs.NewFilterError("limit", v)
		}
		filter.Limit = min(limit, entity.MaxPageLimit)
	}

	if filter.Page > entity.MaxPage(filter.Limit) {
		return filter, errs.NewFilterError("page", strings.TrimSpace(q.Page))
	}

	if v := strings.TrimSpace(q.SortOrder); v != "" {
		switch order := entity.SortOrder(strings.ToLower(v)); order {
		case entity.SortAsc, entity.SortDesc:
			filter.SortOrder = order
		default:
			return filter, errs.NewFilterError("sortOrder", v)
		}
	}

	return filter, nil
}

// parseWindow parses an optional [from, to) window
func parseWindow(rawFrom, rawTo string, loc *time.Location) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if v := strings.TrimSpace(rawFrom); v != "" {
		t, err := parseBound(v, loc, false)
		if err != nil {
			return nil, nil, errs.NewFilterError("from", v)
		}
		from = &t
	}

	if v := strings.TrimSpace(rawTo); v != "" {
		t, err := parseBound(v, loc, true)
		if err != nil {
			return nil, nil, errs.NewFilterError("to", v)
		}
		to = &t
	}

	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, errs.NewFilterError("to", rawTo)
	}

	return from, to, nil
}

// parseBound accepts RFC3339 timestamps or YYYY-MM-DD dates. A date used as an
// upper bound is moved to the start of the following day.
func parseBound(v string, loc *time.Location, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}

	day, err := time.ParseInLocation(dateLayout, v, loc)
	if err != nil {
		return time.Time{}, err
	}
	if upper {
		day = day.AddDate(0, 0, 1)
	}
	return day, nil
}
