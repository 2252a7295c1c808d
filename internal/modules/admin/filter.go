package admin

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// FilterKind selects how a list filter reads its query parameters.
type FilterKind string

const (
	// FilterBool matches ?field=true|false.
	FilterBool FilterKind = "bool"
	// FilterRelation matches ?field=<id> or ?field=null.
	FilterRelation FilterKind = "relation"
	// FilterDate matches ?field__gte=<date>&field__lte=<date>.
	FilterDate FilterKind = "date"
)

const dateOnly = "2006-01-02"

// Filter is one entry of a changelist's list_filter. Field is a column name.
type Filter struct {
	Field string     `json:"field"`
	Kind  FilterKind `json:"kind"`
}

// apply narrows tx by the filter's parameters in q. Absent parameters leave tx as is.
func (f Filter) apply(tx *gorm.DB, table string, q url.Values, loc *time.Location) (*gorm.DB, error) {
	column := table + "." + f.Field
	switch f.Kind {
	case FilterBool:
		raw := q.Get(f.Field)
		if raw == "" {
			return tx, nil
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: expected true or false", f.Field)
		}
		return tx.Where(column+" = ?", v), nil

	case FilterRelation:
		raw := q.Get(f.Field)
		switch {
		case raw == "":
			return tx, nil
		case strings.EqualFold(raw, "null"):
			return tx.Where(column + " IS NULL"), nil
		}
		id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
		if err != nil {
			return nil, fmt.Errorf("%s: expected an id or null", f.Field)
		}
		return tx.Where(column+" = ?", uint(id)), nil

	case FilterDate:
		if raw := q.Get(f.Field + "__gte"); raw != "" {
			from, _, err := parseDate(raw, loc)
			if err != nil {
				return nil, fmt.Errorf("%s__gte: %w", f.Field, err)
			}
			tx = tx.Where(column+" >= ?", from.UTC())
		}
		if raw := q.Get(f.Field + "__lte"); raw != "" {
			to, wholeDay, err := parseDate(raw, loc)
			if err != nil {
				return nil, fmt.Errorf("%s__lte: %w", f.Field, err)
			}
			if wholeDay {
				tx = tx.Where(column+" < ?", to.AddDate(0, 0, 1).UTC())
			} else {
				tx = tx.Where(column+" <= ?", to.UTC())
			}
		}
		return tx, nil
	}
	return nil, fmt.Errorf("%s: unknown filter kind %q", f.Field, f.Kind)
}

// parseDate accepts RFC 3339 timestamps and plain dates. A plain date is
// midnight in loc and reported as date-only so that __lte covers the whole day.
func parseDate(raw string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(dateOnly, raw, loc); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("expected YYYY-MM-DD or an RFC 3339 time")
	}
	return t, false, nil
}
