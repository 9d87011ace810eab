// Package dates parses the supplier's timestamp formats. The supplier
// uses one format for response timestamps and a different day-only
// format for estimated despatch dates inside order responses.
package dates

import (
	"fmt"
	"time"
)

const (
	// SupplierLayout is the timestamp format on supplier responses and
	// orderline update events, e.g. "2016-07-27 15:17:33.941 BST".
	SupplierLayout = "2006-01-02 15:04:05.000 MST"
	// DespatchLayout is the day-only format of the estimated despatch
	// date in order responses, e.g. "27/07/2016".
	DespatchLayout = "02/01/2006"
	// ISO18626Layout is the standardized timestamp format.
	ISO18626Layout = "2006-01-02T15:04:05-0700"
)

// ParseSupplierTimestamp parses a supplier response timestamp.
func ParseSupplierTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(SupplierLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing supplier timestamp %q: %w", value, err)
	}
	return t, nil
}

// ParseDespatchDate parses the supplier's estimated despatch date. The
// result is midnight local time on the given day.
func ParseDespatchDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DespatchLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing despatch date %q: %w", value, err)
	}
	return t, nil
}

// Year extracts the year component from a publication date given in any
// of the formats submissions carry. Order payloads want a bare year.
func Year(value string) (string, error) {
	for _, layout := range []string{ISO18626Layout, time.RFC3339, "2006-01-02", "2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return fmt.Sprintf("%d", t.Year()), nil
		}
	}
	return "", fmt.Errorf("no year found in publication date %q", value)
}
