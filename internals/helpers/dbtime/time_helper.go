// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

var (
	locOnce sync.Once
	loc     *time.Location
)

// ChurchLocation is the zone dates are interpreted in: CHURCH_TIMEZONE,
// then America/Sao_Paulo, then UTC.
func ChurchLocation() *time.Location {
	locOnce.Do(func() {
		name := strings.TrimSpace(os.Getenv("CHURCH_TIMEZONE"))
		if name == "" {
			name = "America/Sao_Paulo"
		}
		l, err := time.LoadLocation(name)
		if err != nil {
			l = time.UTC
		}
		loc = l
	})
	return loc
}

// ParseDate accepts "2006-01-02" or a full RFC3339 timestamp (date part kept).
func ParseDate(s string) (datatypes.Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return datatypes.Date(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.Date()
		return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), nil
	}
	return datatypes.Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

// ParseDatePtr treats nil and "" as "no date".
func ParseDatePtr(s *string) (*datatypes.Date, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

func FormatDatePtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := FormatDate(*d)
	return &s
}

// AgeOn counts whole years between birth and on. Only the year part is
// compared when yearOnly is set, which is how member analytics buckets ages.
func AgeOn(birth, on time.Time, yearOnly bool) int {
	age := on.Year() - birth.Year()
	if yearOnly {
		return age
	}
	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		age--
	}
	return age
}
