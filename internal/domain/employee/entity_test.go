package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTenureAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hireDate time.Time
		now      time.Time
		want     Tenure
	}{
		{"same day", date(2024, time.February, 15), date(2024, time.February, 15), Tenure{0, 0}},
		{"under a month", date(2024, time.February, 15), date(2024, time.March, 10), Tenure{0, 0}},
		{"exactly one month", date(2024, time.February, 15), date(2024, time.March, 15), Tenure{0, 1}},
		{"two years three months", date(2024, time.February, 15), date(2026, time.May, 20), Tenure{2, 3}},
		{"partial month dropped", date(2024, time.February, 15), date(2026, time.May, 14), Tenure{2, 2}},
		{"year rollover", date(2024, time.November, 1), date(2026, time.March, 1), Tenure{1, 4}},
		{"future hire reads zero", date(2027, time.January, 1), date(2026, time.May, 20), Tenure{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Employee{HireDate: tt.hireDate}.TenureAt(tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}
