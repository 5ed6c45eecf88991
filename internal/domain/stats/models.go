package stats

import (
	"sort"
	"strconv"
	"strings"
)

// UserStat is one user's standing on a single BOINC project, as reported by userw.php.
// Every field is kept as the upstream string so nothing is lost to reformatting.
type UserStat struct {
	Source        string `json:"source"`
	Username      string `json:"username"`
	Timestamp     string `json:"timestamp"`
	TotalCredit   string `json:"totalCredit"`
	AverageCredit string `json:"averageCredit"`
	Team          string `json:"team"`
}

const defaultTitle = "Stats for user"

// SortByTotalCredit orders stats in place, highest total credit first.
// Records whose credit does not parse sink below every parsable one; ties keep input order.
func SortByTotalCredit(stats []UserStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		a, okA := ParseCredit(stats[i].TotalCredit)
		b, okB := ParseCredit(stats[j].TotalCredit)
		if okA != okB {
			return okA
		}
		return a > b
	})
}

// ParseCredit reads the leading integer of a credit string, ignoring any fraction or suffix.
// Thousands separators are skipped, so "1,234,567.89" yields 1234567.
// ok is false when no digits lead the string.
func ParseCredit(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	var b strings.Builder
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		b.WriteByte(s[i])
		i++
	}
	digits := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c == ',' && digits > 0 {
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		b.WriteByte(c)
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	v, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Title is the heading drawn above the rows, taken from the first record's username.
func Title(stats []UserStat) string {
	if len(stats) == 0 || strings.TrimSpace(stats[0].Username) == "" {
		return defaultTitle
	}
	return stats[0].Username + "'s Stats"
}

// Row is the text line drawn for one project.
func Row(stat UserStat) string {
	return stat.Source + " " + stat.TotalCredit
}
