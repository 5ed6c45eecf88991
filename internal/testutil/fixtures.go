package testutil

import (
	"fmt"

	"github.com/cfu288/boinc-statistics-image-generator/internal/domain/stats"
)

// SampleStat returns a fully populated record for source with the given total credit.
func SampleStat(source, totalCredit string) stats.UserStat {
	return stats.UserStat{
		Source:        source,
		Username:      "tester",
		Timestamp:     "17 Oct 2026 10:00:00 UTC",
		TotalCredit:   totalCredit,
		AverageCredit: "12.34",
		Team:          "Test Team",
	}
}

// SampleWML renders a userw.php style WML document for a single project.
func SampleWML(source, username, totalCredit string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<wml>
<card id="cardone" title="UserStats">
<p>
%s<br/>Account Data<br/>for %s<br/>Time: 17 Oct 2026 10:00:00 UTC<br/>User TotCred: %s<br/>User AvgCred: 12.34<br/>UserID: 1<br/>Team: Test Team<br/>
</p>
</card>
</wml>`, source, username, totalCredit)
}
