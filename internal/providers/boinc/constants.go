package boinc

import "time"

const (
	providerName        = "boinc"
	defaultHTTPTimeout  = 10 * time.Second
	defaultMaxBodyBytes = 1 << 20
	errorBodyExcerpt    = 512
	acceptHeader        = "text/vnd.wap.wml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.1"
)

// Positions of the fields within the <br/>-separated lines of the WML card.
const (
	lineSource    = 0
	lineUsername  = 2
	lineTimestamp = 3
	lineTotal     = 4
	lineAverage   = 5
	lineTeam      = 7
	minLines      = lineTeam + 1
)

const (
	prefixUsername  = "for "
	prefixTimestamp = "Time: "
	prefixTotal     = "User TotCred: "
	prefixAverage   = "User AvgCred: "
	prefixTeam      = "Team: "
)
