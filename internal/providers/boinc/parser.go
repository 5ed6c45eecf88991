package boinc

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/cfu288/boinc-statistics-image-generator/internal/domain/stats"
	"github.com/cfu288/boinc-statistics-image-generator/internal/providers"
)

const cardPath = "//wml/card/p"

// userw.php echoes user and team names unescaped, so the decoder accepts
// bare ampersands, HTML entities and unclosed <br>.
var parserOptions = xmlquery.ParserOptions{
	Decoder: &xmlquery.DecoderOptions{
		Strict:    false,
		AutoClose: xml.HTMLAutoClose,
		Entity:    xml.HTMLEntity,
	},
}

// Parse reads a userw.php WML document and extracts the user's stats.
//
// The card paragraph is a list of lines separated by <br/>:
//
//	Rosetta@home<br/>Account Data<br/>for name<br/>Time: ...<br/>
//	User TotCred: ...<br/>User AvgCred: ...<br/>UserID: ...<br/>Team: ...
func Parse(r io.Reader) (stats.UserStat, error) {
	doc, err := xmlquery.ParseWithOptions(r, parserOptions)
	if err != nil {
		return stats.UserStat{}, fmt.Errorf("%w: %v", providers.ErrMalformedPayload, err)
	}
	card, err := xmlquery.Query(doc, cardPath)
	if err != nil {
		return stats.UserStat{}, err
	}
	if card == nil {
		return stats.UserStat{}, fmt.Errorf("%w: no %s element", providers.ErrMalformedPayload, cardPath)
	}
	return fromLines(splitLines(card))
}

// splitLines walks the card in document order, starting a new line at every <br/>.
// Inline markup such as <b> contributes its text only.
func splitLines(card *xmlquery.Node) []string {
	lines := []string{""}
	var walk func(n *xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			switch child.Type {
			case xmlquery.ElementNode:
				if strings.EqualFold(child.Data, "br") {
					lines = append(lines, "")
					continue
				}
				walk(child)
			case xmlquery.TextNode, xmlquery.CharDataNode:
				lines[len(lines)-1] += child.Data
			}
		}
	}
	walk(card)
	return lines
}

func fromLines(lines []string) (stats.UserStat, error) {
	if len(lines) < minLines {
		return stats.UserStat{}, fmt.Errorf("%w: expected at least %d lines, got %d", providers.ErrMalformedPayload, minLines, len(lines))
	}
	return stats.UserStat{
		Source:        strings.TrimSpace(lines[lineSource]),
		Username:      field(lines[lineUsername], prefixUsername),
		Timestamp:     field(lines[lineTimestamp], prefixTimestamp),
		TotalCredit:   field(lines[lineTotal], prefixTotal),
		AverageCredit: field(lines[lineAverage], prefixAverage),
		Team:          field(lines[lineTeam], prefixTeam),
	}, nil
}

// field removes the first occurrence of prefix, wherever it sits, then trims.
func field(line, prefix string) string {
	return strings.TrimSpace(strings.Replace(line, prefix, "", 1))
}
