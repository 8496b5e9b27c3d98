package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/loanlens/internal/model"
)

// ltvRow matches tiered LTV lines such as "90% - Up to ₹30 Lakhs" or
// "80% - ₹30 to ₹75 Lakhs". The rupee anchor is mandatory so bare
// percentages elsewhere in the document never read as bands.
var ltvRow = regexp.MustCompile(
	`(?i)(?P<pct>[0-9]{1,3})\s*%\s*(?:-|–)?\s*(?:up\s*to\s*)?₹\s*(?P<lower>[0-9,]+)(?:\s*(?:-|–|to)\s*₹?\s*(?P<upper>[0-9,]+))?\s*(?P<unit>Lakhs?|Lacs?|Crores?|Cr|K|Thousand|L)?`,
)

// ParseBands scans text for tiered LTV rows and returns structured bands.
// A single row is not a table: fewer than two rows yields nil, leaving the
// single-tier catalog patterns to handle it. Rupee bounds keep the unit
// they were stated in; conversion happens downstream in value normalization.
func ParseBands(text string) []model.Band {
	var bands []model.Band
	for _, loc := range ltvRow.FindAllStringSubmatchIndex(text, -1) {
		g := namedGroups(ltvRow, text, loc)
		band := model.Band{
			LTV:  g["pct"] + "%",
			Unit: strings.TrimSpace(g["unit"]),
		}
		if g["upper"] != "" {
			band.MinAmount = parseAmount(g["lower"])
			band.MaxAmount = parseAmount(g["upper"])
		} else {
			// A lone amount reads "up to ₹N", an upper bound
			band.MaxAmount = parseAmount(g["lower"])
		}
		bands = append(bands, band)
	}
	if len(bands) < 2 {
		return nil
	}
	return bands
}

func parseAmount(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return nil
	}
	return &n
}
