package card

import (
	"regexp"
	"strconv"
)

// spellDamagePattern matches "deal $N damage" where N is a single digit. The
// data source marks spell-power scaled numbers with a leading "$".
var spellDamagePattern = regexp.MustCompile(`(?i)deal \$(\d) damage`)

// SpellDamage extracts the fixed damage a spell deals from its card text,
// or 0 when the text has none it can read.
//
// It is a best-effort signal: it cannot tell damage to minions from damage to
// heroes, and multi-digit or variable amounts ("deal $10 damage", "deals 2-4
// damage") are read as 0.
func SpellDamage(text string) int {
	m := spellDamagePattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
