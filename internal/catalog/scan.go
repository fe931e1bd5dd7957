package catalog

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/arcanaland/hearthlodge/internal/card"
)

// Minions parses every MINION record. Malformed records are logged and
// skipped.
func (c *Catalog) Minions() []card.Minion {
	return scan(c, card.KindMinion, card.ParseMinion)
}

// Spells parses every SPELL record. Malformed records are logged and skipped.
func (c *Catalog) Spells() []card.Spell {
	return scan(c, card.KindSpell, card.ParseSpell)
}

// Weapons parses every WEAPON record. Malformed records are logged and
// skipped.
func (c *Catalog) Weapons() []card.Weapon {
	return scan(c, card.KindWeapon, card.ParseWeapon)
}

func scan[T card.Card](c *Catalog, kind card.Kind, parse func(card.Record) (T, error)) []T {
	var out []T
	for _, name := range c.names {
		rec := c.records[name]
		if rec.Kind() != kind {
			continue
		}
		v, err := parse(rec)
		if err != nil {
			c.logger.Warn("skipping malformed card",
				zap.String("card", name),
				zap.String("type", string(kind)),
				zap.Error(err),
			)
			continue
		}
		out = append(out, v)
	}
	return out
}

var minionAttributes = map[string]func(card.Minion) int{
	"attack": func(m card.Minion) int { return m.Attack },
	"health": func(m card.Minion) int { return m.Health },
	"cost":   func(m card.Minion) int { return m.Cost },
}

// FilterMinions returns, in catalog order, the minions whose attributes equal
// every value in criteria. Valid keys are attack, health and cost; an empty
// criteria matches every minion.
func (c *Catalog) FilterMinions(criteria map[string]int) ([]card.Minion, error) {
	keys := make([]string, 0, len(criteria))
	for key := range criteria {
		if _, ok := minionAttributes[key]; !ok {
			return nil, errors.Wrapf(ErrUnknownAttribute, "%q", key)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	matches := []card.Minion{}
	for _, m := range c.Minions() {
		ok := true
		for _, key := range keys {
			if minionAttributes[key](m) != criteria[key] {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, m)
		}
	}
	return matches, nil
}
