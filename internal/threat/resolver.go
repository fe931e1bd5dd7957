package threat

import (
	"github.com/pkg/errors"

	"github.com/arcanaland/hearthlodge/internal/card"
	"github.com/arcanaland/hearthlodge/internal/catalog"
)

// ErrInvalidTarget is returned when the target is unknown or is not a minion
var ErrInvalidTarget = errors.New("invalid threat target")

// Threats holds every card that contests a target, split by variant and in
// catalog order
type Threats struct {
	Target  card.Minion
	Minions []card.Minion
	Spells  []card.Spell
	Weapons []card.Weapon
}

// All returns the minions, then the spells, then the weapons
func (t Threats) All() []card.Card {
	all := make([]card.Card, 0, len(t.Minions)+len(t.Spells)+len(t.Weapons))
	for _, m := range t.Minions {
		all = append(all, m)
	}
	for _, s := range t.Spells {
		all = append(all, s)
	}
	for _, w := range t.Weapons {
		all = append(all, w)
	}
	return all
}

// Categorize groups the threats by class
func (t Threats) Categorize() Categorized {
	return Categorize(t.All())
}

// MinionContests reports whether c, played on curve, kills target in one hit
func MinionContests(c, target card.Minion) bool {
	return c.Cost <= target.Cost && c.Attack >= target.Health
}

// SpellContests reports whether s, cast on curve, deals enough damage to kill
// target. Spells without a readable damage value never contest.
func SpellContests(s card.Spell, target card.Minion) bool {
	return s.Damage > 0 && s.Cost <= target.Cost && s.Damage >= target.Health
}

// WeaponContests reports whether w, equipped on curve, kills target in one hit
func WeaponContests(w card.Weapon, target card.Minion) bool {
	return w.Cost <= target.Cost && w.Power >= target.Health
}

// Resolver finds the cards in a catalog that can remove a given minion
type Resolver struct {
	catalog *catalog.Catalog
}

func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Target parses the named card as a minion
func (r *Resolver) Target(name string) (card.Minion, error) {
	rec, err := r.catalog.LookupExact(name)
	if err != nil {
		return card.Minion{}, errors.Wrapf(ErrInvalidTarget, "%q is not in the catalog", name)
	}
	m, err := card.ParseMinion(rec)
	if err != nil {
		return card.Minion{}, errors.Wrapf(ErrInvalidTarget, "%q cannot be read as a minion: %v", name, err)
	}
	return m, nil
}

// Resolve returns every minion, spell and weapon that contests the named
// minion. Malformed catalog records are skipped.
func (r *Resolver) Resolve(name string) (Threats, error) {
	target, err := r.Target(name)
	if err != nil {
		return Threats{}, err
	}

	t := Threats{
		Target:  target,
		Minions: []card.Minion{},
		Spells:  []card.Spell{},
		Weapons: []card.Weapon{},
	}
	for _, m := range r.catalog.Minions() {
		if MinionContests(m, target) {
			t.Minions = append(t.Minions, m)
		}
	}
	for _, s := range r.catalog.Spells() {
		if SpellContests(s, target) {
			t.Spells = append(t.Spells, s)
		}
	}
	for _, w := range r.catalog.Weapons() {
		if WeaponContests(w, target) {
			t.Weapons = append(t.Weapons, w)
		}
	}
	return t, nil
}

// ResolveThreats resolves the named minion's threats and groups them by class
func (r *Resolver) ResolveThreats(name string) (Categorized, error) {
	t, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return t.Categorize(), nil
}
