package card

import "fmt"

// Class is a player class affiliation
type Class string

const (
	Neutral Class = "NEUTRAL"
	Druid   Class = "DRUID"
	Hunter  Class = "HUNTER"
	Mage    Class = "MAGE"
	Paladin Class = "PALADIN"
	Priest  Class = "PRIEST"
	Rogue   Class = "ROGUE"
	Shaman  Class = "SHAMAN"
	Warlock Class = "WARLOCK"
	Warrior Class = "WARRIOR"
)

// Classes lists every class in display order
var Classes = []Class{Neutral, Druid, Hunter, Mage, Paladin, Priest, Rogue, Shaman, Warlock, Warrior}

// Valid reports whether c is one of the known classes
func (c Class) Valid() bool {
	for _, known := range Classes {
		if c == known {
			return true
		}
	}
	return false
}

// Kind is the value of a record's "type" field
type Kind string

const (
	KindMinion Kind = "MINION"
	KindSpell  Kind = "SPELL"
	KindWeapon Kind = "WEAPON"
)

// Base holds the attributes shared by every card variant
type Base struct {
	Name      string   `json:"name"`
	SetID     string   `json:"id,omitempty"` // Card id from the data source (e.g. EX1_066)
	Cost      int      `json:"cost"`
	Text      string   `json:"text,omitempty"`
	Mechanics []string `json:"mechanics,omitempty"` // Tags like Combo, Overload
	Class     Class    `json:"playerClass"`
}

// Card is implemented by Minion, Spell and Weapon
type Card interface {
	Kind() Kind
	Info() Base
	fmt.Stringer
}

// Minion is a creature card
type Minion struct {
	Base
	Attack int    `json:"attack"`
	Health int    `json:"health"`
	Race   string `json:"race,omitempty"` // Empty when the minion has no tribe
}

func (m Minion) Kind() Kind { return KindMinion }
func (m Minion) Info() Base { return m.Base }

// String renders the minion as "(cost): name (attack/health)"
func (m Minion) String() string {
	return fmt.Sprintf("(%d): %s (%d/%d)", m.Cost, m.Name, m.Attack, m.Health)
}

// Weapon is an equippable hero weapon
type Weapon struct {
	Base
	Power      int `json:"attack"`
	Durability int `json:"durability"`
}

func (w Weapon) Kind() Kind { return KindWeapon }
func (w Weapon) Info() Base { return w.Base }

// String renders the weapon as "(cost): name (power/durability)"
func (w Weapon) String() string {
	return fmt.Sprintf("(%d): %s (%d/%d)", w.Cost, w.Name, w.Power, w.Durability)
}

// Spell is a one-shot effect card. Damage is derived from the card text
// with SpellDamage.
type Spell struct {
	Base
	Damage int `json:"damage"`
}

func (s Spell) Kind() Kind { return KindSpell }
func (s Spell) Info() Base { return s.Base }

// String renders the spell as "(cost) name: 'text'"
func (s Spell) String() string {
	return fmt.Sprintf("(%d) %s: '%s'", s.Cost, s.Name, s.Text)
}
