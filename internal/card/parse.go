package card

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// ErrParse matches every *ParseError
var ErrParse = errors.New("card parse error")

// ParseError reports a record that cannot be turned into a card variant
type ParseError struct {
	Card   string // Name of the record, empty if the name itself is bad
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Card == "" {
		return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("card %q: field %q: %s", e.Card, e.Field, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Record is one raw catalog entry keyed by the data source's field names
type Record map[string]any

// Name returns the record's name, or "" if it has none
func (r Record) Name() string {
	s, _ := r["name"].(string)
	return s
}

// Kind returns the upper-cased "type" field, or "" if it is missing
func (r Record) Kind() Kind {
	s, err := cast.ToStringE(r["type"])
	if err != nil {
		return ""
	}
	return Kind(strings.ToUpper(strings.TrimSpace(s)))
}

// Parse builds the variant named by the record's "type" field
func Parse(r Record) (Card, error) {
	switch r.Kind() {
	case KindMinion:
		return ParseMinion(r)
	case KindSpell:
		return ParseSpell(r)
	case KindWeapon:
		return ParseWeapon(r)
	default:
		return nil, &ParseError{Card: r.Name(), Field: "type", Reason: fmt.Sprintf("unsupported card type %q", r.Kind())}
	}
}

// ParseMinion builds a Minion. The record must be of type MINION and carry
// name, cost, attack and health.
func ParseMinion(r Record) (Minion, error) {
	base, err := parseBase(r, KindMinion)
	if err != nil {
		return Minion{}, err
	}
	m := Minion{Base: base}
	if m.Attack, err = intField(r, base.Name, "attack", 0); err != nil {
		return Minion{}, err
	}
	if m.Health, err = intField(r, base.Name, "health", 1); err != nil {
		return Minion{}, err
	}
	if m.Race, err = optionalString(r, base.Name, "race"); err != nil {
		return Minion{}, err
	}
	return m, nil
}

// ParseWeapon builds a Weapon. The data source stores a weapon's power under
// "attack".
func ParseWeapon(r Record) (Weapon, error) {
	base, err := parseBase(r, KindWeapon)
	if err != nil {
		return Weapon{}, err
	}
	w := Weapon{Base: base}
	if w.Power, err = intField(r, base.Name, "attack", 0); err != nil {
		return Weapon{}, err
	}
	if w.Durability, err = intField(r, base.Name, "durability", 1); err != nil {
		return Weapon{}, err
	}
	return w, nil
}

// ParseSpell builds a Spell, deriving its damage from the card text
func ParseSpell(r Record) (Spell, error) {
	base, err := parseBase(r, KindSpell)
	if err != nil {
		return Spell{}, err
	}
	return Spell{Base: base, Damage: SpellDamage(base.Text)}, nil
}

func parseBase(r Record, want Kind) (Base, error) {
	name, err := requiredString(r, "", "name")
	if err != nil {
		return Base{}, err
	}
	if name == "" {
		return Base{}, &ParseError{Field: "name", Reason: "empty"}
	}
	if got := r.Kind(); got != want {
		return Base{}, &ParseError{Card: name, Field: "type", Reason: fmt.Sprintf("expected %s, got %q", want, got)}
	}

	b := Base{Name: name, Class: Neutral, Mechanics: []string{}}
	if b.Cost, err = intField(r, name, "cost", 0); err != nil {
		return Base{}, err
	}
	if b.SetID, err = optionalString(r, name, "id"); err != nil {
		return Base{}, err
	}
	if b.Text, err = optionalString(r, name, "text"); err != nil {
		return Base{}, err
	}

	if raw, ok := r["mechanics"]; ok && raw != nil {
		mechanics, err := cast.ToStringSliceE(raw)
		if err != nil {
			return Base{}, &ParseError{Card: name, Field: "mechanics", Reason: "not a list of strings"}
		}
		b.Mechanics = append(b.Mechanics, mechanics...)
	}

	class, err := optionalString(r, name, "playerClass")
	if err != nil {
		return Base{}, err
	}
	if class != "" {
		b.Class = Class(strings.ToUpper(strings.TrimSpace(class)))
		if !b.Class.Valid() {
			return Base{}, &ParseError{Card: name, Field: "playerClass", Reason: fmt.Sprintf("unknown class %q", class)}
		}
	}

	return b, nil
}

func requiredString(r Record, card, key string) (string, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", &ParseError{Card: card, Field: key, Reason: "missing"}
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", &ParseError{Card: card, Field: key, Reason: "not a string"}
	}
	return s, nil
}

func optionalString(r Record, card, key string) (string, error) {
	if v, ok := r[key]; !ok || v == nil {
		return "", nil
	}
	return requiredString(r, card, key)
}

// intField reads a required integer no smaller than floor
func intField(r Record, card, key string, floor int) (int, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, &ParseError{Card: card, Field: key, Reason: "missing"}
	}
	n, err := toInt(v)
	if err != nil {
		return 0, &ParseError{Card: card, Field: key, Reason: fmt.Sprintf("not an integer: %v", v)}
	}
	if n < floor {
		return 0, &ParseError{Card: card, Field: key, Reason: fmt.Sprintf("must be at least %d, got %d", floor, n)}
	}
	return n, nil
}

// toInt accepts decimal strings and integral numbers
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	case float64:
		if n != math.Trunc(n) {
			return 0, errors.Errorf("fractional value %v", n)
		}
		return int(n), nil
	case float32:
		if float64(n) != math.Trunc(float64(n)) {
			return 0, errors.Errorf("fractional value %v", n)
		}
		return int(n), nil
	case bool:
		return 0, errors.New("boolean value")
	default:
		return cast.ToIntE(v)
	}
}
