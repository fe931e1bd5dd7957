package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arcanaland/hearthlodge/internal/card"
)

func fixture() []any {
	return []any{
		map[string]any{"name": "Target", "type": "MINION", "cost": "3", "attack": "1", "health": "3"},
		map[string]any{"name": "Killer", "type": "MINION", "cost": "2", "attack": "4", "health": "4", "playerClass": "MAGE"},
		map[string]any{"name": "Bolt", "type": "SPELL", "cost": "1", "text": "Deal $3 damage.", "playerClass": "MAGE"},
		map[string]any{"name": "C++ Golem", "type": "MINION", "cost": "3", "attack": "3", "health": "3"},
		map[string]any{"name": "Abacus", "type": "MINION", "cost": "three", "attack": "1", "health": "1"},
		map[string]any{"name": "Axe", "type": "WEAPON", "cost": "2", "attack": "3", "durability": "2", "playerClass": "WARRIOR"},
	}
}

func load(t *testing.T, raw any) *Catalog {
	t.Helper()
	c, err := Load(raw, nil)
	require.NoError(t, err)
	return c
}

func TestLoad(t *testing.T) {
	c := load(t, fixture())

	assert.Equal(t, 6, c.Len())
	assert.Equal(t, []string{"Target", "Killer", "Bolt", "C++ Golem", "Abacus", "Axe"}, c.AllNames())
}

func TestLoadDuplicateNamesLastWins(t *testing.T) {
	c := load(t, []any{
		map[string]any{"name": "Wisp", "type": "MINION", "cost": "0", "attack": "1", "health": "1"},
		map[string]any{"name": "Other", "type": "MINION", "cost": "1", "attack": "1", "health": "1"},
		map[string]any{"name": "Wisp", "type": "MINION", "cost": "0", "attack": "2", "health": "1"},
	})

	assert.Equal(t, []string{"Wisp", "Other"}, c.AllNames())
	rec, err := c.LookupExact("Wisp")
	require.NoError(t, err)
	assert.Equal(t, "2", rec["attack"])
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"not a list", map[string]any{"name": "Wisp"}},
		{"scalar", "cards"},
		{"element not a mapping", []any{map[string]any{"name": "Wisp"}, 42}},
		{"element without name", []any{map[string]any{"type": "MINION"}}},
		{"non-string name", []any{map[string]any{"name": 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.raw, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLoad))
		})
	}
}

func TestLookupExact(t *testing.T) {
	c := load(t, fixture())

	rec, err := c.LookupExact("Bolt")
	require.NoError(t, err)
	assert.Equal(t, "Deal $3 damage.", rec["text"])

	rec["text"] = "mutated"
	again, err := c.LookupExact("Bolt")
	require.NoError(t, err)
	assert.Equal(t, "Deal $3 damage.", again["text"])

	_, err = c.LookupExact("bolt")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLookupPartial(t *testing.T) {
	c := load(t, fixture())

	assert.Equal(t, []string{"Target", "Abacus", "Axe"}, c.LookupPartial("A"))
	assert.Equal(t, []string{"C++ Golem"}, c.LookupPartial("c++"))
	assert.Empty(t, c.LookupPartial("a.b"))
	assert.Empty(t, c.LookupPartial("zzz"))
	assert.NotNil(t, c.LookupPartial("zzz"))
}

func TestLookupPartialLiteralDot(t *testing.T) {
	c := load(t, []any{
		map[string]any{"name": "a.b", "type": "MINION", "cost": "1", "attack": "1", "health": "1"},
		map[string]any{"name": "axb", "type": "MINION", "cost": "1", "attack": "1", "health": "1"},
	})

	assert.Equal(t, []string{"a.b"}, c.LookupPartial("a.b"))
}

func TestScansSkipMalformedRecords(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c, err := Load(fixture(), zap.New(core))
	require.NoError(t, err)

	minions := c.Minions()
	names := make([]string, 0, len(minions))
	for _, m := range minions {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Target", "Killer", "C++ Golem"}, names)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Abacus", entry.ContextMap()["card"])
	assert.Equal(t, "MINION", entry.ContextMap()["type"])

	spells := c.Spells()
	require.Len(t, spells, 1)
	assert.Equal(t, 3, spells[0].Damage)

	weapons := c.Weapons()
	require.Len(t, weapons, 1)
	assert.Equal(t, 3, weapons[0].Power)
}

func TestRecords(t *testing.T) {
	c := load(t, fixture())

	recs := c.Records(card.KindSpell)
	require.Len(t, recs, 1)
	assert.Equal(t, "Bolt", recs[0].Name())
	assert.Empty(t, c.Records(card.Kind("HERO")))
}

func TestFilterMinions(t *testing.T) {
	c := load(t, fixture())

	got, err := c.FilterMinions(map[string]int{"cost": 3})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Target", got[0].Name)
	assert.Equal(t, "C++ Golem", got[1].Name)

	got, err = c.FilterMinions(map[string]int{"cost": 3, "attack": 3})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "C++ Golem", got[0].Name)

	got, err = c.FilterMinions(map[string]int{"health": 9})
	require.NoError(t, err)
	assert.Empty(t, got)

	all, err := c.FilterMinions(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = c.FilterMinions(map[string]int{"race": 1})
	assert.True(t, errors.Is(err, ErrUnknownAttribute))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "cards.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[
		{"name": "Wisp", "type": "MINION", "cost": 0, "attack": 1, "health": 1},
		{"name": "Moonfire", "type": "SPELL", "cost": 0, "text": "Deal $1 damage.", "playerClass": "DRUID"}
	]`), 0644))

	c, err := ReadFile(jsonPath, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wisp", "Moonfire"}, c.AllNames())
	require.Len(t, c.Minions(), 1)
	assert.Equal(t, 1, c.Minions()[0].Attack)

	yamlPath := filepath.Join(dir, "cards.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
- name: Wisp
  type: MINION
  cost: 0
  attack: 1
  health: 1
  mechanics: [Taunt]
`), 0644))

	c, err = ReadFile(yamlPath, nil)
	require.NoError(t, err)
	minions := c.Minions()
	require.Len(t, minions, 1)
	assert.Equal(t, []string{"Taunt"}, minions[0].Mechanics)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"name": "Wisp"`), 0644))
	_, err = ReadFile(badPath, nil)
	assert.True(t, errors.Is(err, ErrLoad))

	_, err = ReadFile(filepath.Join(dir, "missing.json"), nil)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrLoad))
}
