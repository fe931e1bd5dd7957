package threat

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arcanaland/hearthlodge/internal/card"
	"github.com/arcanaland/hearthlodge/internal/catalog"
)

func newResolver(t *testing.T, logger *zap.Logger, records ...map[string]any) *Resolver {
	t.Helper()
	raw := make([]any, 0, len(records))
	for _, r := range records {
		raw = append(raw, r)
	}
	c, err := catalog.Load(raw, logger)
	require.NoError(t, err)
	return NewResolver(c)
}

func names(cards []card.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Info().Name)
	}
	return out
}

var (
	target = map[string]any{"name": "Target", "type": "MINION", "cost": "3", "attack": "1", "health": "3"}
	killer = map[string]any{"name": "Killer", "type": "MINION", "cost": "2", "attack": "4", "health": "4", "playerClass": "MAGE"}
	bolt   = map[string]any{"name": "Bolt", "type": "SPELL", "cost": "1", "text": "Deal $3 damage.", "playerClass": "MAGE"}
)

func TestResolveThreatsScenario(t *testing.T) {
	r := newResolver(t, nil, target, killer, bolt)

	got, err := r.ResolveThreats("Target")
	require.NoError(t, err)

	require.Len(t, got, len(card.Classes))
	assert.Equal(t, []string{"Bolt", "Killer"}, names(got.Class(card.Mage)))
	assert.Equal(t, 2, got.Len())
	for _, group := range got {
		if group.Class != card.Mage {
			assert.Empty(t, group.Cards, group.Class)
			assert.NotNil(t, group.Cards, group.Class)
		}
	}
}

func TestResolveByVariant(t *testing.T) {
	r := newResolver(t, nil,
		target, killer, bolt,
		map[string]any{"name": "Too Pricey", "type": "MINION", "cost": "4", "attack": "9", "health": "9"},
		map[string]any{"name": "Too Weak", "type": "MINION", "cost": "1", "attack": "2", "health": "2"},
		map[string]any{"name": "Exact", "type": "MINION", "cost": "3", "attack": "3", "health": "1"},
		map[string]any{"name": "Arcane Intellect", "type": "SPELL", "cost": "3", "text": "Draw 2 cards.", "playerClass": "MAGE"},
		map[string]any{"name": "Pyroblast", "type": "SPELL", "cost": "10", "text": "Deal $10 damage.", "playerClass": "MAGE"},
		map[string]any{"name": "Fireball", "type": "SPELL", "cost": "4", "text": "Deal $6 damage.", "playerClass": "MAGE"},
		map[string]any{"name": "Fiery War Axe", "type": "WEAPON", "cost": "2", "attack": "3", "durability": "2", "playerClass": "WARRIOR"},
		map[string]any{"name": "Light's Justice", "type": "WEAPON", "cost": "1", "attack": "1", "durability": "4", "playerClass": "PALADIN"},
		map[string]any{"name": "Hero Power", "type": "HERO_POWER", "cost": "2"},
	)

	got, err := r.Resolve("Target")
	require.NoError(t, err)

	assert.Equal(t, "Target", got.Target.Name)
	require.Len(t, got.Minions, 2)
	assert.Equal(t, "Killer", got.Minions[0].Name)
	assert.Equal(t, "Exact", got.Minions[1].Name)
	require.Len(t, got.Spells, 1)
	assert.Equal(t, "Bolt", got.Spells[0].Name)
	require.Len(t, got.Weapons, 1)
	assert.Equal(t, "Fiery War Axe", got.Weapons[0].Name)

	assert.Equal(t, []string{"Killer", "Exact", "Bolt", "Fiery War Axe"}, names(got.All()))
}

func TestResolveEmpty(t *testing.T) {
	r := newResolver(t, nil,
		map[string]any{"name": "Giant", "type": "MINION", "cost": "1", "attack": "1", "health": "12"},
		bolt,
	)

	got, err := r.Resolve("Giant")
	require.NoError(t, err)
	assert.Empty(t, got.All())
	assert.Equal(t, 0, got.Categorize().Len())
}

func TestResolveSkipsMalformedRecords(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	r := newResolver(t, zap.New(core),
		target,
		map[string]any{"name": "Broken", "type": "MINION", "cost": "three", "attack": "9", "health": "9"},
		killer,
		map[string]any{"name": "Bad Spell", "type": "SPELL", "text": "Deal $5 damage."},
		bolt,
	)

	got, err := r.Resolve("Target")
	require.NoError(t, err)
	assert.Equal(t, []string{"Killer", "Bolt"}, names(got.All()))
	assert.Equal(t, 2, logs.Len())
}

func TestResolveInvalidTarget(t *testing.T) {
	r := newResolver(t, nil, target, bolt,
		map[string]any{"name": "Broken", "type": "MINION", "cost": "three", "attack": "1", "health": "1"},
	)

	for _, name := range []string{"Nobody", "Bolt", "Broken"} {
		t.Run(name, func(t *testing.T) {
			_, err := r.Resolve(name)
			assert.True(t, errors.Is(err, ErrInvalidTarget))

			_, err = r.ResolveThreats(name)
			assert.True(t, errors.Is(err, ErrInvalidTarget))
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	records := []map[string]any{target, killer, bolt}
	for i, cost := range []string{"3", "1", "2", "1", "0", "3"} {
		records = append(records, map[string]any{
			"name": "Minion " + string(rune('A'+i)), "type": "MINION", "cost": cost, "attack": "5", "health": "1",
		})
	}
	r := newResolver(t, nil, records...)

	first, err := r.ResolveThreats("Target")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := r.ResolveThreats("Target")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestContestPredicates(t *testing.T) {
	tgt := card.Minion{Base: card.Base{Name: "T", Cost: 3}, Attack: 1, Health: 3}

	assert.True(t, MinionContests(card.Minion{Base: card.Base{Cost: 3}, Attack: 3}, tgt))
	assert.False(t, MinionContests(card.Minion{Base: card.Base{Cost: 4}, Attack: 3}, tgt))
	assert.False(t, MinionContests(card.Minion{Base: card.Base{Cost: 2}, Attack: 2}, tgt))

	assert.True(t, SpellContests(card.Spell{Base: card.Base{Cost: 1}, Damage: 3}, tgt))
	assert.False(t, SpellContests(card.Spell{Base: card.Base{Cost: 1}, Damage: 0}, tgt))
	assert.False(t, SpellContests(card.Spell{Base: card.Base{Cost: 4}, Damage: 5}, tgt))

	assert.True(t, WeaponContests(card.Weapon{Base: card.Base{Cost: 2}, Power: 3}, tgt))
	assert.False(t, WeaponContests(card.Weapon{Base: card.Base{Cost: 2}, Power: 2}, tgt))
}
