package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpellDamage(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Deal $3 damage to a minion.", 3},
		{"Draw a card.", 0},
		{"deal $5 damage", 5},
		{"DEAL $2 DAMAGE to all enemies.", 2},
		{"<b>Combo:</b> Deal $1 damage. Then deal $4 damage.", 1},
		{"Deal $10 damage.", 0},
		{"Deal 3 damage.", 0},
		{"Deals $2 damage.", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, SpellDamage(tt.text))
		})
	}
}
