package threat

import (
	"sort"

	"github.com/arcanaland/hearthlodge/internal/card"
)

// Group is the cards of one class, cheapest first
type Group struct {
	Class card.Class
	Cards []card.Card
}

// Categorized has one Group per class in card.Classes order, including
// classes with no cards
type Categorized []Group

// Class returns the cards grouped under c
func (g Categorized) Class(c card.Class) []card.Card {
	for _, group := range g {
		if group.Class == c {
			return group.Cards
		}
	}
	return nil
}

// Len returns the total number of cards across all groups
func (g Categorized) Len() int {
	n := 0
	for _, group := range g {
		n += len(group.Cards)
	}
	return n
}

// Categorize splits cards by class and stable-sorts each class by cost.
// Cards with a class outside card.Classes are grouped under NEUTRAL.
func Categorize(cards []card.Card) Categorized {
	groups := make(Categorized, len(card.Classes))
	index := make(map[card.Class]int, len(card.Classes))
	for i, c := range card.Classes {
		groups[i] = Group{Class: c, Cards: []card.Card{}}
		index[c] = i
	}

	for _, c := range cards {
		i, ok := index[c.Info().Class]
		if !ok {
			i = index[card.Neutral]
		}
		groups[i].Cards = append(groups[i].Cards, c)
	}

	for _, group := range groups {
		cards := group.Cards
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].Info().Cost < cards[j].Info().Cost
		})
	}
	return groups
}
