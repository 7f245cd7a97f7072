package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeck_DrawAndDiscard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deck := NewChanceDeck(rng)
	total := deck.Remaining()
	require.Equal(t, 16, total)

	card := deck.Draw()
	assert.NotEmpty(t, card.Description)
	assert.Equal(t, total-1, deck.Remaining())

	deck.Discard(card)
	assert.Equal(t, 1, deck.DiscardCount())
}

func TestDeck_ReshuffleOnEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deck := NewDeck("test", []Card{
		{Description: "a", Kind: CardCollect, Value: 1},
		{Description: "b", Kind: CardCollect, Value: 2},
	}, rng)

	first := deck.Draw()
	second := deck.Draw()
	deck.Discard(first)
	deck.Discard(second)
	require.Equal(t, 0, deck.Remaining())
	require.Equal(t, 2, deck.DiscardCount())

	// Next draw reshuffles the discard pile back in.
	card := deck.Draw()
	assert.Contains(t, []string{"a", "b"}, card.Description)
	assert.Equal(t, 1, deck.Remaining())
	assert.Equal(t, 0, deck.DiscardCount())
}

func TestDeck_EmptyDrawIsHarmless(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deck := NewDeck("empty", nil, rng)

	card := deck.Draw()
	assert.Equal(t, CardCollect, card.Kind)
	assert.Zero(t, card.Value)
}

func TestDeck_HeldPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deck := NewDeck("test", []Card{{Description: "jail card", Kind: CardGetOutOfJail}}, rng)

	card := deck.Draw()
	deck.Hold(card)
	assert.Equal(t, 1, deck.HeldCount())
	assert.Equal(t, 0, deck.DiscardCount())

	require.True(t, deck.ReturnHeld())
	assert.Equal(t, 0, deck.HeldCount())
	assert.Equal(t, 1, deck.DiscardCount())

	assert.False(t, deck.ReturnHeld())
}

func TestDeck_ShuffleDeterministic(t *testing.T) {
	a := NewChanceDeck(rand.New(rand.NewSource(7)))
	b := NewChanceDeck(rand.New(rand.NewSource(7)))

	for a.Remaining() > 0 {
		require.Equal(t, a.Draw().Description, b.Draw().Description)
	}
}

func TestCommunityChestDeck_Size(t *testing.T) {
	deck := NewCommunityChestDeck(rand.New(rand.NewSource(1)))
	assert.Equal(t, 17, deck.Remaining())
}
