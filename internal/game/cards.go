package game

import (
	"fmt"
	"math/rand"
)

// CardKind indicates the effect of a Chance or Community Chest card.
type CardKind int

const (
	CardMoveTo CardKind = iota
	CardMoveSpaces
	CardMoveToNearest
	CardCollect
	CardPay
	CardPayPerHouse
	CardPayPerBuilding
	CardCollectFromPlayers
	CardPayToPlayers
	CardGoToJail
	CardGetOutOfJail
)

var cardKindNames = map[CardKind]string{
	CardMoveTo:             "move_to",
	CardMoveSpaces:         "move_spaces",
	CardMoveToNearest:      "move_to_nearest",
	CardCollect:            "collect",
	CardPay:                "pay",
	CardPayPerHouse:        "pay_per_house",
	CardPayPerBuilding:     "pay_per_building",
	CardCollectFromPlayers: "collect_from_players",
	CardPayToPlayers:       "pay_to_players",
	CardGoToJail:           "go_to_jail",
	CardGetOutOfJail:       "get_out_of_jail",
}

func (k CardKind) String() string {
	if name, ok := cardKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("card_kind_%d", int(k))
}

// Card is a single Chance or Community Chest card. Which fields are
// meaningful depends on Kind: Value for money effects and MOVE_SPACES
// distances, HotelValue for the per-hotel rate of PAY_PER_BUILDING,
// TargetPosition for MOVE_TO, TargetKind and RentMultiplier for
// MOVE_TO_NEAREST.
type Card struct {
	Description    string
	Kind           CardKind
	Value          int
	HotelValue     int
	TargetPosition int
	TargetKind     SpaceKind
	RentMultiplier float64
	CollectGo      bool
}

// DeckKind selects one of the two card decks.
type DeckKind string

const (
	DeckChance         DeckKind = "chance"
	DeckCommunityChest DeckKind = "community_chest"
)

// Deck holds three disjoint card pools: the shuffled draw pile, the discard
// pile, and cards held out of play by players (Get Out of Jail Free). A card
// belongs to exactly one pool at a time.
type Deck struct {
	Name string

	draw    []Card
	discard []Card
	held    []Card
	rng     *rand.Rand
}

// NewDeck creates a deck from the given cards, shuffled once with the game's
// seeded RNG.
func NewDeck(name string, cards []Card, rng *rand.Rand) *Deck {
	d := &Deck{
		Name: name,
		draw: append([]Card(nil), cards...),
		rng:  rng,
	}
	d.shuffle()
	return d
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}

// Draw removes and returns the top card of the draw pile. An empty draw pile
// is replenished by reshuffling the discard pile. Drawing with both piles
// empty returns a harmless zero-collect card.
func (d *Deck) Draw() Card {
	if len(d.draw) == 0 {
		if len(d.discard) == 0 {
			return Card{Description: "No cards available", Kind: CardCollect}
		}
		d.draw = append(d.draw, d.discard...)
		d.discard = d.discard[:0]
		d.shuffle()
	}
	card := d.draw[0]
	d.draw = d.draw[1:]
	return card
}

// Discard returns a card to the bottom of the discard pile.
func (d *Deck) Discard(card Card) {
	d.discard = append(d.discard, card)
}

// Hold moves a drawn card to the held pool while a player keeps it.
func (d *Deck) Hold(card Card) {
	d.held = append(d.held, card)
}

// ReturnHeld moves one held card back to the discard pile. Reports whether a
// held card was available.
func (d *Deck) ReturnHeld() bool {
	if len(d.held) == 0 {
		return false
	}
	card := d.held[len(d.held)-1]
	d.held = d.held[:len(d.held)-1]
	d.Discard(card)
	return true
}

// Remaining returns the number of cards left in the draw pile.
func (d *Deck) Remaining() int { return len(d.draw) }

// DiscardCount returns the number of cards in the discard pile.
func (d *Deck) DiscardCount() int { return len(d.discard) }

// HeldCount returns the number of cards held by players.
func (d *Deck) HeldCount() int { return len(d.held) }

// NewChanceDeck creates the standard Chance deck.
func NewChanceDeck(rng *rand.Rand) *Deck {
	cards := []Card{
		{Description: "Advance to Go (Collect $200)", Kind: CardMoveTo, TargetPosition: 0, CollectGo: true},
		{Description: "Advance to Illinois Ave.", Kind: CardMoveTo, TargetPosition: 24, CollectGo: true},
		{Description: "Advance to St. Charles Place", Kind: CardMoveTo, TargetPosition: 11, CollectGo: true},
		{
			Description:    "Advance token to nearest Utility. If unowned, you may buy it. If owned, pay owner 10 times dice roll.",
			Kind:           CardMoveToNearest,
			TargetKind:     SpaceUtility,
			RentMultiplier: 10,
			CollectGo:      true,
		},
		{
			Description:    "Advance token to nearest Railroad. If unowned, you may buy it. If owned, pay owner twice the rental.",
			Kind:           CardMoveToNearest,
			TargetKind:     SpaceRailroad,
			RentMultiplier: 2,
			CollectGo:      true,
		},
		{
			Description:    "Advance token to nearest Railroad. If unowned, you may buy it. If owned, pay owner twice the rental.",
			Kind:           CardMoveToNearest,
			TargetKind:     SpaceRailroad,
			RentMultiplier: 2,
			CollectGo:      true,
		},
		{Description: "Bank pays you dividend of $50", Kind: CardCollect, Value: 50},
		{Description: "Get Out of Jail Free", Kind: CardGetOutOfJail},
		{Description: "Go Back 3 Spaces", Kind: CardMoveSpaces, Value: -3},
		{Description: "Go to Jail", Kind: CardGoToJail},
		{Description: "Make general repairs on all your property: Pay $25 per house, $100 per hotel", Kind: CardPayPerHouse, Value: 25},
		{Description: "Pay poor tax of $15", Kind: CardPay, Value: 15},
		{Description: "Take a trip to Reading Railroad", Kind: CardMoveTo, TargetPosition: 5, CollectGo: true},
		{Description: "Take a walk on the Boardwalk", Kind: CardMoveTo, TargetPosition: 39, CollectGo: true},
		{Description: "You have been elected Chairman of the Board. Pay each player $50", Kind: CardPayToPlayers, Value: 50},
		{Description: "Your building loan matures. Collect $150", Kind: CardCollect, Value: 150},
	}
	return NewDeck(string(DeckChance), cards, rng)
}

// NewCommunityChestDeck creates the standard Community Chest deck.
func NewCommunityChestDeck(rng *rand.Rand) *Deck {
	cards := []Card{
		{Description: "Advance to Go (Collect $200)", Kind: CardMoveTo, TargetPosition: 0, CollectGo: true},
		{Description: "Bank error in your favor. Collect $200", Kind: CardCollect, Value: 200},
		{Description: "Doctor's fees. Pay $50", Kind: CardPay, Value: 50},
		{Description: "From sale of stock you get $50", Kind: CardCollect, Value: 50},
		{Description: "Get Out of Jail Free", Kind: CardGetOutOfJail},
		{Description: "Go to Jail", Kind: CardGoToJail},
		{Description: "Grand Opera Night. Collect $50 from every player", Kind: CardCollectFromPlayers, Value: 50},
		{Description: "Holiday Fund matures. Receive $100", Kind: CardCollect, Value: 100},
		{Description: "Income tax refund. Collect $20", Kind: CardCollect, Value: 20},
		{Description: "It is your birthday. Collect $10 from every player", Kind: CardCollectFromPlayers, Value: 10},
		{Description: "Life insurance matures. Collect $100", Kind: CardCollect, Value: 100},
		{Description: "Hospital fees. Pay $100", Kind: CardPay, Value: 100},
		{Description: "School fees. Pay $150", Kind: CardPay, Value: 150},
		{Description: "Receive $25 consultancy fee", Kind: CardCollect, Value: 25},
		{Description: "You are assessed for street repairs: Pay $40 per house, $115 per hotel", Kind: CardPayPerHouse, Value: 40},
		{Description: "You have won second prize in a beauty contest. Collect $10", Kind: CardCollect, Value: 10},
		{Description: "You inherit $100", Kind: CardCollect, Value: 100},
	}
	return NewDeck(string(DeckCommunityChest), cards, rng)
}
