package game

// Snapshot is a read-only public projection of a GameState, safe to hand
// to clients. Deck order stays hidden; only pile counts are exposed.
type Snapshot struct {
	TurnNumber      int              `json:"turn_number"`
	CurrentPlayer   int              `json:"current_player"`
	GameOver        bool             `json:"game_over"`
	Winner          int              `json:"winner"`
	PendingDiceRoll bool             `json:"pending_dice_roll"`
	LastRoll        *DiceRoll        `json:"last_roll,omitempty"`
	Players         []PlayerSnapshot `json:"players"`
	Bank            BankSnapshot     `json:"bank"`
	Auction         *AuctionSnapshot `json:"auction,omitempty"`
	Decks           DeckCounts       `json:"decks"`
}

// PlayerSnapshot is one player's public state.
type PlayerSnapshot struct {
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Cash       int                `json:"cash"`
	Position   int                `json:"position"`
	InJail     bool               `json:"in_jail"`
	JailCards  int                `json:"jail_cards"`
	Bankrupt   bool               `json:"bankrupt"`
	Properties []PropertySnapshot `json:"properties"`
}

// PropertySnapshot is the public state of one owned space.
type PropertySnapshot struct {
	Position  int    `json:"position"`
	Name      string `json:"name"`
	Houses    int    `json:"houses"`
	Mortgaged bool   `json:"mortgaged"`
}

// BankSnapshot exposes remaining building supply.
type BankSnapshot struct {
	Houses int `json:"houses"`
	Hotels int `json:"hotels"`
}

// AuctionSnapshot summarizes a running auction.
type AuctionSnapshot struct {
	Position      int    `json:"position"`
	PropertyName  string `json:"property_name"`
	CurrentBid    int    `json:"current_bid"`
	HighBidder    int    `json:"high_bidder"`
	ActiveBidders []int  `json:"active_bidders"`
	Complete      bool   `json:"complete"`
}

// DeckCounts exposes pile sizes without revealing card order.
type DeckCounts struct {
	ChanceDraw            int `json:"chance_draw"`
	ChanceDiscard         int `json:"chance_discard"`
	CommunityChestDraw    int `json:"community_chest_draw"`
	CommunityChestDiscard int `json:"community_chest_discard"`
}

// Snapshot builds the public projection of the current state. The caller
// must hold the same exclusion domain as mutating calls.
func (g *GameState) Snapshot() Snapshot {
	s := Snapshot{
		TurnNumber:      g.TurnNumber,
		CurrentPlayer:   g.CurrentPlayerIndex,
		GameOver:        g.GameOver,
		Winner:          g.Winner,
		PendingDiceRoll: g.PendingDiceRoll,
		Bank:            BankSnapshot{Houses: g.Bank.Houses, Hotels: g.Bank.Hotels},
		Decks: DeckCounts{
			ChanceDraw:            g.Chance.Remaining(),
			ChanceDiscard:         g.Chance.DiscardCount(),
			CommunityChestDraw:    g.CommunityChest.Remaining(),
			CommunityChestDiscard: g.CommunityChest.DiscardCount(),
		},
	}
	if g.LastRoll != nil {
		roll := *g.LastRoll
		s.LastRoll = &roll
	}

	for _, p := range g.Players {
		ps := PlayerSnapshot{
			ID:        p.ID,
			Name:      p.Name,
			Cash:      p.Cash,
			Position:  p.Position,
			InJail:    p.InJail,
			JailCards: p.GetOutOfJailCards,
			Bankrupt:  p.Bankrupt,
		}
		for _, pos := range p.PropertyPositions() {
			own := g.Ownership[pos]
			ps.Properties = append(ps.Properties, PropertySnapshot{
				Position:  pos,
				Name:      g.Board.Space(pos).Name,
				Houses:    own.Houses,
				Mortgaged: own.Mortgaged,
			})
		}
		s.Players = append(s.Players, ps)
	}

	if a := g.ActiveAuction; a != nil {
		s.Auction = &AuctionSnapshot{
			Position:      a.PropertyPosition,
			PropertyName:  a.PropertyName,
			CurrentBid:    a.CurrentBid,
			HighBidder:    a.HighBidder,
			ActiveBidders: a.ActiveBidders(),
			Complete:      a.Complete,
		}
	}
	return s
}
