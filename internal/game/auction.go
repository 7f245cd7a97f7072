package game

// Auction runs the bidding for a single property after the player who
// landed on it declined to buy. The initiator is pre-registered with a
// starting bid of 10% of the property price (minimum $1), so if everyone
// else passes the initiator wins at the floor price.
//
// The auction only decides a winner and a price; settlement of cash and
// ownership is GameState's ResolveAuction.
type Auction struct {
	PropertyPosition int
	PropertyName     string
	InitiatorID      int
	CurrentBid       int
	HighBidder       int
	Complete         bool
	MaxBidsPerPlayer int

	eligible      []int
	activeBidders map[int]struct{}
	bidCounts     map[int]int
	log           *EventLog
}

// NewAuction starts an auction and records the initiator's automatic
// starting bid.
func NewAuction(position int, name string, eligible []int, log *EventLog, initiatorID, price, maxBidsPerPlayer int) *Auction {
	a := &Auction{
		PropertyPosition: position,
		PropertyName:     name,
		InitiatorID:      initiatorID,
		HighBidder:       NoPlayer,
		MaxBidsPerPlayer: maxBidsPerPlayer,
		eligible:         append([]int(nil), eligible...),
		activeBidders:    make(map[int]struct{}, len(eligible)),
		bidCounts:        make(map[int]int, len(eligible)),
		log:              log,
	}
	for _, pid := range eligible {
		a.activeBidders[pid] = struct{}{}
		a.bidCounts[pid] = 0
	}

	startingBid := price / 10
	if startingBid < 1 {
		startingBid = 1
	}
	a.CurrentBid = startingBid
	a.HighBidder = initiatorID
	a.bidCounts[initiatorID] = 1

	log.Log(EventAuctionStart, NoPlayer, map[string]any{
		"property":     name,
		"position":     position,
		"players":      append([]int(nil), eligible...),
		"initiator":    initiatorID,
		"starting_bid": startingBid,
	})
	log.Log(EventAuctionBid, initiatorID, map[string]any{
		"property":   name,
		"amount":     startingBid,
		"bid_number": 1,
		"automatic":  true,
	})
	return a
}

// PlaceBid records a bid for a player. A bid at or below the current high
// bid, or from a player who has exhausted their bid allowance, passes the
// player automatically instead of being ignored so the auction cannot
// stall. A player who reaches the bid cap is passed right after the bid is
// recorded but can still win on the standing high bid.
func (a *Auction) PlaceBid(playerID, amount int) bool {
	if a.Complete {
		return false
	}
	if _, active := a.activeBidders[playerID]; !active {
		return false
	}
	if amount <= a.CurrentBid {
		a.PassTurn(playerID)
		return false
	}
	if a.bidCounts[playerID] >= a.MaxBidsPerPlayer {
		a.PassTurn(playerID)
		return false
	}

	a.CurrentBid = amount
	a.HighBidder = playerID
	a.bidCounts[playerID]++

	a.log.Log(EventAuctionBid, playerID, map[string]any{
		"property":   a.PropertyName,
		"amount":     amount,
		"bid_number": a.bidCounts[playerID],
	})

	if a.bidCounts[playerID] >= a.MaxBidsPerPlayer {
		a.PassTurn(playerID)
	}
	return true
}

// PassTurn removes a player from the active bidders and checks for
// completion.
func (a *Auction) PassTurn(playerID int) {
	if _, active := a.activeBidders[playerID]; !active {
		a.log.Log(EventAuctionPass, playerID, map[string]any{
			"property":       a.PropertyName,
			"already_passed": true,
			"active_bidders": a.ActiveBidders(),
		})
		return
	}
	delete(a.activeBidders, playerID)
	a.log.Log(EventAuctionPass, playerID, map[string]any{
		"property":          a.PropertyName,
		"remaining_bidders": a.ActiveBidders(),
	})
	a.checkCompletion()
}

func (a *Auction) checkCompletion() {
	if a.Complete || len(a.activeBidders) > 1 {
		return
	}
	a.Complete = true
	a.log.Log(EventAuctionEnd, a.HighBidder, map[string]any{
		"property":    a.PropertyName,
		"position":    a.PropertyPosition,
		"winning_bid": a.CurrentBid,
		"winner":      a.HighBidder,
	})
}

// Winner returns the winning player, or NoPlayer if the auction is still
// running or nobody bid.
func (a *Auction) Winner() int {
	if !a.Complete {
		return NoPlayer
	}
	return a.HighBidder
}

// WinningBid returns the current high bid.
func (a *Auction) WinningBid() int {
	return a.CurrentBid
}

// CanBid reports whether a player may still place bids.
func (a *Auction) CanBid(playerID int) bool {
	if _, active := a.activeBidders[playerID]; !active {
		return false
	}
	return a.bidCounts[playerID] < a.MaxBidsPerPlayer
}

// IsActiveBidder reports whether the player has not yet passed.
func (a *Auction) IsActiveBidder(playerID int) bool {
	_, active := a.activeBidders[playerID]
	return active
}

// ActiveBidders returns the players still in the auction, in eligibility
// order.
func (a *Auction) ActiveBidders() []int {
	out := make([]int, 0, len(a.activeBidders))
	for _, pid := range a.eligible {
		if _, active := a.activeBidders[pid]; active {
			out = append(out, pid)
		}
	}
	return out
}
