package game

// TradeStatus is the lifecycle state of a trade offer.
type TradeStatus string

const (
	TradePending   TradeStatus = "pending"
	TradeAccepted  TradeStatus = "accepted"
	TradeRejected  TradeStatus = "rejected"
	TradeCancelled TradeStatus = "cancelled"

	// TradeFailed is terminal: the trade was accepted but state drifted
	// between proposal and execution, so nothing was exchanged.
	TradeFailed TradeStatus = "failed"
)

// TradeOffer bundles what one side of a trade gives up: cash, property
// positions, and Get Out of Jail Free cards.
type TradeOffer struct {
	Cash       int   `json:"cash"`
	Properties []int `json:"properties"`
	JailCards  int   `json:"jail_cards"`
}

// Empty reports whether the offer contains nothing.
func (o TradeOffer) Empty() bool {
	return o.Cash == 0 && len(o.Properties) == 0 && o.JailCards == 0
}

// Trade is a proposed exchange between two players. Offer is what the
// proposer gives; Want is what the proposer asks of the recipient.
type Trade struct {
	ID           int
	ProposerID   int
	RecipientID  int
	Offer        TradeOffer
	Want         TradeOffer
	Status       TradeStatus
	ProposedTurn int
}

// TradeManager tracks pending trade offers and the history of settled
// ones. Trade IDs are monotonic within a game.
type TradeManager struct {
	nextID  int
	active  []*Trade
	history []*Trade
}

// NewTradeManager creates an empty trade manager.
func NewTradeManager() *TradeManager {
	return &TradeManager{nextID: 1}
}

// Create registers a new pending trade and returns it.
func (m *TradeManager) Create(proposerID, recipientID int, offer, want TradeOffer, turn int) *Trade {
	t := &Trade{
		ID:           m.nextID,
		ProposerID:   proposerID,
		RecipientID:  recipientID,
		Offer:        offer,
		Want:         want,
		Status:       TradePending,
		ProposedTurn: turn,
	}
	m.nextID++
	m.active = append(m.active, t)
	return t
}

// Get returns the trade with the given ID, pending or settled, or nil.
func (m *TradeManager) Get(tradeID int) *Trade {
	for _, t := range m.active {
		if t.ID == tradeID {
			return t
		}
	}
	for _, t := range m.history {
		if t.ID == tradeID {
			return t
		}
	}
	return nil
}

// ActiveFor returns the pending trades where the player is proposer or
// recipient.
func (m *TradeManager) ActiveFor(playerID int) []*Trade {
	var out []*Trade
	for _, t := range m.active {
		if t.ProposerID == playerID || t.RecipientID == playerID {
			out = append(out, t)
		}
	}
	return out
}

// Accept marks a pending trade accepted and moves it to history. Returns
// nil if the trade does not exist or is not pending.
func (m *TradeManager) Accept(tradeID int) *Trade {
	return m.settle(tradeID, TradeAccepted)
}

// Reject marks a pending trade rejected and moves it to history.
func (m *TradeManager) Reject(tradeID int) *Trade {
	return m.settle(tradeID, TradeRejected)
}

// Cancel withdraws a pending trade and moves it to history.
func (m *TradeManager) Cancel(tradeID int) *Trade {
	return m.settle(tradeID, TradeCancelled)
}

func (m *TradeManager) settle(tradeID int, status TradeStatus) *Trade {
	for i, t := range m.active {
		if t.ID != tradeID {
			continue
		}
		if t.Status != TradePending {
			return nil
		}
		t.Status = status
		m.active = append(m.active[:i], m.active[i+1:]...)
		m.history = append(m.history, t)
		return t
	}
	return nil
}

// ActiveCount returns the number of pending trades.
func (m *TradeManager) ActiveCount() int {
	return len(m.active)
}
