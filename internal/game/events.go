package game

// EventType identifies the kind of a logged game event.
type EventType string

const (
	EventGameStart        EventType = "game_start"
	EventTurnStart        EventType = "turn_start"
	EventDiceRoll         EventType = "dice_roll"
	EventMove             EventType = "move"
	EventPassGo           EventType = "pass_go"
	EventPurchase         EventType = "purchase"
	EventPurchaseDeclined EventType = "purchase_declined"
	EventRentPayment      EventType = "rent_payment"
	EventTaxPayment       EventType = "tax_payment"
	EventCardDrawn        EventType = "card_drawn"
	EventCardEffect       EventType = "card_effect"
	EventGoToJail         EventType = "go_to_jail"
	EventJailRelease      EventType = "jail_release"
	EventMortgage         EventType = "mortgage"
	EventUnmortgage       EventType = "unmortgage"
	EventHouseBuilt       EventType = "house_built"
	EventHouseSold        EventType = "house_sold"
	EventHotelBuilt       EventType = "hotel_built"
	EventHotelSold        EventType = "hotel_sold"
	EventAuctionStart     EventType = "auction_start"
	EventAuctionBid       EventType = "auction_bid"
	EventAuctionPass      EventType = "auction_pass"
	EventAuctionEnd       EventType = "auction_end"
	EventTradeProposed    EventType = "trade_proposed"
	EventTradeAccepted    EventType = "trade_accepted"
	EventTradeRejected    EventType = "trade_rejected"
	EventTradeCancelled   EventType = "trade_cancelled"
	EventTradeExecuted    EventType = "trade_executed"
	EventTradeFailed      EventType = "trade_failed"
	EventBankruptcy       EventType = "bankruptcy"
	EventGameEnd          EventType = "game_end"
)

// NoPlayer marks an event not attributed to any player, and unowned
// properties in the ownership table.
const NoPlayer = -1

// Event is one entry in the append-only game log. Seq is assigned by the
// log at append time and increases by one per event.
type Event struct {
	Seq      int            `json:"seq"`
	Type     EventType      `json:"type"`
	PlayerID int            `json:"player_id"`
	Details  map[string]any `json:"details,omitempty"`
}

// EventLog is the ordered record of everything that happened in a game.
// Events are only ever appended; sequence order is the sole source of truth
// for history.
type EventLog struct {
	events []Event
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Log appends an event and returns its sequence number. Use NoPlayer for
// events with no acting player.
func (l *EventLog) Log(eventType EventType, playerID int, details map[string]any) int {
	seq := len(l.events)
	l.events = append(l.events, Event{
		Seq:      seq,
		Type:     eventType,
		PlayerID: playerID,
		Details:  details,
	})
	return seq
}

// Events returns a copy of the full log.
func (l *EventLog) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Recent returns a copy of the last n events, or all of them if fewer exist.
func (l *EventLog) Recent(n int) []Event {
	if n <= 0 {
		return nil
	}
	if n > len(l.events) {
		n = len(l.events)
	}
	out := make([]Event, n)
	copy(out, l.events[len(l.events)-n:])
	return out
}

// Len returns the number of logged events.
func (l *EventLog) Len() int {
	return len(l.events)
}
