package game

// PlayerState is the complete state of one player.
type PlayerState struct {
	ID                 int
	Name               string
	Cash               int
	Position           int
	InJail             bool
	JailTurns          int
	GetOutOfJailCards  int
	Bankrupt           bool
	ConsecutiveDoubles int

	// Properties holds the board positions this player owns.
	Properties map[int]struct{}
}

// NewPlayerState creates a player at GO with the given starting cash.
func NewPlayerState(id int, name string, startingCash int) *PlayerState {
	return &PlayerState{
		ID:         id,
		Name:       name,
		Cash:       startingCash,
		Properties: make(map[int]struct{}),
	}
}

// OwnsProperty reports whether the player owns the space at position.
func (p *PlayerState) OwnsProperty(position int) bool {
	_, ok := p.Properties[position]
	return ok
}

// PropertyPositions returns the positions the player owns, in board order.
func (p *PlayerState) PropertyPositions() []int {
	out := make([]int, 0, len(p.Properties))
	for pos := 0; pos < BoardSize; pos++ {
		if _, ok := p.Properties[pos]; ok {
			out = append(out, pos)
		}
	}
	return out
}

// PropertyOwnership tracks the ownership state of one purchasable space.
// A hotel is represented as 5 houses.
type PropertyOwnership struct {
	OwnerID   int
	Houses    int
	Mortgaged bool
}

// Owned reports whether any player owns the property.
func (o *PropertyOwnership) Owned() bool {
	return o.OwnerID != NoPlayer
}

// HasHotel reports whether the property carries a hotel.
func (o *PropertyOwnership) HasHotel() bool {
	return o.Houses == 5
}
