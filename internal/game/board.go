package game

import "fmt"

// Board layout constants for the standard US board.
const (
	BoardSize        = 40
	GoPosition       = 0
	JailPosition     = 10
	GoToJailPosition = 30
)

// SpaceKind indicates the category of a board space.
type SpaceKind int

const (
	SpaceGo SpaceKind = iota
	SpaceProperty
	SpaceRailroad
	SpaceUtility
	SpaceTax
	SpaceChance
	SpaceCommunityChest
	SpaceJail
	SpaceGoToJail
	SpaceFreeParking
)

var spaceKindNames = map[SpaceKind]string{
	SpaceGo:             "go",
	SpaceProperty:       "property",
	SpaceRailroad:       "railroad",
	SpaceUtility:        "utility",
	SpaceTax:            "tax",
	SpaceChance:         "chance",
	SpaceCommunityChest: "community_chest",
	SpaceJail:           "jail",
	SpaceGoToJail:       "go_to_jail",
	SpaceFreeParking:    "free_parking",
}

func (k SpaceKind) String() string {
	if name, ok := spaceKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("space_kind_%d", int(k))
}

// Space is a single board space. Which fields are meaningful depends on Kind:
// Price/ColorGroup/Rent/HouseCost/MortgageValue for properties, Price and
// MortgageValue for railroads and utilities, TaxAmount for tax spaces.
type Space struct {
	Name     string
	Position int
	Kind     SpaceKind

	Price         int
	ColorGroup    string
	Rent          [6]int // indexed by houses 0-4, 5 = hotel
	HouseCost     int
	MortgageValue int

	TaxAmount int
	TaxChoice bool
}

// Purchasable reports whether the space can be owned by a player.
func (s *Space) Purchasable() bool {
	switch s.Kind {
	case SpaceProperty, SpaceRailroad, SpaceUtility:
		return true
	}
	return false
}

// PropertyRent returns the rent for a property space at the given improvement
// level. Base rent is doubled when the owner holds the complete unmortgaged
// color group.
func (s *Space) PropertyRent(houses int, hasMonopoly bool) int {
	if houses == 0 {
		if hasMonopoly {
			return s.Rent[0] * 2
		}
		return s.Rent[0]
	}
	if houses > 5 {
		houses = 5
	}
	return s.Rent[houses]
}

// RailroadRent returns the rent for a railroad given how many railroads the
// owner holds: 25, 50, 100, 200.
func RailroadRent(railroadsOwned int) int {
	if railroadsOwned < 1 {
		return 0
	}
	return 25 << (railroadsOwned - 1)
}

// UtilityRent returns the rent for a utility: 4x the dice roll with one
// utility owned, 10x with both.
func UtilityRent(diceRoll, utilitiesOwned int) int {
	if utilitiesOwned >= 2 {
		return diceRoll * 10
	}
	return diceRoll * 4
}

func property(name string, position, price int, color string, rent [6]int, houseCost, mortgage int) Space {
	return Space{
		Name:          name,
		Position:      position,
		Kind:          SpaceProperty,
		Price:         price,
		ColorGroup:    color,
		Rent:          rent,
		HouseCost:     houseCost,
		MortgageValue: mortgage,
	}
}

func railroad(name string, position int) Space {
	return Space{Name: name, Position: position, Kind: SpaceRailroad, Price: 200, MortgageValue: 100}
}

func utility(name string, position int) Space {
	return Space{Name: name, Position: position, Kind: SpaceUtility, Price: 150, MortgageValue: 75}
}

func tax(name string, position, amount int) Space {
	return Space{Name: name, Position: position, Kind: SpaceTax, TaxAmount: amount}
}

// Board is the immutable 40-space layout plus derived lookup indexes. The
// color-group index is built once at construction and never mutated.
type Board struct {
	Spaces [BoardSize]Space

	colorGroups map[string][]int
	railroads   []int
	utilities   []int
}

// NewBoard builds the standard US board.
func NewBoard() *Board {
	b := &Board{
		Spaces: [BoardSize]Space{
			{Name: "GO", Position: 0, Kind: SpaceGo},
			property("Mediterranean Avenue", 1, 60, "brown", [6]int{2, 10, 30, 90, 160, 250}, 50, 30),
			{Name: "Community Chest", Position: 2, Kind: SpaceCommunityChest},
			property("Baltic Avenue", 3, 60, "brown", [6]int{4, 20, 60, 180, 320, 450}, 50, 30),
			tax("Income Tax", 4, 200),
			railroad("Reading Railroad", 5),
			property("Oriental Avenue", 6, 100, "light_blue", [6]int{6, 30, 90, 270, 400, 550}, 50, 50),
			{Name: "Chance", Position: 7, Kind: SpaceChance},
			property("Vermont Avenue", 8, 100, "light_blue", [6]int{6, 30, 90, 270, 400, 550}, 50, 50),
			property("Connecticut Avenue", 9, 120, "light_blue", [6]int{8, 40, 100, 300, 450, 600}, 50, 60),
			{Name: "Jail", Position: 10, Kind: SpaceJail},
			property("St. Charles Place", 11, 140, "pink", [6]int{10, 50, 150, 450, 625, 750}, 100, 70),
			utility("Electric Company", 12),
			property("States Avenue", 13, 140, "pink", [6]int{10, 50, 150, 450, 625, 750}, 100, 70),
			property("Virginia Avenue", 14, 160, "pink", [6]int{12, 60, 180, 500, 700, 900}, 100, 80),
			railroad("Pennsylvania Railroad", 15),
			property("St. James Place", 16, 180, "orange", [6]int{14, 70, 200, 550, 750, 950}, 100, 90),
			{Name: "Community Chest", Position: 17, Kind: SpaceCommunityChest},
			property("Tennessee Avenue", 18, 180, "orange", [6]int{14, 70, 200, 550, 750, 950}, 100, 90),
			property("New York Avenue", 19, 200, "orange", [6]int{16, 80, 220, 600, 800, 1000}, 100, 100),
			{Name: "Free Parking", Position: 20, Kind: SpaceFreeParking},
			property("Kentucky Avenue", 21, 220, "red", [6]int{18, 90, 250, 700, 875, 1050}, 150, 110),
			{Name: "Chance", Position: 22, Kind: SpaceChance},
			property("Indiana Avenue", 23, 220, "red", [6]int{18, 90, 250, 700, 875, 1050}, 150, 110),
			property("Illinois Avenue", 24, 240, "red", [6]int{20, 100, 300, 750, 925, 1100}, 150, 120),
			railroad("B. & O. Railroad", 25),
			property("Atlantic Avenue", 26, 260, "yellow", [6]int{22, 110, 330, 800, 975, 1150}, 150, 130),
			property("Ventnor Avenue", 27, 260, "yellow", [6]int{22, 110, 330, 800, 975, 1150}, 150, 130),
			utility("Water Works", 28),
			property("Marvin Gardens", 29, 280, "yellow", [6]int{24, 120, 360, 850, 1025, 1200}, 150, 140),
			{Name: "Go To Jail", Position: 30, Kind: SpaceGoToJail},
			property("Pacific Avenue", 31, 300, "green", [6]int{26, 130, 390, 900, 1100, 1275}, 200, 150),
			property("North Carolina Avenue", 32, 300, "green", [6]int{26, 130, 390, 900, 1100, 1275}, 200, 150),
			{Name: "Community Chest", Position: 33, Kind: SpaceCommunityChest},
			property("Pennsylvania Avenue", 34, 320, "green", [6]int{28, 150, 450, 1000, 1200, 1400}, 200, 160),
			railroad("Short Line", 35),
			{Name: "Chance", Position: 36, Kind: SpaceChance},
			property("Park Place", 37, 350, "dark_blue", [6]int{35, 175, 500, 1100, 1300, 1500}, 200, 175),
			tax("Luxury Tax", 38, 100),
			property("Boardwalk", 39, 400, "dark_blue", [6]int{50, 200, 600, 1400, 1700, 2000}, 200, 200),
		},
	}

	b.colorGroups = make(map[string][]int)
	for i := range b.Spaces {
		s := &b.Spaces[i]
		switch s.Kind {
		case SpaceProperty:
			b.colorGroups[s.ColorGroup] = append(b.colorGroups[s.ColorGroup], s.Position)
		case SpaceRailroad:
			b.railroads = append(b.railroads, s.Position)
		case SpaceUtility:
			b.utilities = append(b.utilities, s.Position)
		}
	}

	return b
}

// Space returns the space at the given position, wrapping modulo the board
// size.
func (b *Board) Space(position int) *Space {
	return &b.Spaces[((position%BoardSize)+BoardSize)%BoardSize]
}

// PropertySpace returns the space at position if it is a color-group
// property, or nil otherwise.
func (b *Board) PropertySpace(position int) *Space {
	s := b.Space(position)
	if s.Kind != SpaceProperty {
		return nil
	}
	return s
}

// ColorGroup returns the positions of every property in the named color
// group, in board order.
func (b *Board) ColorGroup(color string) []int {
	return b.colorGroups[color]
}

// Railroads returns the positions of the four railroads.
func (b *Board) Railroads() []int { return b.railroads }

// Utilities returns the positions of the two utilities.
func (b *Board) Utilities() []int { return b.utilities }

// NearestRailroad returns the first railroad position reached moving forward
// from the given position.
func (b *Board) NearestRailroad(position int) int {
	return b.nearest(position, b.railroads)
}

// NearestUtility returns the first utility position reached moving forward
// from the given position.
func (b *Board) NearestUtility(position int) int {
	return b.nearest(position, b.utilities)
}

func (b *Board) nearest(position int, targets []int) int {
	for offset := 1; offset < BoardSize; offset++ {
		pos := (position + offset) % BoardSize
		for _, t := range targets {
			if pos == t {
				return pos
			}
		}
	}
	return targets[0]
}
