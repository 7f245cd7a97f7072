package game

// Options holds the tunable rules parameters for a game. A zero
// TimeLimitTurns means unlimited.
type Options struct {
	StartingCash     int
	GoSalary         int
	JailFine         int
	MortgageFeeRate  float64
	HouseSupply      int
	HotelSupply      int
	MaxJailTurns     int
	MaxBidsPerPlayer int
	TimeLimitTurns   int
}

// DefaultOptions returns the standard US rules configuration.
func DefaultOptions() Options {
	return Options{
		StartingCash:     1500,
		GoSalary:         200,
		JailFine:         50,
		MortgageFeeRate:  0.10,
		HouseSupply:      32,
		HotelSupply:      12,
		MaxJailTurns:     3,
		MaxBidsPerPlayer: 3,
	}
}
