package game

// Bank tracks the finite building supply. Money is not tracked; the bank
// can always pay.
type Bank struct {
	Houses int
	Hotels int
}

// NewBank creates a bank with the given building supply.
func NewBank(houses, hotels int) *Bank {
	return &Bank{Houses: houses, Hotels: hotels}
}

// TakeHouse removes one house from the supply. Reports whether one was
// available.
func (b *Bank) TakeHouse() bool {
	if b.Houses <= 0 {
		return false
	}
	b.Houses--
	return true
}

// ReturnHouses puts houses back into the supply.
func (b *Bank) ReturnHouses(n int) {
	if n > 0 {
		b.Houses += n
	}
}

// TakeHotel removes one hotel from the supply. Reports whether one was
// available.
func (b *Bank) TakeHotel() bool {
	if b.Hotels <= 0 {
		return false
	}
	b.Hotels--
	return true
}

// ReturnHotel puts one hotel back into the supply.
func (b *Bank) ReturnHotel() {
	b.Hotels++
}
