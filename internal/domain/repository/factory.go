package repository

// Factory describes access to different domain stores.
type Factory interface {
	Profiles() ProfileRepository
	Bookings() BookingStore
	Orders() OrderStore
}
