package reservation

// IsAvailable reports whether requested overlaps none of the given periods.
// Callers pass confirmed bookings only.
func IsAvailable(confirmed []StayPeriod, requested StayPeriod) bool {
	for _, existing := range confirmed {
		if requested.Overlaps(existing) {
			return false
		}
	}
	return true
}
