package vehicle

// Status mirrors the fleet states shown on the dashboard. Only vehicles in
// StatusAvailable may be offered on the booking form.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusMaintenance Status = "maintenance"
	StatusUnavailable Status = "unavailable"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusMaintenance, StatusUnavailable:
		return true
	default:
		return false
	}
}

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

func (t Transmission) String() string {
	return string(t)
}

func (t Transmission) IsValid() bool {
	switch t {
	case TransmissionManual, TransmissionAutomatic:
		return true
	default:
		return false
	}
}
