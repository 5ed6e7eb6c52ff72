package dashboard

// Panel identifies one of the four dashboard panels. The values form a
// total cycle under Next/Prev; there are no invalid transitions.
type Panel int

const (
	PanelBasic Panel = iota
	PanelStatus
	PanelSpeed
	PanelTrip

	panelCount
)

// Next returns the following panel, wrapping Trip back to Basic.
func (p Panel) Next() Panel {
	return (p + 1) % panelCount
}

// Prev returns the preceding panel, wrapping Basic back to Trip.
func (p Panel) Prev() Panel {
	return (p + panelCount - 1) % panelCount
}

func (p Panel) String() string {
	switch p {
	case PanelBasic:
		return "Basic"
	case PanelStatus:
		return "Status"
	case PanelSpeed:
		return "Speed"
	case PanelTrip:
		return "Trip"
	}
	return "Unknown"
}
