package dashboard

// RouteCursor is the navigation state over the stop list of the latest
// snapshot: a selected index plus a detail-expanded flag. The stop list can
// change length between polls, so the controller must Reclamp after every
// ingest; the cursor itself never indexes anything.
type RouteCursor struct {
	Index  int
	Detail bool
}

// ToggleDetail flips the expanded-detail flag. Callers gate this on the
// Trip panel having focus.
func (c *RouteCursor) ToggleDetail() {
	c.Detail = !c.Detail
}

// MoveDown advances the selection toward the end of the route, saturating
// at the last stop.
func (c *RouteCursor) MoveDown(stopCount int) {
	if stopCount == 0 {
		c.Index = 0
		return
	}
	if c.Index < stopCount-1 {
		c.Index++
	}
}

// MoveUp moves the selection toward the start of the route, saturating at 0.
func (c *RouteCursor) MoveUp() {
	if c.Index > 0 {
		c.Index--
	}
}

// Reclamp pins the index back into [0, stopCount-1] after the stop list
// changed shape. With no stops the index parks at 0 and DetailAvailable
// reports false.
func (c *RouteCursor) Reclamp(stopCount int) {
	if stopCount == 0 {
		c.Index = 0
		return
	}
	if c.Index >= stopCount {
		c.Index = stopCount - 1
	}
	if c.Index < 0 {
		c.Index = 0
	}
}

// DetailAvailable reports whether the expanded detail view may render.
func (c *RouteCursor) DetailAvailable(stopCount int) bool {
	return c.Detail && stopCount > 0
}
