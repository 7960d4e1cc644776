package sheet

// Position reports the 0-based row entity was fetched from.
func (t *Table[E]) Position(entity E) (int, bool) {
	return t.positionOf(entity)
}
