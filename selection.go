package calgrid

// Selection holds at most one selected date. It is an immutable value:
// Select and Clear return a new Selection.
type Selection struct {
	date Date
}

// Selected returns the selected date, if any.
func (s Selection) Selected() (Date, bool) {
	return s.date, !s.date.IsZero()
}

// Date returns the selected date or the zero Date.
func (s Selection) Date() Date { return s.date }

// Select selects the tapped cell of month m. Cells of adjacent months are
// rejected: the returned Selection is s and ok is false. Selecting the
// already selected date returns s unchanged with ok true.
func (s Selection) Select(m Month, t Tap) (Selection, bool) {
	if !t.Cell.IsCurrentMonth {
		Logger().Debug("calgrid: selection rejected", "month", m.String(), "date", t.Date.Key())
		return s, false
	}
	return s.SelectDate(m, t.Date)
}

// SelectDate selects d when it falls inside m.
func (s Selection) SelectDate(m Month, d Date) (Selection, bool) {
	if !m.Contains(d) {
		Logger().Debug("calgrid: selection rejected", "month", m.String(), "date", d.Key())
		return s, false
	}
	if d == s.date {
		return s, true
	}
	return Selection{date: d}, true
}

// Clear returns an empty Selection.
func (s Selection) Clear() Selection {
	return Selection{}
}
