package calendar

import "time"

// Cursor is the month currently displayed.
type Cursor struct {
	Year  int
	Month time.Month
}

func CursorAt(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

func (c Cursor) Next() Cursor {
	return c.shift(1)
}

func (c Cursor) Prev() Cursor {
	return c.shift(-1)
}

func (c Cursor) shift(months int) Cursor {
	t := time.Date(c.Year, c.Month+time.Month(months), 1, 0, 0, 0, 0, time.Local)
	return CursorAt(t)
}

// Valid reports whether the cursor names a real month.
func (c Cursor) Valid() bool {
	return c.Year > 0 && c.Month >= time.January && c.Month <= time.December
}
