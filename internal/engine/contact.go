package engine

import "strconv"

// Contact is a birth date imported from an address book entry.
type Contact struct {
	// UID is a deterministic hash of the name and date, stable across imports.
	UID string

	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// Birth is the parsed BDAY. Year is 0 when YearKnown is false.
	Birth DateTriple

	// YearKnown indicates if the vCard contained a year or just --MM-DD.
	YearKnown bool
}

// Input returns the contact's birth date in the shape an input collector produces.
// An unknown year is left blank so the Calculator reports incomplete input.
func (c Contact) Input() Input {
	in := Input{
		Day:   strconv.Itoa(c.Birth.Day),
		Month: strconv.Itoa(c.Birth.Month),
	}
	if c.YearKnown {
		in.Year = strconv.Itoa(c.Birth.Year)
	}
	return in
}
