package types

import (
	"fmt"
	"io"
	"strings"
)

// Date is a calendar date held as three plain integers. No calendar
// rules are applied at construction: 31/2/2025 is stored as given.
type Date struct {
	day, month, year int
}

// dateFields is the exported view of a Date handed to the validator.
type dateFields struct {
	Day   int `validate:"min=1,max=31"`
	Month int `validate:"min=1,max=12"`
	Year  int `validate:"min=1"`
}

// NewDate builds a Date from its three components, stored as given.
func NewDate(day, month, year int) Date {
	return Date{day: day, month: month, year: year}
}

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Month returns the month number.
func (d Date) Month() int { return d.month }

// Year returns the year.
func (d Date) Year() int { return d.year }

// Display writes "Today's date is D/M/Y" followed by a newline. Numbers
// are not zero-padded.
func (d Date) Display(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Today's date is %d/%d/%d\n", d.day, d.month, d.year)
	return err
}

// String returns exactly what Display writes.
func (d Date) String() string {
	return render(func(sb *strings.Builder) error { return d.Display(sb) })
}

// Validate checks each component against its range. It does not know
// about month lengths or leap years.
func (d Date) Validate() error {
	return validate.Struct(dateFields{Day: d.day, Month: d.month, Year: d.year})
}
