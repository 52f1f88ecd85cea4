package types

import (
	"fmt"
	"io"
	"strings"
)

// CopyNotice is what Person.Copy prints every time it runs.
const CopyNotice = "Copy Constructor called!"

// Person is a name plus an age.
type Person struct {
	name string
	age  int
}

// personFields is the exported view of a Person handed to the validator.
type personFields struct {
	Name string `validate:"required"`
	Age  int    `validate:"gte=0,lte=150"`
}

// NewPerson builds a Person from literal values.
func NewPerson(name string, age int) Person {
	return Person{name: name, age: age}
}

// Copy returns a field-by-field duplicate of p. Plain assignment already
// copies a Person; Copy exists so the duplication is a named operation
// with a visible side effect: it writes CopyNotice and a newline to w
// before returning.
func (p Person) Copy(w io.Writer) (Person, error) {
	dup := Person{name: p.name, age: p.age}
	if _, err := fmt.Fprintln(w, CopyNotice); err != nil {
		return dup, fmt.Errorf("Person.Copy: write notice: %w", err)
	}
	return dup, nil
}

// Name returns the name.
func (p Person) Name() string { return p.name }

// Age returns the age in years.
func (p Person) Age() int { return p.age }

// Display writes the person as two labelled lines:
//
//	Name: Aditya
//	Age: 19
func (p Person) Display(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Name: %s\nAge: %d\n", p.name, p.age)
	return err
}

// String returns exactly what Display writes.
func (p Person) String() string {
	return render(func(sb *strings.Builder) error { return p.Display(sb) })
}

// Validate reports a missing name or an age outside 0..150. It never
// changes the record.
func (p Person) Validate() error {
	return validate.Struct(personFields{Name: p.name, Age: p.age})
}
