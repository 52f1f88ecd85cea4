package types

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aanand-mishra/constructor-demos/internal/console"
)

// MaxNameLen is the longest name, in bytes, ReadStudent accepts.
const MaxNameLen = 49

// Student represents one student with a roll number, a name and a fee.
//
// A fee given as a whole number (NewStudent) is kept as an int64 and
// printed digit for digit. A fee read from the console (ReadStudent) is
// a float64 and printed with six significant digits.
type Student struct {
	rollNo int
	name   string

	fee      float64
	wholeFee int64
	isWhole  bool
}

// studentFields is the exported view of a Student handed to the
// validator, which only inspects exported fields.
type studentFields struct {
	RollNo int     `validate:"gte=0"`
	Name   string  `validate:"required,max=49"`
	Fee    float64 `validate:"gte=0"`
}

// NewStudent builds a Student from literal values.
func NewStudent(rollNo int, name string, fee int64) Student {
	return Student{
		rollNo:   rollNo,
		name:     name,
		fee:      float64(fee),
		wholeFee: fee,
		isWhole:  true,
	}
}

// ReadStudent builds a Student from interactive input. The prompts and
// the read order are fixed:
//
//	Enter name:          ← whole line, at most MaxNameLen characters
//	Enter the roll no.:  ← integer token
//	Enter fee:           ← floating-point token
//
// The first failing read stops construction and its error is returned
// together with the fields read so far.
func ReadStudent(con *console.Console) (Student, error) {
	var s Student

	if err := con.Prompt("Enter name: "); err != nil {
		return s, fmt.Errorf("ReadStudent: %w", err)
	}
	name, err := con.ReadLine(MaxNameLen)
	s.name = name
	if err != nil {
		return s, fmt.Errorf("ReadStudent: name: %w", err)
	}

	if err := con.Prompt("Enter the roll no.: "); err != nil {
		return s, fmt.Errorf("ReadStudent: %w", err)
	}
	if s.rollNo, err = con.ReadInt(); err != nil {
		return s, fmt.Errorf("ReadStudent: roll no: %w", err)
	}

	if err := con.Prompt("Enter fee: "); err != nil {
		return s, fmt.Errorf("ReadStudent: %w", err)
	}
	if s.fee, err = con.ReadFloat(); err != nil {
		return s, fmt.Errorf("ReadStudent: fee: %w", err)
	}

	return s, nil
}

// RollNo returns the roll number.
func (s Student) RollNo() int { return s.rollNo }

// Name returns the name as entered.
func (s Student) Name() string { return s.name }

// Fee returns the fee. Whole-number fees above 2^53 lose precision here;
// use WholeFee for those.
func (s Student) Fee() float64 { return s.fee }

// WholeFee returns the exact fee and true when the Student was built by
// NewStudent. For console-read fees it returns 0, false.
func (s Student) WholeFee() (int64, bool) { return s.wholeFee, s.isWhole }

// Display writes the student as three labelled lines:
//
//	Name: Aditya
//	Roll No: 106
//	Fee: 25000
func (s Student) Display(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Name: %s\nRoll No: %d\nFee: %s\n",
		s.name, s.rollNo, s.feeText())
	return err
}

// String returns exactly what Display writes.
func (s Student) String() string {
	return render(func(sb *strings.Builder) error { return s.Display(sb) })
}

// Validate reports whether the fields look sensible. It never changes
// the record.
func (s Student) Validate() error {
	return validate.Struct(studentFields{RollNo: s.rollNo, Name: s.name, Fee: s.fee})
}

// feeText renders the fee. Whole fees print as plain integers
// (2500000 → "2500000"). Console fees print with six significant digits
// and no trailing zeros: 1000 → "1000", 1234.5 → "1234.5",
// 1e7 → "1e+07".
func (s Student) feeText() string {
	if s.isWhole {
		return strconv.FormatInt(s.wholeFee, 10)
	}
	return strconv.FormatFloat(s.fee, 'g', 6, 64)
}
