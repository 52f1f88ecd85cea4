// Package demo holds the body of each constructor demo. The commands
// under cmd/ are thin wrappers: load config, set up logging, call one
// of these functions with os.Stdin / os.Stdout.
//
// Keeping the bodies here, behind io.Reader / io.Writer parameters,
// lets the tests drive every demo with fixed input and compare the
// exact bytes it prints.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/constructor-demos/internal/console"
	"github.com/aanand-mishra/constructor-demos/internal/types"
)

// ─────────────────────────────────────────────────────────────────────────────
// ConstructorInsideClass builds one Student from literal values and
// displays it.
//
// Output:
//
//	Name: Aditya
//	Roll No: 106
//	Fee: 25000
//
// ─────────────────────────────────────────────────────────────────────────────
func ConstructorInsideClass(w io.Writer) error {
	slog.Info("running demo", slog.String("demo", "constructor-inside-class"))

	s := types.NewStudent(106, "Aditya", 25000)
	if err := s.Display(w); err != nil {
		return fmt.Errorf("ConstructorInsideClass: display: %w", err)
	}

	slog.Info("demo finished", slog.String("demo", "constructor-inside-class"))
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// CopyConstructor builds a Person, displays it, copies it through
// Person.Copy (which announces itself) and displays the copy.
//
// Output (note the blank line before each block):
//
//	Name: Aditya
//	Age: 19
//
//	Copy Constructor called!
//
//	Name: Aditya
//	Age: 19
//
// ─────────────────────────────────────────────────────────────────────────────
func CopyConstructor(w io.Writer) error {
	slog.Info("running demo", slog.String("demo", "copy-constructor"))

	original := types.NewPerson("Aditya", 19)
	if err := blankThen(w, original.Display); err != nil {
		return fmt.Errorf("CopyConstructor: display original: %w", err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("CopyConstructor: %w", err)
	}
	dup, err := original.Copy(w)
	if err != nil {
		return fmt.Errorf("CopyConstructor: %w", err)
	}

	if err := blankThen(w, dup.Display); err != nil {
		return fmt.Errorf("CopyConstructor: display copy: %w", err)
	}

	slog.Info("demo finished", slog.String("demo", "copy-constructor"))
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// DefaultConstructor reads a Student from in (name, roll no, fee) and
// displays it after a blank line. Prompts go to w.
//
// For the input "Aditya\n6\n1000\n" the output is:
//
//	Enter name: Enter the roll no.: Enter fee:
//	Name: Aditya
//	Roll No: 6
//	Fee: 1000
//
// Unparseable input is returned as an error; nothing is displayed.
// ─────────────────────────────────────────────────────────────────────────────
func DefaultConstructor(in io.Reader, w io.Writer) error {
	slog.Info("running demo", slog.String("demo", "default-constructor"))

	s, err := types.ReadStudent(console.New(in, w))
	if err != nil {
		return fmt.Errorf("DefaultConstructor: %w", err)
	}

	// Out-of-range values are still displayed as entered.
	if err := s.Validate(); err != nil {
		slog.Warn("unusual student record", slog.String("error", err.Error()))
	}

	if err := blankThen(w, s.Display); err != nil {
		return fmt.Errorf("DefaultConstructor: display: %w", err)
	}

	slog.Info("demo finished", slog.String("demo", "default-constructor"))
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// ParameterizedConstructor asks for a day, month and year, passes them
// to types.NewDate and displays the result.
//
// Prompts, in order:
//
//	Enter Today's Date:
//	Date: <day> Month: <month> Year: <year>
//
// followed by "Today's date is D/M/Y".
// ─────────────────────────────────────────────────────────────────────────────
func ParameterizedConstructor(in io.Reader, w io.Writer) error {
	slog.Info("running demo", slog.String("demo", "parameterized-constructor"))

	con := console.New(in, w)

	if err := con.Prompt("Enter Today's Date: \n"); err != nil {
		return fmt.Errorf("ParameterizedConstructor: %w", err)
	}

	var parts [3]int
	for i, label := range []string{"Date: ", "Month: ", "Year: "} {
		if err := con.Prompt(label); err != nil {
			return fmt.Errorf("ParameterizedConstructor: %w", err)
		}
		n, err := con.ReadInt()
		if err != nil {
			return fmt.Errorf("ParameterizedConstructor: %s%w", label, err)
		}
		parts[i] = n
	}

	date := types.NewDate(parts[0], parts[1], parts[2])
	if err := date.Validate(); err != nil {
		slog.Warn("unusual date", slog.String("error", err.Error()))
	}

	if err := date.Display(w); err != nil {
		return fmt.Errorf("ParameterizedConstructor: display: %w", err)
	}

	slog.Info("demo finished", slog.String("demo", "parameterized-constructor"))
	return nil
}

// blankThen writes an empty line and then whatever display writes.
func blankThen(w io.Writer, display func(io.Writer) error) error {
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return display(w)
}
