// Package trace loads retired conditional-branch traces.
//
// A trace is a text file with one branch per line. The branch address
// occupies a fixed leading field in base 16 and the resolved outcome is a
// single character at a fixed column: 'T' for taken, 'N' for not taken.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	// TakenChar marks a taken branch.
	TakenChar = 'T'
	// NotTakenChar marks a not-taken branch.
	NotTakenChar = 'N'
)

// Record is one retired conditional branch.
type Record struct {
	// Address is the branch instruction address.
	Address uint64
	// Taken is the resolved outcome.
	Taken bool
}

// Format describes where the fields of a trace line live.
type Format struct {
	// AddressWidth is the number of leading characters holding the address.
	AddressWidth int
	// OutcomeOffset is the column of the outcome character.
	OutcomeOffset int
}

// DefaultFormat returns the layout "0x00401a2c T".
func DefaultFormat() Format {
	return Format{
		AddressWidth:  10,
		OutcomeOffset: 11,
	}
}

// ErrMalformedRecord is matched by every MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed trace record")

// MalformedRecordError reports a trace line that cannot be turned into a
// Record.
type MalformedRecordError struct {
	// Line is the 1-based line number.
	Line int
	// Text is the offending line.
	Text string
	// Reason says what is wrong with it.
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Is lets errors.Is match ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// ParseLine converts a single trace line. lineNo is only used for error
// reporting.
func (f Format) ParseLine(line string, lineNo int) (Record, error) {
	line = strings.TrimSuffix(line, "\r")

	malformed := func(reason string) error {
		return &MalformedRecordError{Line: lineNo, Text: line, Reason: reason}
	}

	if len(line) <= f.OutcomeOffset {
		return Record{}, malformed(
			fmt.Sprintf("line shorter than outcome offset %d", f.OutcomeOffset))
	}

	field := strings.TrimSpace(line[:min(f.AddressWidth, len(line))])
	digits := field
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	if digits == "" {
		return Record{}, malformed("empty address field")
	}

	addr, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return Record{}, malformed(fmt.Sprintf("address %q is not hexadecimal", field))
	}

	var taken bool
	switch line[f.OutcomeOffset] {
	case TakenChar:
		taken = true
	case NotTakenChar:
		taken = false
	default:
		return Record{}, malformed(
			fmt.Sprintf("outcome %q is neither %q nor %q",
				line[f.OutcomeOffset], TakenChar, NotTakenChar))
	}

	return Record{Address: addr, Taken: taken}, nil
}

// Read parses every line of r. It stops at the first malformed line.
func (f Format) Read(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rec, err := f.ParseLine(scanner.Text(), lineNo)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}

	return records, nil
}

// Load reads a trace file using the given format.
func Load(path string, f Format) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer func() { _ = file.Close() }()

	records, err := f.Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// Count returns the number of taken and not-taken records.
func Count(records []Record) (taken, notTaken uint64) {
	for _, r := range records {
		if r.Taken {
			taken++
		} else {
			notTaken++
		}
	}
	return taken, notTaken
}
