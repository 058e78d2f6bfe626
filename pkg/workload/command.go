package workload

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned for a recognised command whose operands cannot be
// parsed. It aborts the replay.
var ErrMalformed = errors.New("malformed command")

type Kind int

const (
	// Skip marks a line whose first character selects no command. Blank lines
	// and comments fall here and are ignored without touching any counter.
	Skip Kind = iota
	Put
	Get
	Range
	Delete
	Load
)

func (k Kind) String() string {
	switch k {
	case Skip:
		return "skip"
	case Put:
		return "put"
	case Get:
		return "get"
	case Range:
		return "range"
	case Delete:
		return "delete"
	case Load:
		return "load"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Command is one parsed trace line. Range stores its bounds in Key (start,
// inclusive) and Val (end, exclusive).
type Command struct {
	Kind Kind
	Key  int32
	Val  int32
	Path string
}

// ParseLine classifies a line by its first character and parses its
// operands. Operands are whitespace separated; the first field is the
// command token and is otherwise ignored.
func ParseLine(line string) (Command, error) {
	if len(line) == 0 {
		return Command{Kind: Skip}, nil
	}

	switch line[0] {
	case 'p':
		key, val, err := parsePair(line)
		return Command{Kind: Put, Key: key, Val: val}, err
	case 'g':
		key, err := parseSingle(line)
		return Command{Kind: Get, Key: key}, err
	case 'r':
		start, end, err := parsePair(line)
		return Command{Kind: Range, Key: start, Val: end}, err
	case 'd':
		key, err := parseSingle(line)
		return Command{Kind: Delete, Key: key}, err
	case 'l':
		path := strings.TrimSpace(line[1:])
		if path == "" {
			return Command{}, fmt.Errorf("%w: load without a path", ErrMalformed)
		}
		return Command{Kind: Load, Path: path}, nil
	default:
		return Command{Kind: Skip}, nil
	}
}

func parseSingle(line string) (int32, error) {
	operands, err := operands(line, 1)
	if err != nil {
		return 0, err
	}
	return parseInt32(operands[0])
}

func parsePair(line string) (int32, int32, error) {
	operands, err := operands(line, 2)
	if err != nil {
		return 0, 0, err
	}
	a, err := parseInt32(operands[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := parseInt32(operands[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func operands(line string, want int) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields)-1 != want {
		return nil, fmt.Errorf("%w: %q: want %d operands, got %d", ErrMalformed, line, want, len(fields)-1)
	}
	return fields[1:], nil
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return int32(n), nil
}
