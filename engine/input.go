package engine

import (
	"bufio"
	"cephalopod/game"
	"cephalopod/meta"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrMissingValue = errors.New("missing value")
	ErrOutOfRange   = errors.New("value out of range")
)

// ReadBoard reads the depth followed by the 9 cell values in row-major order.
// Values are separated by any whitespace, one per line in practice.
func ReadBoard(r io.Reader) (game.Board, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	depth, err := readInt(scanner, "depth")
	if err != nil {
		return 0, err
	}
	if depth < 0 || depth > meta.MAX_DEPTH {
		return 0, errors.Wrapf(ErrOutOfRange, "depth %d not in [0, %d]", depth, meta.MAX_DEPTH)
	}

	var cells [game.Cells]uint8
	for i := range cells {
		value, err := readInt(scanner, fmt.Sprintf("cell %d", i))
		if err != nil {
			return 0, err
		}
		if value < 0 || value > game.MaxValue {
			return 0, errors.Wrapf(ErrOutOfRange, "cell %d value %d not in [0, %d]", i, value, game.MaxValue)
		}
		cells[i] = uint8(value)
	}
	return game.NewBoard(depth, cells), nil
}

func readInt(scanner *bufio.Scanner, name string) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, errors.Wrapf(err, "failed to read %s", name)
		}
		return 0, errors.Wrap(ErrMissingValue, name)
	}
	value, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse %s", name)
	}
	return value, nil
}

// WriteHash writes the hash as a decimal line.
func WriteHash(w io.Writer, hash uint32) error {
	_, err := fmt.Fprintln(w, hash)
	return errors.Wrap(err, "failed to write hash")
}
