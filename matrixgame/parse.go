package matrixgame

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/timpalpant/zerosum/rational"
)

// ParseRow splits a whitespace separated line into exactly n payoffs.
// Errors are reported against the given row index.
func ParseRow(line string, row, n int) ([]rational.Rat, error) {
	return parseFields(strings.Fields(line), row, n)
}

func parseFields(fields []string, row, n int) ([]rational.Rat, error) {
	if len(fields) != n {
		return nil, &RowLengthError{Row: row, Expected: n, Got: len(fields)}
	}

	result := make([]rational.Rat, n)
	for j, field := range fields {
		x, err := rational.Parse(field)
		if err != nil {
			return nil, &EntryError{Row: row, Col: j, Text: field, Err: err}
		}
		result[j] = x
	}

	return result, nil
}

// ReadPayoffMatrix reads m lines of n entries each from r.
// Blank lines are skipped.
func ReadPayoffMatrix(r io.Reader, m, n int) (*PayoffMatrix, error) {
	if m <= 0 || n <= 0 {
		return nil, ErrBadDimensions
	}

	scanner := bufio.NewScanner(r)
	rows := make([][]rational.Rat, 0, m)
	for len(rows) < m && scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, err := ParseRow(line, len(rows), n)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading payoff matrix")
	}

	if len(rows) < m {
		return nil, errors.Wrapf(io.ErrUnexpectedEOF,
			"expected %d rows, got %d", m, len(rows))
	}

	return NewPayoffMatrix(rows)
}

// yamlGame is the on-disk form of a payoff matrix:
//
//	name: matching pennies
//	payoffs:
//	  - [1, -1]
//	  - [-1, 1]
//
// Entries may be integers, decimals or quoted fractions ("3/4").
type yamlGame struct {
	Name    string     `yaml:"name"`
	Payoffs [][]string `yaml:"payoffs"`
}

// LoadYAML reads a named payoff matrix from a YAML document.
func LoadYAML(r io.Reader) (string, *PayoffMatrix, error) {
	var doc yamlGame
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return "", nil, errors.Wrap(err, "decoding payoff yaml")
	}

	if len(doc.Payoffs) == 0 || len(doc.Payoffs[0]) == 0 {
		return doc.Name, nil, ErrEmptyMatrix
	}

	n := len(doc.Payoffs[0])
	rows := make([][]rational.Rat, len(doc.Payoffs))
	for i, fields := range doc.Payoffs {
		row, err := parseFields(fields, i, n)
		if err != nil {
			return doc.Name, nil, err
		}
		rows[i] = row
	}

	m, err := NewPayoffMatrix(rows)
	return doc.Name, m, err
}
