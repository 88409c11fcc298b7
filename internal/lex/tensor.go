package lex

import (
	"strconv"
	"strings"

	"github.com/hedl-lang/hedl/internal/astdoc"
)

// ParseTensor parses a `[...]` literal into a Tensor, recursively
// validating that every pair of sibling sublists has equal length
// (rectangularity) and computing the resulting shape vector.
func ParseTensor(token string) (astdoc.Tensor, error) {
	s := strings.TrimSpace(token)
	pos := 0
	flat, shape, err := parseTensorList(s, &pos)
	if err != nil {
		return astdoc.Tensor{}, err
	}
	skipSpace(s, &pos)
	if pos != len(s) {
		return astdoc.Tensor{}, errBadTensorTrailing
	}
	return astdoc.Tensor{Flat: flat, Shape: shape}, nil
}

func skipSpace(s string, pos *int) {
	for *pos < len(s) && (s[*pos] == ' ' || s[*pos] == '\t') {
		*pos++
	}
}

func parseTensorList(s string, pos *int) ([]float64, []int, error) {
	skipSpace(s, pos)
	if *pos >= len(s) || s[*pos] != '[' {
		return nil, nil, errBadTensorBracket
	}
	*pos++ // consume '['
	skipSpace(s, pos)

	if *pos < len(s) && s[*pos] == ']' {
		*pos++
		return []float64{}, []int{0}, nil
	}

	var flat []float64
	var subShape []int
	haveSubShape := false
	isNested := false
	isLeaf := false
	count := 0

	for {
		skipSpace(s, pos)
		if *pos >= len(s) {
			return nil, nil, errBadTensorBracket
		}

		if s[*pos] == '[' {
			if isLeaf {
				return nil, nil, errBadTensorMix
			}
			isNested = true
			childFlat, childShape, err := parseTensorList(s, pos)
			if err != nil {
				return nil, nil, err
			}
			if !haveSubShape {
				subShape = childShape
				haveSubShape = true
			} else if !shapeEqual(subShape, childShape) {
				return nil, nil, errBadTensorShape
			}
			flat = append(flat, childFlat...)
		} else {
			if isNested {
				return nil, nil, errBadTensorMix
			}
			isLeaf = true
			n, err := parseNumber(s, pos)
			if err != nil {
				return nil, nil, err
			}
			flat = append(flat, n)
		}
		count++

		skipSpace(s, pos)
		if *pos >= len(s) {
			return nil, nil, errBadTensorBracket
		}
		if s[*pos] == ',' {
			*pos++
			continue
		}
		if s[*pos] == ']' {
			*pos++
			break
		}
		return nil, nil, errBadTensorBracket
	}

	shape := []int{count}
	if isNested {
		shape = append(shape, subShape...)
	}
	return flat, shape, nil
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func parseNumber(s string, pos *int) (float64, error) {
	start := *pos
	if *pos < len(s) && (s[*pos] == '-' || s[*pos] == '+') {
		*pos++
	}
	sawDigit := false
	for *pos < len(s) && isDigit(s[*pos]) {
		*pos++
		sawDigit = true
	}
	if *pos < len(s) && s[*pos] == '.' {
		*pos++
		for *pos < len(s) && isDigit(s[*pos]) {
			*pos++
			sawDigit = true
		}
	}
	if *pos < len(s) && (s[*pos] == 'e' || s[*pos] == 'E') {
		save := *pos
		*pos++
		if *pos < len(s) && (s[*pos] == '-' || s[*pos] == '+') {
			*pos++
		}
		expDigit := false
		for *pos < len(s) && isDigit(s[*pos]) {
			*pos++
			expDigit = true
		}
		if !expDigit {
			*pos = save
		}
	}
	if !sawDigit {
		return 0, errBadTensorNumber
	}
	v, err := strconv.ParseFloat(s[start:*pos], 64)
	if err != nil {
		return 0, errBadTensorNumber
	}
	return v, nil
}
