// Package exercises holds the reference answers of the fluid-mechanics
// exercises and grades raw answers against them.
package exercises

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"fluidos/backend/models"
)

// Tolerance is the maximum distance from the exact value that still counts as correct.
const Tolerance = 1e-3

const (
	ScoreCorrect   = 1.0
	ScoreClose     = 0.5
	ScoreIncorrect = 0.0
)

// Reference is the expected answer of one exercise. Low and High bound the
// inclusive range accepted as close.
type Reference struct {
	Exact float64
	Low   float64
	High  float64
}

type Grade struct {
	Status models.Status
	Score  float64
}

var references = map[int]Reference{
	1:  {Exact: 8.49, Low: 7, High: 9},
	2:  {Exact: 227.12, Low: 200, High: 240},
	3:  {Exact: 1.26, Low: 1, High: 3},
	4:  {Exact: 147.963, Low: 120, High: 200},
	5:  {Exact: 3.25, Low: 3, High: 4},
	6:  {Exact: 2.10, Low: 1.8, High: 2.3},
	7:  {Exact: 0.95, Low: 0.8, High: 1.1},
	8:  {Exact: 4.43, Low: 0.8, High: 10.0},
	9:  {Exact: 10.43, Low: 8, High: 15},
	10: {Exact: 0.95, Low: 0.8, High: 1.1},
	11: {Exact: 0.95, Low: 0.8, High: 1.1},
	12: {Exact: 1.333, Low: 0, High: 3.0},
	13: {Exact: 7111.5, Low: 7000, High: 7200},
	14: {Exact: 5.75, Low: 4, High: 7},
	15: {Exact: 7.668, Low: 6.0, High: 9.0},
	16: {Exact: 5.6, Low: 4.5, High: 7.0},
}

// Lookup returns the reference of exercise n.
func Lookup(n int) (Reference, bool) {
	ref, ok := references[n]
	return ref, ok
}

// Numbers returns the known exercise numbers in ascending order.
func Numbers() []int {
	numbers := make([]int, 0, len(references))
	for n := range references {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// Grade classifies value against the reference. The exact check wins over the range check.
func (r Reference) Grade(value float64) Grade {
	if math.Abs(value-r.Exact) < Tolerance {
		return Grade{Status: models.StatusCorrect, Score: ScoreCorrect}
	}
	if r.Low <= value && value <= r.High {
		return Grade{Status: models.StatusClose, Score: ScoreClose}
	}
	return incorrect()
}

// Evaluate grades the raw answer submitted for exercise n. Unknown exercises
// and answers that are not numbers are incorrect.
func Evaluate(n int, raw string) Grade {
	ref, ok := Lookup(n)
	if !ok {
		return incorrect()
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return incorrect()
	}
	return ref.Grade(value)
}

func incorrect() Grade {
	return Grade{Status: models.StatusIncorrect, Score: ScoreIncorrect}
}
