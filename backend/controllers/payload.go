package controllers

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	GuestUser       = "invitado"
	DefaultExercise = 0
)

// Submission is the decoded body of a result submission. Missing, null or
// unusable fields fall back to defaults instead of failing the request.
type Submission struct {
	User     string
	Exercise int
	Answer   string
}

func parseSubmission(body []byte) Submission {
	sub := Submission{User: GuestUser, Exercise: DefaultExercise}

	fields := map[string]interface{}{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return sub
	}

	if user, ok := asText(fields["usuario"]); ok {
		sub.User = user
	}
	sub.Exercise = asExercise(fields["ejercicio"])
	if answer, ok := asText(fields["respuesta"]); ok {
		sub.Answer = answer
	}
	return sub
}

func asText(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// asExercise truncates fractional numbers toward zero.
func asExercise(v interface{}) int {
	var text string
	switch t := v.(type) {
	case json.Number:
		text = t.String()
	case string:
		text = strings.TrimSpace(t)
	default:
		return DefaultExercise
	}

	if n, err := strconv.Atoi(text); err == nil {
		return n
	}
	if _, isString := v.(string); isString {
		return DefaultExercise
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return DefaultExercise
	}
	return int(f)
}
