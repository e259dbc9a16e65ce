package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSubmission(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Submission
	}{
		{"complete", `{"usuario":"ana","ejercicio":4,"respuesta":"147.963"}`, Submission{"ana", 4, "147.963"}},
		{"empty object", `{}`, Submission{GuestUser, 0, ""}},
		{"empty body", ``, Submission{GuestUser, 0, ""}},
		{"invalid json", `{"usuario":`, Submission{GuestUser, 0, ""}},
		{"array", `[1,2]`, Submission{GuestUser, 0, ""}},
		{"nulls", `{"usuario":null,"ejercicio":null,"respuesta":null}`, Submission{GuestUser, 0, ""}},
		{"numeric string exercise", `{"ejercicio":" 7 "}`, Submission{GuestUser, 7, ""}},
		{"fractional string exercise", `{"ejercicio":"7.5"}`, Submission{GuestUser, 0, ""}},
		{"fractional exercise", `{"ejercicio":7.9}`, Submission{GuestUser, 7, ""}},
		{"negative fractional exercise", `{"ejercicio":-2.5}`, Submission{GuestUser, -2, ""}},
		{"text exercise", `{"ejercicio":"siete"}`, Submission{GuestUser, 0, ""}},
		{"bool exercise", `{"ejercicio":true}`, Submission{GuestUser, 0, ""}},
		{"numeric answer", `{"respuesta":8.49}`, Submission{GuestUser, 0, "8.49"}},
		{"object answer", `{"respuesta":{"v":1}}`, Submission{GuestUser, 0, ""}},
		{"numeric user", `{"usuario":42}`, Submission{"42", 0, ""}},
		{"empty user kept", `{"usuario":""}`, Submission{"", 0, ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSubmission([]byte(tt.body)))
		})
	}
}
