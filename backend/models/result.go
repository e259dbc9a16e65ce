package models

import "time"

type Status string

const (
	StatusCorrect   Status = "correcto"
	StatusClose     Status = "cercano"
	StatusIncorrect Status = "incorrecto"
)

// Result is one graded submission. User is a free-text label, not a key into usuarios.
type Result struct {
	ID          uint      `gorm:"primaryKey"`
	User        string    `gorm:"column:usuario;index:idx_resultados_usuario_ejercicio"`
	Exercise    int       `gorm:"column:ejercicio;index:idx_resultados_usuario_ejercicio"`
	Answer      string    `gorm:"column:respuesta"`
	Score       float64   `gorm:"column:puntaje;type:double precision"`
	Status      Status    `gorm:"column:estado"`
	SubmittedAt time.Time `gorm:"column:fecha;index"`
}

func (Result) TableName() string {
	return "resultados"
}
