package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"column:nombre;size:50"`
	Email        string    `gorm:"column:correo;size:100;uniqueIndex"`
	PasswordHash string    `gorm:"column:password;size:255"`
	RegisteredAt time.Time `gorm:"column:fecha_registro;autoCreateTime"`
}

func (User) TableName() string {
	return "usuarios"
}
