package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	NomeCompleto string `gorm:"size:150;not null"`
	Empresa      string `gorm:"size:150"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
