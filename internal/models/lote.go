package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoteStatus string

const (
	LoteStatusAtivo     LoteStatus = "ativo"
	LoteStatusConcluido LoteStatus = "concluido"
)

func (s LoteStatus) String() string { return string(s) }

func (s LoteStatus) IsValid() bool {
	switch s {
	case LoteStatusAtivo, LoteStatusConcluido:
		return true
	}
	return false
}

type Unidade string

const (
	UnidadeKg   Unidade = "kg"
	UnidadeTon  Unidade = "ton"
	UnidadeSaca Unidade = "saca"
)

func (u Unidade) IsValid() bool {
	switch u {
	case UnidadeKg, UnidadeTon, UnidadeSaca:
		return true
	}
	return false
}

// Lote: lote de produção de ração (pode conter várias matérias-primas)
type Lote struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	NumeroLote          string    `gorm:"size:30;uniqueIndex;not null"`
	Produto             string    `gorm:"size:100;not null"`
	QuantidadePlanejada float64   `gorm:"not null"`
	Unidade             Unidade   `gorm:"size:10;not null"`
	DataInicio          time.Time `gorm:"not null"`
	DataFim             *time.Time
	Status              LoteStatus `gorm:"size:20;index;not null"`
	CriadoPorID         uint       `gorm:"index;not null"`
	CriadoPor           User
	DataCriacao         time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt           time.Time

	MateriasPrimas []MateriaPrima `gorm:"foreignKey:LoteID;constraint:OnDelete:CASCADE"`
}

func (l *Lote) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// MateriaPrima: cada matéria-prima dentro de um lote.
// A posição preserva a ordem de inserção do formulário.
type MateriaPrima struct {
	ID         uint      `gorm:"primaryKey"`
	LoteID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Nome       string    `gorm:"size:100;not null"`
	Quantidade float64   `gorm:"not null"`
	Unidade    Unidade   `gorm:"size:10;not null"`
	Moega      string    `gorm:"size:20;not null"`
	Posicao    int       `gorm:"not null"`
	CreatedAt  time.Time
}
