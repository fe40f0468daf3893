package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Quem fez a operação (denormalizado para exibição)
	UserID   uint   `json:"user_id"`
	UserName string `gorm:"size:150" json:"user_name"`

	// Qual entidade? (ex: "lote")
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   string `gorm:"size:50;index" json:"entity_id"`

	Action AuditAction `gorm:"size:20" json:"action"`

	// Resumo curto da operação
	Description string `gorm:"size:255" json:"description"`

	// Estado anterior e posterior (JSON)
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
