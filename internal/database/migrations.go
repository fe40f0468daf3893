package database

import (
	"gadkin-backend/internal/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "000001_create_users",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&models.User{})
			},
		},
		{
			ID: "000002_create_lotes",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&models.Lote{}, &models.MateriaPrima{}); err != nil {
					return err
				}
				indexes := []string{
					`CREATE INDEX IF NOT EXISTS idx_lotes_status_data_criacao ON lotes (status, data_criacao)`,
					`CREATE INDEX IF NOT EXISTS idx_materia_primas_lote_posicao ON materia_primas (lote_id, posicao)`,
				}
				for _, sql := range indexes {
					if err := tx.Exec(sql).Error; err != nil {
						return err
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				if err := tx.Migrator().DropTable(&models.MateriaPrima{}); err != nil {
					return err
				}
				return tx.Migrator().DropTable(&models.Lote{})
			},
		},
		{
			ID: "000003_create_audit_logs",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.AuditLog{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&models.AuditLog{})
			},
		},
	})

	return m.Migrate()
}
