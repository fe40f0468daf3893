package config

import (
	"fmt"

	"github.com/Netflix/go-env"
)

type Config struct {
	HTTPPort    string `env:"HTTP_PORT,default=8080"`
	DatabaseDSN string `env:"DATABASE_DSN,default=host=localhost user=postgres password=postgres dbname=gadkin port=5432 sslmode=disable"`
	JWTSecret   string `env:"JWT_SECRET,required=true"`
	CORSOrigins string `env:"CORS_ALLOWED_ORIGINS,default=http://localhost:3000"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
}

func Load() (*Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("falha ao carregar configuração: %w", err)
	}

	// JWT_SECRET curto é risco de segurança, melhor falhar na subida
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET deve ter pelo menos 32 caracteres")
	}

	return &cfg, nil
}
