package auth

import (
	"strings"

	"gadkin-backend/internal/config"
	"gadkin-backend/internal/database"
	"gadkin-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	NomeCompleto string `json:"nome_completo"`
	Empresa      string `json:"empresa"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func RegisterHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.NomeCompleto = strings.TrimSpace(body.NomeCompleto)

		if body.Email == "" || body.Password == "" || body.NomeCompleto == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email, senha e nome completo são obrigatórios")
		}
		if len(body.Password) < 6 {
			return fiber.NewError(fiber.StatusBadRequest, "A senha deve ter pelo menos 6 caracteres")
		}

		var count int64
		database.DB.Model(&models.User{}).
			Where("email = ?", body.Email).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Já existe um usuário com este email")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash da senha")
		}

		user := models.User{
			Email:        body.Email,
			PasswordHash: string(hash),
			NomeCompleto: body.NomeCompleto,
			Empresa:      strings.TrimSpace(body.Empresa),
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o usuário")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o token")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":            user.ID,
				"email":         user.Email,
				"nome_completo": user.NomeCompleto,
				"empresa":       user.Empresa,
			},
		})
	}
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email ou senha incorretos")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email ou senha incorretos")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":            user.ID,
				"email":         user.Email,
				"nome_completo": user.NomeCompleto,
				"empresa":       user.Empresa,
			},
		})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDVal := c.Locals(CtxUserIDKey)

		var user models.User
		if userID, ok := userIDVal.(uint); ok {
			if err := database.DB.First(&user, userID).Error; err == nil {
				return c.JSON(fiber.Map{
					"user_id":       user.ID,
					"email":         user.Email,
					"nome_completo": user.NomeCompleto,
					"empresa":       user.Empresa,
				})
			}
		}

		// Fallback: se não conseguir carregar do banco, devolve o que está nos locals
		return c.JSON(fiber.Map{
			"user_id": userIDVal,
			"email":   c.Locals(CtxUserEmailKey),
		})
	}
}
