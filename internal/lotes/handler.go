package lotes

import (
	"errors"
	"fmt"
	"time"

	"gadkin-backend/internal/audit"
	"gadkin-backend/internal/auth"
	"gadkin-backend/internal/database"
	"gadkin-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateLoteRequest struct {
	NumeroLote          string                `json:"numero_lote"` // vazio = gerar automaticamente
	Produto             string                `json:"produto"`
	QuantidadePlanejada float64               `json:"quantidade_planejada"`
	Unidade             string                `json:"unidade"`
	DataInicio          string                `json:"data_inicio"` // RFC3339 ou "2006-01-02T15:04"
	MateriasPrimas      []MateriaPrimaRequest `json:"materias_primas"`
}

type MateriaPrimaRequest struct {
	Nome       string  `json:"nome"`
	Quantidade float64 `json:"quantidade"`
	Unidade    string  `json:"unidade"`
	Moega      string  `json:"moega"`
}

type LoteResponse struct {
	ID                  string                 `json:"id"`
	NumeroLote          string                 `json:"numero_lote"`
	Produto             string                 `json:"produto"`
	QuantidadePlanejada float64                `json:"quantidade_planejada"`
	Unidade             string                 `json:"unidade"`
	DataInicio          string                 `json:"data_inicio"`
	DataFim             *string                `json:"data_fim"`
	Status              string                 `json:"status"`
	CriadoPor           string                 `json:"criado_por"`
	MateriasPrimas      []MateriaPrimaResponse `json:"materias_primas"`
	DataCriacao         string                 `json:"data_criacao"`
}

type MateriaPrimaResponse struct {
	Nome       string  `json:"nome"`
	Quantidade float64 `json:"quantidade"`
	Unidade    string  `json:"unidade"`
	Moega      string  `json:"moega"`
}

// Auxiliar: usuário autenticado, para atribuição nos registros
func getUserInfo(c *fiber.Ctx) (uint, string, error) {
	userIDVal := c.Locals(auth.CtxUserIDKey)
	userID, ok := userIDVal.(uint)
	if !ok {
		return 0, "", fiber.NewError(fiber.StatusForbidden, "Não foi possível obter o usuário")
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return 0, "", fiber.NewError(fiber.StatusInternalServerError, "Usuário não encontrado")
	}

	return userID, user.NomeCompleto, nil
}

// validarNovoLote valida o pedido antes de qualquer escrita no banco.
func validarNovoLote(body *CreateLoteRequest) error {
	if !ProdutoValido(body.Produto) {
		return fmt.Errorf("%w: produto inválido ou fora do catálogo", models.ErrValidacao)
	}
	if body.QuantidadePlanejada <= 0 {
		return fmt.Errorf("%w: quantidade planejada deve ser maior que zero", models.ErrValidacao)
	}
	if !models.Unidade(body.Unidade).IsValid() {
		return fmt.Errorf("%w: unidade deve ser kg, ton ou saca", models.ErrValidacao)
	}
	if body.DataInicio == "" {
		return fmt.Errorf("%w: data de início é obrigatória", models.ErrValidacao)
	}
	return nil
}

// filtrarMaterias descarta linhas sem nome ou com quantidade <= 0,
// preservando a ordem de inserção das restantes.
func filtrarMaterias(reqs []MateriaPrimaRequest) []models.MateriaPrima {
	materias := make([]models.MateriaPrima, 0, len(reqs))
	for _, m := range reqs {
		if m.Nome == "" || m.Quantidade <= 0 {
			continue
		}
		unidade := models.Unidade(m.Unidade)
		if !unidade.IsValid() {
			unidade = models.UnidadeKg
		}
		moega := m.Moega
		if !MoegaValida(moega) {
			moega = Moegas[0]
		}
		materias = append(materias, models.MateriaPrima{
			Nome:       m.Nome,
			Quantidade: m.Quantidade,
			Unidade:    unidade,
			Moega:      moega,
			Posicao:    len(materias),
		})
	}
	return materias
}

func parseDataInicio(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", s)
}

// POST /api/lotes
func CreateLoteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLoteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if err := validarNovoLote(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		dataInicio, err := parseDataInicio(body.DataInicio)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data de início inválida (use RFC3339 ou 'YYYY-MM-DDTHH:mm')")
		}

		userID, userName, err := getUserInfo(c)
		if err != nil {
			return err
		}

		numero := body.NumeroLote
		if numero == "" {
			numero = GerarNumeroLote(time.Now())
		}

		// Número do lote é único; colisões no mesmo minuto viram conflito
		var count int64
		database.DB.Model(&models.Lote{}).
			Where("numero_lote = ?", numero).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, fmt.Sprintf("Já existe um lote com o número %s", numero))
		}

		lote := models.Lote{
			NumeroLote:          numero,
			Produto:             body.Produto,
			QuantidadePlanejada: body.QuantidadePlanejada,
			Unidade:             models.Unidade(body.Unidade),
			DataInicio:          dataInicio,
			Status:              models.LoteStatusAtivo,
			CriadoPorID:         userID,
			MateriasPrimas:      filtrarMaterias(body.MateriasPrimas),
		}

		if err := database.DB.Create(&lote).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o lote")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "lote",
			EntityID:    lote.ID.String(),
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Lote criado: %s - %s (%.2f %s)", lote.NumeroLote, lote.Produto, lote.QuantidadePlanejada, lote.Unidade),
			Before:      nil,
			After:       lote,
		})

		return c.Status(fiber.StatusCreated).JSON(toLoteResponse(&lote, userName))
	}
}

// GET /api/lotes
// Ordenados por data de criação (mais recentes primeiro); ?status=ativo|concluido filtra.
func ListLotesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.
			Preload("CriadoPor").
			Preload("MateriasPrimas", func(db *gorm.DB) *gorm.DB {
				return db.Order("posicao ASC")
			}).
			Order("data_criacao DESC")

		if statusStr := c.Query("status"); statusStr != "" {
			status := models.LoteStatus(statusStr)
			if !status.IsValid() {
				return fiber.NewError(fiber.StatusBadRequest, "status deve ser 'ativo' ou 'concluido'")
			}
			query = query.Where("status = ?", status)
		}

		var lotes []models.Lote
		if err := query.Find(&lotes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os lotes")
		}

		resp := make([]LoteResponse, 0, len(lotes))
		for i := range lotes {
			resp = append(resp, toLoteResponse(&lotes[i], lotes[i].CriadoPor.NomeCompleto))
		}

		return c.JSON(resp)
	}
}

// GET /api/lotes/:id
func GetLoteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		loteID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID do lote inválido")
		}

		var lote models.Lote
		err = database.DB.
			Preload("CriadoPor").
			Preload("MateriasPrimas", func(db *gorm.DB) *gorm.DB {
				return db.Order("posicao ASC")
			}).
			First(&lote, "id = ?", loteID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Lote não encontrado")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o lote")
		}

		return c.JSON(toLoteResponse(&lote, lote.CriadoPor.NomeCompleto))
	}
}

// POST /api/lotes/:id/concluir
// Transição única ativo → concluido, gravando a data de fim.
func ConcluirLoteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		loteID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID do lote inválido")
		}

		var lote models.Lote
		err = database.DB.First(&lote, "id = ?", loteID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Lote não encontrado")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar o lote")
		}

		if lote.Status == models.LoteStatusConcluido {
			return fiber.NewError(fiber.StatusConflict, "Lote já foi concluído")
		}

		antes := lote
		now := time.Now()

		if err := database.DB.Model(&models.Lote{}).
			Where("id = ?", loteID).
			Updates(map[string]interface{}{
				"status":   models.LoteStatusConcluido,
				"data_fim": now,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível concluir o lote")
		}

		lote.Status = models.LoteStatusConcluido
		lote.DataFim = &now

		userID, userName, err := getUserInfo(c)
		if err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "lote",
				EntityID:    lote.ID.String(),
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Lote concluído: %s - %s", lote.NumeroLote, lote.Produto),
				Before:      antes,
				After:       lote,
			})
		}

		return c.JSON(fiber.Map{
			"id":       lote.ID.String(),
			"status":   lote.Status,
			"data_fim": now.Format("2006-01-02 15:04:05"),
		})
	}
}

// GET /api/lotes/estatisticas
func EstatisticasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var lotes []models.Lote
		if err := database.DB.Find(&lotes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar os lotes")
		}

		return c.JSON(ComputarEstatisticas(lotes))
	}
}

// GET /api/catalogo
func CatalogoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"produtos":        Produtos,
			"materias_primas": MateriasDisponiveis,
			"moegas":          Moegas,
			"unidades":        []models.Unidade{models.UnidadeKg, models.UnidadeTon, models.UnidadeSaca},
		})
	}
}

func toLoteResponse(lote *models.Lote, criadoPor string) LoteResponse {
	materias := make([]MateriaPrimaResponse, 0, len(lote.MateriasPrimas))
	for _, m := range lote.MateriasPrimas {
		materias = append(materias, MateriaPrimaResponse{
			Nome:       m.Nome,
			Quantidade: m.Quantidade,
			Unidade:    string(m.Unidade),
			Moega:      m.Moega,
		})
	}

	var dataFim *string
	if lote.DataFim != nil {
		s := lote.DataFim.Format("2006-01-02 15:04:05")
		dataFim = &s
	}

	return LoteResponse{
		ID:                  lote.ID.String(),
		NumeroLote:          lote.NumeroLote,
		Produto:             lote.Produto,
		QuantidadePlanejada: lote.QuantidadePlanejada,
		Unidade:             string(lote.Unidade),
		DataInicio:          lote.DataInicio.Format("2006-01-02 15:04:05"),
		DataFim:             dataFim,
		Status:              string(lote.Status),
		CriadoPor:           criadoPor,
		MateriasPrimas:      materias,
		DataCriacao:         lote.DataCriacao.Format("2006-01-02 15:04:05"),
	}
}
