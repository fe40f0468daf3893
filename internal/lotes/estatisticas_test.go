package lotes

import (
	"testing"

	"gadkin-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputarEstatisticasVazio(t *testing.T) {
	t.Parallel()

	stats := ComputarEstatisticas(nil)

	assert.Equal(t, 0, stats.TotalLotes)
	assert.Equal(t, 0, stats.LotesAtivos)
	assert.Equal(t, 0, stats.LotesConcluidos)
	assert.Equal(t, 0.0, stats.QuantidadePlanejada)
}

func TestComputarEstatisticas(t *testing.T) {
	t.Parallel()

	lotesList := []models.Lote{
		{Status: models.LoteStatusAtivo, QuantidadePlanejada: 1000},
		{Status: models.LoteStatusConcluido, QuantidadePlanejada: 500},
		{Status: models.LoteStatusAtivo, QuantidadePlanejada: 250.5},
	}

	stats := ComputarEstatisticas(lotesList)

	assert.Equal(t, 3, stats.TotalLotes)
	assert.Equal(t, 2, stats.LotesAtivos)
	assert.Equal(t, 1, stats.LotesConcluidos)
	assert.Equal(t, 1750.5, stats.QuantidadePlanejada)
}

func TestComputarEstatisticasIndependeDaOrdem(t *testing.T) {
	t.Parallel()

	a := []models.Lote{
		{Status: models.LoteStatusAtivo, QuantidadePlanejada: 100},
		{Status: models.LoteStatusConcluido, QuantidadePlanejada: 200},
		{Status: models.LoteStatusConcluido, QuantidadePlanejada: 300},
	}
	b := []models.Lote{a[2], a[0], a[1]}

	assert.Equal(t, ComputarEstatisticas(a), ComputarEstatisticas(b))
}
