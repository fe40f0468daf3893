package lotes

import "gadkin-backend/internal/models"

type Estatisticas struct {
	TotalLotes          int     `json:"total_lotes"`
	LotesAtivos         int     `json:"lotes_ativos"`
	LotesConcluidos     int     `json:"lotes_concluidos"`
	QuantidadePlanejada float64 `json:"quantidade_planejada_total"`
}

// ComputarEstatisticas agrega os lotes em memória, sem tocar no banco.
// A soma de quantidade planejada não converte unidades (kg, ton e saca
// entram juntos, como no painel original).
func ComputarEstatisticas(lotes []models.Lote) Estatisticas {
	stats := Estatisticas{TotalLotes: len(lotes)}

	for _, l := range lotes {
		switch l.Status {
		case models.LoteStatusAtivo:
			stats.LotesAtivos++
		case models.LoteStatusConcluido:
			stats.LotesConcluidos++
		}
		stats.QuantidadePlanejada += l.QuantidadePlanejada
	}

	return stats
}
