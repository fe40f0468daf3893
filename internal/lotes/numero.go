package lotes

import "time"

// GerarNumeroLote: L + ano + mês + dia + hora + minuto do instante de criação.
// Ex: criado em 2025-03-07 14:05 → "L202503071405"
func GerarNumeroLote(t time.Time) string {
	return "L" + t.Format("200601021504")
}
