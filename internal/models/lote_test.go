package models

import "testing"

func TestLoteStatusIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status LoteStatus
		want   bool
	}{
		{LoteStatusAtivo, true},
		{LoteStatusConcluido, true},
		{LoteStatus("cancelado"), false},
		{LoteStatus(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.IsValid(); got != tt.want {
			t.Errorf("LoteStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestUnidadeIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		unidade Unidade
		want    bool
	}{
		{UnidadeKg, true},
		{UnidadeTon, true},
		{UnidadeSaca, true},
		{Unidade("litro"), false},
		{Unidade(""), false},
	}

	for _, tt := range tests {
		if got := tt.unidade.IsValid(); got != tt.want {
			t.Errorf("Unidade(%q).IsValid() = %v, want %v", tt.unidade, got, tt.want)
		}
	}
}
