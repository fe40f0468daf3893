package lotes

import (
	"errors"
	"testing"

	"gadkin-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidarNovoLote(t *testing.T) {
	t.Parallel()

	base := CreateLoteRequest{
		Produto:             "Ração Suína Inicial",
		QuantidadePlanejada: 1000,
		Unidade:             "kg",
		DataInicio:          "2025-06-01T08:00",
	}

	tests := []struct {
		name    string
		mutate  func(*CreateLoteRequest)
		wantErr bool
	}{
		{
			name:   "pedido válido",
			mutate: func(r *CreateLoteRequest) {},
		},
		{
			name: "produto fora do catálogo",
			mutate: func(r *CreateLoteRequest) {
				r.Produto = "Ração de Peixe"
			},
			wantErr: true,
		},
		{
			name: "produto vazio",
			mutate: func(r *CreateLoteRequest) {
				r.Produto = ""
			},
			wantErr: true,
		},
		{
			name: "quantidade zero",
			mutate: func(r *CreateLoteRequest) {
				r.QuantidadePlanejada = 0
			},
			wantErr: true,
		},
		{
			name: "quantidade negativa",
			mutate: func(r *CreateLoteRequest) {
				r.QuantidadePlanejada = -10
			},
			wantErr: true,
		},
		{
			name: "unidade inválida",
			mutate: func(r *CreateLoteRequest) {
				r.Unidade = "litro"
			},
			wantErr: true,
		},
		{
			name: "data de início ausente",
			mutate: func(r *CreateLoteRequest) {
				r.DataInicio = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := base
			tt.mutate(&req)

			err := validarNovoLote(&req)
			if tt.wantErr {
				if !errors.Is(err, models.ErrValidacao) {
					t.Fatalf("validarNovoLote() error = %v, want ErrValidacao", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("validarNovoLote() erro inesperado = %v", err)
			}
		})
	}
}

func TestFiltrarMaterias(t *testing.T) {
	t.Parallel()

	entrada := []MateriaPrimaRequest{
		{Nome: "Milho", Quantidade: 500, Unidade: "kg", Moega: "Moega 1"},
		{Nome: "", Quantidade: 0},
		{Nome: "Soja", Quantidade: -5, Unidade: "kg", Moega: "Moega 2"},
		{Nome: "Calcário", Quantidade: 20, Unidade: "kg", Moega: "Moega 3"},
	}

	materias := filtrarMaterias(entrada)

	require.Len(t, materias, 2)
	assert.Equal(t, "Milho", materias[0].Nome)
	assert.Equal(t, "Calcário", materias[1].Nome)
	assert.Equal(t, 0, materias[0].Posicao)
	assert.Equal(t, 1, materias[1].Posicao)
}

func TestFiltrarMateriasPreservaOrdem(t *testing.T) {
	t.Parallel()

	entrada := []MateriaPrimaRequest{
		{Nome: "Treonina", Quantidade: 1, Unidade: "kg", Moega: "Moega 5"},
		{Nome: "Milho", Quantidade: 800, Unidade: "kg", Moega: "Moega 1"},
		{Nome: "Lisina", Quantidade: 2, Unidade: "kg", Moega: "Moega 4"},
	}

	materias := filtrarMaterias(entrada)

	require.Len(t, materias, 3)
	for i, want := range []string{"Treonina", "Milho", "Lisina"} {
		assert.Equal(t, want, materias[i].Nome)
		assert.Equal(t, i, materias[i].Posicao)
	}
}

func TestFiltrarMateriasNormalizaUnidadeEMoega(t *testing.T) {
	t.Parallel()

	entrada := []MateriaPrimaRequest{
		{Nome: "Milho", Quantidade: 100, Unidade: "litro", Moega: "Moega 9"},
	}

	materias := filtrarMaterias(entrada)

	require.Len(t, materias, 1)
	assert.Equal(t, models.UnidadeKg, materias[0].Unidade)
	assert.Equal(t, "Moega 1", materias[0].Moega)
}

func TestCatalogos(t *testing.T) {
	t.Parallel()

	assert.True(t, ProdutoValido("Ração Avícola Postura"))
	assert.False(t, ProdutoValido("ração avícola postura")) // sensível a maiúsculas
	assert.True(t, MoegaValida("Moega 5"))
	assert.False(t, MoegaValida("Moega 6"))
}
