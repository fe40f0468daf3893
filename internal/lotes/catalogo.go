package lotes

// Catálogos fixos do formulário de produção. O frontend monta os selects
// a partir daqui e o backend valida contra as mesmas listas.

var Produtos = []string{
	"Ração Suína Inicial",
	"Ração Suína Crescimento",
	"Ração Suína Terminação",
	"Ração Bovina Bezerro",
	"Ração Bovina Engorda",
	"Ração Avícola Inicial",
	"Ração Avícola Crescimento",
	"Ração Avícola Postura",
}

var MateriasDisponiveis = []string{
	"Milho",
	"Soja",
	"Farelo de Soja",
	"Farelo de Trigo",
	"Calcário",
	"Fosfato Bicálcico",
	"Sal Comum",
	"Premix Vitamínico",
	"Óleo de Soja",
	"Lisina",
	"Metionina",
	"Treonina",
}

var Moegas = []string{
	"Moega 1",
	"Moega 2",
	"Moega 3",
	"Moega 4",
	"Moega 5",
}

func ProdutoValido(nome string) bool {
	for _, p := range Produtos {
		if p == nome {
			return true
		}
	}
	return false
}

func MoegaValida(moega string) bool {
	for _, m := range Moegas {
		if m == moega {
			return true
		}
	}
	return false
}
