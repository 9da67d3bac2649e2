// internal/comissao/model.go
package comissao

// TaxaEspecial é uma regra de exceção da tabela de comissão de uma construtora.
// Pelo menos um dos dois IDs deve estar preenchido; os dois juntos formam a
// regra mais específica (corretor + empreendimento).
type TaxaEspecial struct {
	EmpreendimentoID *uint   `json:"empreendimentoId,omitempty"`
	CorretorID       *uint   `json:"corretorId,omitempty"`
	Percentual       float64 `json:"percentual"`
}

// TaxasComissao agrupa a taxa padrão e as exceções de uma construtora.
// Persistida como JSONB dentro do registro da construtora.
type TaxasComissao struct {
	Padrao    float64        `json:"padrao"`
	Especiais []TaxaEspecial `json:"especiais,omitempty"`
}

// Rótulos devolvidos junto com a taxa resolvida
const (
	TipoCorretorEmpreendimento = "especial corretor/empreendimento"
	TipoEmpreendimento         = "especial empreendimento"
	TipoCorretor               = "especial corretor"
	TipoPadrao                 = "padrão"
)

// PadraoMinimo é o piso usado quando a construtora não tem nem taxa padrão.
const PadraoMinimo = 3.0
