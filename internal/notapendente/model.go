// internal/notapendente/model.go
package notapendente

import (
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/construtora"
	"github.com/TerraVistaImoveis/api-corretor/internal/empreendimento"
	"gorm.io/gorm"
)

// Imposto é uma linha da retenção: alíquota aplicada e valor calculado.
type Imposto struct {
	Aliquota float64 `json:"aliquota"`
	Valor    float64 `json:"valor"`
}

// Impostos é o detalhamento tributário da nota de serviço (retenções federais
// e municipais típicas de comissão de corretagem PJ).
type Impostos struct {
	ISS    Imposto `json:"iss"`
	PIS    Imposto `json:"pis"`
	COFINS Imposto `json:"cofins"`
	IR     Imposto `json:"ir"`
	CSLL   Imposto `json:"csll"`
	Total  float64 `json:"total"`
}

// NotaPendente representa uma comissão ainda sem nota fiscal emitida.
// Status gravado é só "Rascunho" ou "Pendente"; "Vencida" é derivado da data
// de vencimento no momento da leitura, nunca persistido.
type NotaPendente struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	VendaID          uint       `gorm:"not null;index" json:"vendaId"`
	CorretorID       uint       `gorm:"not null;index" json:"corretorId"`
	ConstrutoraID    uint       `gorm:"not null;index" json:"construtoraId"`
	EmpreendimentoID uint       `gorm:"not null;index" json:"empreendimentoId"`
	Cliente          string     `gorm:"size:255" json:"cliente"`
	Unidade          string     `gorm:"size:50" json:"unidade"`
	ValorComissao    float64    `gorm:"not null;default:0" json:"valorComissao"`
	TaxaComissao     float64    `gorm:"not null;default:0" json:"taxaComissao"`
	DataVencimento   time.Time  `gorm:"not null;index" json:"dataVencimento"`
	Status           string     `gorm:"size:50;not null;default:'Rascunho';index" json:"status"`
	DescricaoServico string     `gorm:"size:500" json:"descricaoServico"`
	CodigoServico    string     `gorm:"size:20" json:"codigoServico"`
	Impostos         Impostos   `gorm:"type:jsonb;serializer:json" json:"impostos"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`

	Empreendimento empreendimento.Empreendimento `gorm:"foreignKey:EmpreendimentoID" json:"empreendimento,omitempty"`
	Construtora    construtora.Construtora       `gorm:"foreignKey:ConstrutoraID" json:"construtora,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&NotaPendente{})
}
