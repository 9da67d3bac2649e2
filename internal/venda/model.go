package venda

import (
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/construtora"
	"github.com/TerraVistaImoveis/api-corretor/internal/empreendimento"
	"gorm.io/gorm"
)

// Venda representa uma unidade vendida (ou em fechamento) por um corretor,
// com a comissão realizada no ato e o ciclo da nota fiscal de serviço.
type Venda struct {
	ID        uint           `gorm:"primaryKey" json:"vendaId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	CorretorID       uint `gorm:"not null;index" json:"corretorId"`
	ConstrutoraID    uint `gorm:"not null;index" json:"construtoraId"`
	EmpreendimentoID uint `gorm:"not null;index" json:"empreendimentoId"`

	Cliente   string    `gorm:"size:255" json:"cliente"`
	Unidade   string    `gorm:"size:50" json:"unidade"`
	Valor     float64   `gorm:"not null;default:0" json:"valor"`
	DataVenda time.Time `gorm:"not null;index" json:"dataVenda"`

	// Comissão realizada na venda. A taxa gravada aqui é a vigente no
	// fechamento e pode divergir da tabela atual da construtora.
	ComissaoCorretor     float64 `gorm:"not null;default:0" json:"comissaoCorretor"`
	TaxaComissaoCorretor float64 `gorm:"not null;default:0" json:"taxaComissaoCorretor"`
	StatusComissao       string  `gorm:"size:50;not null;default:'Pendente';index" json:"statusComissao"`

	// Ciclo da nota fiscal da comissão
	StatusNotaFiscal  string     `gorm:"size:50;not null;default:'Pendente';index" json:"statusNotaFiscal"`
	NumeroNotaFiscal  string     `gorm:"size:100" json:"numeroNotaFiscal"`
	DataNotaFiscal    *time.Time `json:"dataNotaFiscal"`
	ArquivoNotaFiscal string     `gorm:"size:255" json:"arquivoNotaFiscal"`
	MotivoRecusa      string     `gorm:"size:255" json:"motivoRecusa"`

	Empreendimento empreendimento.Empreendimento `gorm:"foreignKey:EmpreendimentoID" json:"empreendimento"`
	Construtora    construtora.Construtora       `gorm:"foreignKey:ConstrutoraID" json:"construtora"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Venda{})
}
