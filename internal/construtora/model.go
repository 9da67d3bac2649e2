// internal/construtora/model.go
package construtora

import (
	"time"

	"github.com/TerraVistaImoveis/api-corretor/internal/comissao"
)

type Construtora struct {
	ID            uint                   `gorm:"primaryKey" json:"id"`
	Nome          string                 `gorm:"size:100;not null" json:"nome"`
	RazaoSocial   string                 `gorm:"size:255" json:"razaoSocial"`
	CNPJ          string                 `gorm:"size:20;uniqueIndex;not null" json:"cnpj"`
	Email         string                 `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password      string                 `gorm:"size:255;not null" json:"-"` // não expõe a senha no JSON
	Telefone      string                 `gorm:"size:20" json:"telefone"`
	Logo          string                 `gorm:"size:255" json:"logo"`
	WebhookURL    string                 `gorm:"size:255" json:"webhookUrl"`
	TaxasComissao comissao.TaxasComissao `gorm:"type:jsonb;serializer:json" json:"taxasComissao"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}
