// internal/construtora/dto.go
package construtora

import (
	"github.com/TerraVistaImoveis/api-corretor/internal/comissao"
)

// LoginRequest é usado em POST /construtoras/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateConstrutoraRequest é usado em POST /construtoras
type CreateConstrutoraRequest struct {
	Nome          string        `json:"nome"`
	RazaoSocial   string        `json:"razaoSocial"`
	CNPJ          string        `json:"cnpj"`
	Email         string        `json:"email"`
	Telefone      string        `json:"telefone"`
	Logo          string        `json:"logo"`
	WebhookURL    string        `json:"webhookUrl"`
	Senha         string        `json:"senha"`
	TaxasComissao comissao.TaxasComissao `json:"taxasComissao"`
}

// UpdateConstrutoraRequest é usado em PUT /construtoras/{id}
// Campos como ponteiro permitem omitir no JSON se não quiser alterar
type UpdateConstrutoraRequest struct {
	Nome        *string `json:"nome,omitempty"`
	RazaoSocial *string `json:"razaoSocial,omitempty"`
	Telefone    *string `json:"telefone,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	WebhookURL  *string `json:"webhookUrl,omitempty"`
}

// UpdateTaxasRequest é usado em PUT /construtoras/{id}/taxas-comissao
type UpdateTaxasRequest struct {
	Padrao    float64        `json:"padrao"`
	Especiais []comissao.TaxaEspecial `json:"especiais"`
}

// TaxaResolvidaDTO é a resposta de GET /construtoras/{id}/taxa-comissao
type TaxaResolvidaDTO struct {
	Percentual float64 `json:"percentual"`
	Tipo       string  `json:"tipo"`
}
