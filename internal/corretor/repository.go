package corretor

import (
	"github.com/TerraVistaImoveis/api-corretor/internal/models"
	"github.com/TerraVistaImoveis/api-corretor/internal/venda"
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmailOuCNPJ(db *gorm.DB, valor string) (*Corretor, error)
	Salvar(db *gorm.DB, c *Corretor) error
	BuscarPorID(db *gorm.DB, id uint) (*Corretor, error)
	ListarTodos(db *gorm.DB) ([]Corretor, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Corretor) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Busca primeiro por e-mail, depois por CNPJ, para evitar ambiguidade
func (r *repositoryImpl) BuscarPorEmailOuCNPJ(db *gorm.DB, valor string) (*Corretor, error) {
	var c Corretor

	if err := db.Where("email = ?", valor).First(&c).Error; err == nil {
		return &c, nil
	}
	if err := db.Where("cnpj = ?", valor).First(&c).Error; err == nil {
		return &c, nil
	}

	return nil, gorm.ErrRecordNotFound
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Corretor) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Corretor, error) {
	var corretor Corretor
	err := db.First(&corretor, id).Error
	return &corretor, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Corretor, error) {
	var corretores []Corretor
	err := db.Find(&corretores).Error
	return corretores, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Corretor) error {
	var existente Corretor
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Sobrenome = novosDados.Sobrenome
	existente.CRECI = novosDados.CRECI
	existente.CNPJ = novosDados.CNPJ
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone
	existente.Foto = novosDados.Foto

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Corretor{}, id).Error
}

// Monta um DTO com os principais dados e métricas do corretor
func MontarResumoCorretorDTO(
	corretor Corretor,
	vendas []venda.Venda,
	valorSemNota float64,
	notasEmAberto int,
) ResumoCorretorDTO {
	var recebida, aReceber float64

	for _, v := range vendas {
		if v.StatusComissao == models.ComissaoPaga {
			recebida += v.ComissaoCorretor
		} else {
			aReceber += v.ComissaoCorretor
		}
	}

	return ResumoCorretorDTO{
		ID:               corretor.ID,
		Nome:             corretor.Nome,
		Sobrenome:        corretor.Sobrenome,
		Email:            corretor.Email,
		CRECI:            corretor.CRECI,
		CNPJ:             corretor.CNPJ,
		Telefone:         corretor.Telefone,
		Foto:             corretor.Foto,
		VendasFechadas:   len(vendas),
		NotasEmAberto:    notasEmAberto,
		ComissaoRecebida: recebida,
		ComissaoAReceber: aReceber,
		ValorSemNota:     valorSemNota,
	}
}
