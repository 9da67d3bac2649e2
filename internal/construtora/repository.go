package construtora

import (
	"github.com/TerraVistaImoveis/api-corretor/internal/comissao"
	"gorm.io/gorm"
)

type Repository interface {
	FindByEmail(db *gorm.DB, email string) (*Construtora, error)
	Save(db *gorm.DB, c *Construtora) error
	ListAll(db *gorm.DB) ([]Construtora, error)
	FindByID(db *gorm.DB, id uint) (*Construtora, error)
	Update(db *gorm.DB, id uint, req *UpdateConstrutoraRequest) error
	UpdateTaxas(db *gorm.DB, id uint, taxas comissao.TaxasComissao) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FindByEmail(db *gorm.DB, email string) (*Construtora, error) {
	var c Construtora
	if err := db.Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Save(db *gorm.DB, c *Construtora) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Construtora, error) {
	var list []Construtora
	err := db.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Construtora, error) {
	var c Construtora
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, req *UpdateConstrutoraRequest) error {
	var c Construtora
	if err := db.First(&c, id).Error; err != nil {
		return err
	}
	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.RazaoSocial != nil {
		c.RazaoSocial = *req.RazaoSocial
	}
	if req.Telefone != nil {
		c.Telefone = *req.Telefone
	}
	if req.Logo != nil {
		c.Logo = *req.Logo
	}
	if req.WebhookURL != nil {
		c.WebhookURL = *req.WebhookURL
	}
	return db.Save(&c).Error
}

// UpdateTaxas substitui a tabela de comissão inteira (padrão + especiais).
func (r *repositoryImpl) UpdateTaxas(db *gorm.DB, id uint, taxas comissao.TaxasComissao) error {
	var c Construtora
	if err := db.First(&c, id).Error; err != nil {
		return err
	}
	c.TaxasComissao = taxas
	return db.Save(&c).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Construtora{}, id).Error
}
