package venda

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Venda
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// Create insere uma nova venda
func (r *Repository) Create(v *Venda) error {
	return r.DB.Create(v).Error
}

// FindByID retorna uma venda pelo ID, com as associações de exibição
func (r *Repository) FindByID(id uint) (*Venda, error) {
	var v Venda
	if err := r.DB.
		Preload("Empreendimento").
		Preload("Construtora").
		First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// ListByCorretor retorna todas as vendas de um corretor, mais recentes primeiro.
// O filtro fino (status, período, busca) é aplicado em memória pelo relatório.
func (r *Repository) ListByCorretor(corretorID uint) ([]Venda, error) {
	var vendas []Venda
	err := r.DB.
		Preload("Empreendimento").
		Preload("Construtora").
		Where("corretor_id = ?", corretorID).
		Order("data_venda DESC").
		Find(&vendas).Error
	return vendas, err
}

// ListByConstrutora retorna as vendas ligadas a uma construtora
func (r *Repository) ListByConstrutora(construtoraID uint) ([]Venda, error) {
	var vendas []Venda
	err := r.DB.
		Preload("Empreendimento").
		Preload("Construtora").
		Where("construtora_id = ?", construtoraID).
		Order("data_venda DESC").
		Find(&vendas).Error
	return vendas, err
}

// Update salva alterações em uma venda existente (atualiza todos os campos)
func (r *Repository) Update(v *Venda) error {
	return r.DB.Save(v).Error
}

// UpdateNotaFiscal grava só os campos do ciclo de nota da venda.
// É mais eficiente que o Update geral para esta operação específica.
func (r *Repository) UpdateNotaFiscal(id uint, campos map[string]interface{}) error {
	return r.DB.Model(&Venda{}).Where("id = ?", id).Updates(campos).Error
}

// Delete remove uma venda do banco (soft delete via gorm.DeletedAt)
func (r *Repository) Delete(v *Venda) error {
	return r.DB.Delete(v).Error
}
