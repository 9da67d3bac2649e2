// internal/notapendente/repository.go
package notapendente

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Notas Pendentes.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
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

/* ========================= CRUD básico de notas ========================= */

// Create cria uma nota pendente vinculada a uma venda.
func (r *Repository) Create(n *NotaPendente) error {
	return r.DB.Create(n).Error
}

// FindByID busca uma única nota pelo seu ID.
func (r *Repository) FindByID(id uint) (*NotaPendente, error) {
	var nota NotaPendente
	if err := r.DB.Preload("Empreendimento").Preload("Construtora").First(&nota, id).Error; err != nil {
		return nil, err
	}
	return &nota, nil
}

// FindByVendaID busca a nota pendente ligada a uma venda, se existir.
func (r *Repository) FindByVendaID(vendaID uint) (*NotaPendente, error) {
	var nota NotaPendente
	if err := r.DB.Where("venda_id = ?", vendaID).First(&nota).Error; err != nil {
		return nil, err
	}
	return &nota, nil
}

// ListByCorretorID busca todas as notas pendentes de um corretor,
// vencimento mais próximo primeiro.
func (r *Repository) ListByCorretorID(corretorID uint) ([]NotaPendente, error) {
	var notas []NotaPendente
	err := r.DB.
		Preload("Empreendimento").
		Preload("Construtora").
		Where("corretor_id = ?", corretorID).
		Order("data_vencimento ASC").
		Find(&notas).Error
	return notas, err
}

// ListByConstrutoraID busca as notas pendentes ligadas a uma construtora.
func (r *Repository) ListByConstrutoraID(construtoraID uint) ([]NotaPendente, error) {
	var notas []NotaPendente
	err := r.DB.
		Preload("Empreendimento").
		Where("construtora_id = ?", construtoraID).
		Order("data_vencimento ASC").
		Find(&notas).Error
	return notas, err
}

// Update atualiza todos os campos de uma nota existente (Save exige PK).
func (r *Repository) Update(nota *NotaPendente) error {
	return r.DB.Save(nota).Error
}

// DeleteByID apaga a nota; retorna gorm.ErrRecordNotFound se nada foi deletado.
// Usado quando a emissão resolve a nota e ela sai do conjunto pendente.
func (r *Repository) DeleteByID(id uint) error {
	res := r.DB.Delete(&NotaPendente{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ======================= Soma do pendente por corretor ======================= */

// SumValorByCorretorID soma as comissões ainda sem nota de um corretor.
// Se db == nil, usa o r.DB. Permite usar dentro de transação.
func (r *Repository) SumValorByCorretorID(db *gorm.DB, corretorID uint) (float64, error) {
	if db == nil {
		db = r.DB
	}
	var total float64
	err := db.Model(&NotaPendente{}).
		Where("corretor_id = ?", corretorID).
		Select("COALESCE(SUM(valor_comissao), 0)").
		Scan(&total).Error
	return total, err
}
