// internal/empreendimento/repository.go
package empreendimento

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(e *Empreendimento) error {
	return r.DB.Create(e).Error
}

func (r *Repository) FindByConstrutora(idConstrutora uint) ([]Empreendimento, error) {
	var es []Empreendimento
	err := r.DB.Where("construtora_id = ?", idConstrutora).Find(&es).Error
	return es, err
}

func (r *Repository) FindByID(id uint) (*Empreendimento, error) {
	var e Empreendimento
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Update(e *Empreendimento) error {
	return r.DB.Save(e).Error
}

func (r *Repository) Delete(e *Empreendimento) error {
	return r.DB.Delete(e).Error
}

func (r *Repository) ListAll() ([]Empreendimento, error) {
	var es []Empreendimento
	err := r.DB.Find(&es).Error
	return es, err
}
