// internal/empreendimento/model.go
package empreendimento

import "gorm.io/gorm"

type Empreendimento struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	ConstrutoraID uint    `gorm:"not null;index" json:"construtoraId"`
	Nome          string  `gorm:"size:255;not null" json:"nome"`
	Cidade        string  `gorm:"size:100" json:"cidade"`
	UF            string  `gorm:"size:2" json:"uf"`
	Status        string  `gorm:"size:50" json:"status"` // ex: "Lançamento", "Em Obras", "Pronto"
	TotalUnidades int     `gorm:"not null;default:0" json:"totalUnidades"`
	ValorMedio    float64 `gorm:"not null;default:0" json:"valorMedio"`
}

// AutoMigrate em algum init:
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Empreendimento{})
}
