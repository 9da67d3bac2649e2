package corretor

import (
	"gorm.io/gorm"
)

type Corretor struct {
	gorm.Model
	Nome                  string `json:"nome"`
	Sobrenome             string `json:"sobrenome"`
	CRECI                 string `json:"creci" gorm:"unique"`
	CNPJ                  string `json:"cnpj" gorm:"unique"`
	Email                 string `json:"email" gorm:"unique"`
	Telefone              string `json:"telefone"`
	Foto                  string `json:"foto"`
	Senha                 string `json:"-"`
	PrecisaRedefinirSenha bool   `json:"-"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Corretor{})
}
