// internal/auth/refresh_model.go
package auth

import "time"

type RefreshToken struct {
  ID        uint       `gorm:"primaryKey"`
  UserID    uint       `gorm:"index"`
  FamilyID  string     `gorm:"index"`
  Hash      string     `gorm:"uniqueIndex"`
  Perfil    string     // "corretor" | "construtora": papel preservado no refresh
  ExpiresAt time.Time  `gorm:"index"`
  RevokedAt *time.Time
  CreatedAt time.Time
}
