package model

import (
	"time"

	"github.com/google/uuid"
)

// PhoneOTPModel menyimpan kode OTP per nomor telepon. Kode disimpan sebagai
// hash SHA-256, bukan plaintext; satu baris aktif per nomor (baris lama
// di-consume atau dihapus scheduler setelah kedaluwarsa).
type PhoneOTPModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Phone    string    `gorm:"column:phone;size:32;not null;index" json:"phone"`
	CodeHash []byte    `gorm:"column:code_hash;type:bytea;not null" json:"-"`

	ExpiresAt  time.Time  `gorm:"column:expires_at;not null" json:"expires_at"`
	Attempts   int        `gorm:"column:attempts;not null;default:0" json:"attempts"`
	ConsumedAt *time.Time `gorm:"column:consumed_at" json:"consumed_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName override
func (PhoneOTPModel) TableName() string {
	return "phone_otps"
}
