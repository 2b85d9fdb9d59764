package models

import "golang.org/x/crypto/bcrypt"

// User is a back-office account identified by username. The password is
// stored bcrypt-hashed and never serialized.
type User struct {
	ID           string `json:"id" db:"id" gorm:"type:varchar(36);primaryKey;default:gen_random_uuid();not null"`
	Username     string `json:"username" db:"username" gorm:"type:text;not null;unique"`
	PasswordHash string `json:"-" db:"password" gorm:"column:password;type:text;not null"`
}

// InsertUser is the caller-supplied shape for creating a user. The
// password arrives in plaintext and is hashed before it reaches storage.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SetPassword hashes the plaintext password into PasswordHash.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}
