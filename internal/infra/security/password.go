package security

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier checks the operator password against its stored bcrypt
// hash. There is a single admin credential, configured at deploy time.
type PasswordVerifier struct {
	Hash string
}

func (v PasswordVerifier) Verify(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(v.Hash), []byte(password))
}

// HashPassword produces a bcrypt hash for seeding ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
