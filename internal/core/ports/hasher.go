package ports

// VerifyResult is the outcome of checking a plaintext password against a
// stored hash.
type VerifyResult int

const (
	// VerifyFailed means the password does not match the hash.
	VerifyFailed VerifyResult = iota
	// VerifySuccess means the password matches.
	VerifySuccess
	// VerifySuccessRehash means the password matches but the hash was
	// produced with weaker parameters than the current default and should
	// be regenerated.
	VerifySuccessRehash
)

// PasswordHasher is a one-way salted password hashing scheme. Hashing the
// same plaintext twice yields different encodings; the plaintext is never
// recoverable from the hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(storedHash, plaintext string) VerifyResult
}
