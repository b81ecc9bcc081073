// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns the client-side vault cryptography. It knows nothing
// about sessions or storage backends; it only derives keys and seals blobs.
//
// Flow:
//
//	salt   = GenerateSalt()                 once per install, stored in clear
//	key    = DeriveKey(vaultSecret, salt)   held in memory only
//	sealed = Seal(plaintext, key)           base64(nonce ‖ ciphertext)
//	plain  = Open(sealed, key)
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is not a secret.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches the vault secret into a 256-bit AES key with Argon2id.
	DeriveKey(secret string, salt []byte) []byte

	// Seal encrypts plaintext with AES-256-GCM and returns the base64 blob.
	Seal(plaintext, key []byte) (string, error)

	// Open reverses Seal. Any tampering, truncation or wrong key yields
	// ErrDecryptionFailed.
	Open(sealed string, key []byte) ([]byte, error)
}
