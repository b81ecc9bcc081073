// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 || len(s2) != 16 {
		t.Fatalf("salt lengths = %d, %d, want 16", len(s1), len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService()

	salt := bytes.Repeat([]byte{0xAB}, 16)
	k1 := svc.DeriveKey("vault secret", salt)
	k2 := svc.DeriveKey("vault secret", salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same secret+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewKeyChainService()

	k1 := svc.DeriveKey("vault secret", bytes.Repeat([]byte{0x01}, 16))
	k2 := svc.DeriveKey("vault secret", bytes.Repeat([]byte{0x02}, 16))

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x42}, 32)
	plaintext := []byte(`{"id":"1","username":"student"}`)

	sealed, err := svc.Seal(plaintext, key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Contains([]byte(sealed), []byte("student")) {
		t.Fatalf("sealed blob leaks plaintext")
	}

	got, err := svc.Open(sealed, key)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("Open = %q, want %q", got, plaintext)
	}
}

func TestSeal_NonceRandomness(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x42}, 32)

	a, err := svc.Seal([]byte("same"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b, err := svc.Seal([]byte("same"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if a == b {
		t.Fatalf("expected different blobs for repeated Seal")
	}
}

func TestOpen_Failures(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x42}, 32)
	otherKey := bytes.Repeat([]byte{0x43}, 32)

	sealed, err := svc.Seal([]byte("payload"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(sealed)
	raw[len(raw)-1] ^= 0xFF
	tampered := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name   string
		sealed string
		key    []byte
	}{
		{name: "wrong key", sealed: sealed, key: otherKey},
		{name: "tampered", sealed: tampered, key: key},
		{name: "not base64", sealed: "%%%", key: key},
		{name: "too short", sealed: base64.StdEncoding.EncodeToString([]byte("short")), key: key},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Open(tt.sealed, tt.key)
			if !errors.Is(err, ErrDecryptionFailed) {
				t.Fatalf("Open error = %v, want ErrDecryptionFailed", err)
			}
		})
	}
}

func TestSeal_InvalidKey(t *testing.T) {
	svc := NewKeyChainService()

	if _, err := svc.Seal([]byte("x"), []byte("short")); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("Seal error = %v, want ErrInvalidKey", err)
	}
}
