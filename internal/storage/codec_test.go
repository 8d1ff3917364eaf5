// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"bytes"
	"testing"

	"github.com/canonical/onboarding-service/internal/types"
)

func TestSecureCodec_RoundTrip(t *testing.T) {
	codec, err := NewSecureCodec(NewJSONCodec[types.SecurityCode](), "test-passphrase")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	code := types.SecurityCode{Email: "a@b.com", Code: "c-1"}
	data, err := codec.Encode(code)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bytes.Contains(data, []byte("a@b.com")) {
		t.Error("ciphertext leaks the plaintext email")
	}

	got, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != code {
		t.Errorf("expected %v, got %v", code, got)
	}
}

func TestSecureCodec_WrongKey(t *testing.T) {
	enc, err := NewSecureCodec(NewJSONCodec[string](), "key-one")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dec, err := NewSecureCodec(NewJSONCodec[string](), "key-two")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := enc.Encode("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := dec.Decode(data); err == nil {
		t.Error("expected decryption with the wrong key to fail")
	}
}

func TestSecureCodec_TruncatedCiphertext(t *testing.T) {
	codec, err := NewSecureCodec(NewJSONCodec[string](), "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := codec.Decode([]byte{0x01}); err == nil {
		t.Error("expected truncated ciphertext to fail")
	}
}
