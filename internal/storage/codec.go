// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// Codec serializes store values at the backend boundary. It exists so a
// deployment can keep invitation records encrypted at rest without the
// services above knowing about it.
type Codec[T any] interface {
	Encode(value T) ([]byte, error)
	Decode(data []byte) (T, error)
}

type JSONCodec[T any] struct{}

func NewJSONCodec[T any]() *JSONCodec[T] {
	return &JSONCodec[T]{}
}

func (c *JSONCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c *JSONCodec[T]) Decode(data []byte) (T, error) {
	var value T
	err := json.Unmarshal(data, &value)
	return value, err
}

// SecureCodec wraps another codec with AES-GCM. The key is derived from
// the configured passphrase with SHA-256, nonce is prepended to the
// ciphertext.
type SecureCodec[T any] struct {
	inner Codec[T]
	aead  cipher.AEAD
}

func NewSecureCodec[T any](inner Codec[T], passphrase string) (*SecureCodec[T], error) {
	key := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AEAD: %w", err)
	}

	return &SecureCodec[T]{inner: inner, aead: aead}, nil
}

func (c *SecureCodec[T]) Encode(value T) ([]byte, error) {
	plaintext, err := c.inner.Encode(value)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *SecureCodec[T]) Decode(data []byte) (T, error) {
	var zero T
	if len(data) < c.aead.NonceSize() {
		return zero, fmt.Errorf("ciphertext shorter than nonce")
	}

	nonce, ciphertext := data[:c.aead.NonceSize()], data[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to decrypt value: %w", err)
	}

	return c.inner.Decode(plaintext)
}
