package crypt

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

func GeneratePrivateKeyPEM() (string, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to generate ed25519 private key: %w", err)
	}

	return ConvertPrivateKeyToPEM(privateKey)
}

func GeneratePublicKeyPEM(privateKeyPEM string) (string, error) {
	privateKey, err := ConvertPrivateKey(privateKeyPEM)
	if err != nil {
		return "", err
	}

	publicKey := privateKey.Public().(ed25519.PublicKey)
	derPublicKey, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ed25519 public key: %w", err)
	}

	pubKeyBlock := &pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: derPublicKey,
	}

	pubBuf := bytes.NewBufferString("")
	if err = pem.Encode(pubBuf, pubKeyBlock); err != nil {
		return "", fmt.Errorf("cannot encode ed25519 public key: %v", err)
	}

	return pubBuf.String(), nil
}

func ConvertPrivateKeyToPEM(privateKey ed25519.PrivateKey) (string, error) {
	derPrivateKey, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ed25519 private key: %w", err)
	}
	priKeyBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: derPrivateKey,
	}

	privBuf := bytes.NewBufferString("")
	if err = pem.Encode(privBuf, priKeyBlock); err != nil {
		return "", fmt.Errorf("cannot encode ed25519 private key: %v", err)
	}

	return privBuf.String(), nil
}

func ConvertPrivateKey(privateKeyPEM string) (ed25519.PrivateKey, error) {
	pemBlock, _ := pem.Decode([]byte(privateKeyPEM))
	if pemBlock == nil {
		return nil, fmt.Errorf("no PEM block found in private key")
	}

	if pemBlock.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("unsupported private key type: %s", pemBlock.Type)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(pemBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	privateKey, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("unsupported private key type: %T", parsed)
	}

	return privateKey, nil
}

func ConvertPublicKey(publicKeyPEM string) (ed25519.PublicKey, error) {
	pemBlock, _ := pem.Decode([]byte(publicKeyPEM))
	if pemBlock == nil {
		return nil, fmt.Errorf("no PEM block found in public key")
	}

	parsed, err := x509.ParsePKIXPublicKey(pemBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	publicKey, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unsupported public key type: %T", parsed)
	}

	return publicKey, nil
}
