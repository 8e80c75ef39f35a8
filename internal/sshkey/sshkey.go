// Package sshkey generates SSH key pairs for the dev sshkey command.
package sshkey

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"
)

// Generate creates a new ed25519 key pair and saves it to the specified path.
// If the key already exists, it does nothing and reports false.
var Generate = func(privateKeyPath, comment string) (created bool, err error) {
	if _, err := os.Stat(privateKeyPath); err == nil {
		// Key already exists
		return false, nil
	}

	sshDir := filepath.Dir(privateKeyPath)
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return false, fmt.Errorf("failed to create ssh directory: %w", err)
	}

	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return false, fmt.Errorf("failed to generate private key: %w", err)
	}

	privateKeyPEM, err := ssh.MarshalPrivateKey(privateKey, comment)
	if err != nil {
		return false, fmt.Errorf("failed to encode private key: %w", err)
	}
	if err := os.WriteFile(privateKeyPath, pem.EncodeToMemory(privateKeyPEM), 0600); err != nil {
		return false, fmt.Errorf("failed to write private key: %w", err)
	}

	sshPublicKey, err := ssh.NewPublicKey(publicKey)
	if err != nil {
		return false, fmt.Errorf("failed to create public key: %w", err)
	}
	authorized := ssh.MarshalAuthorizedKey(sshPublicKey)
	if comment != "" {
		authorized = append(authorized[:len(authorized)-1], []byte(" "+comment+"\n")...)
	}
	if err := os.WriteFile(privateKeyPath+".pub", authorized, 0644); err != nil {
		return false, fmt.Errorf("failed to write public key: %w", err)
	}

	return true, nil
}
