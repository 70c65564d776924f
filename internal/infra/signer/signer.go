// Package signer wraps local keypair material and applies signatures to
// backend-built transactions. Signing is purely local; nothing here
// touches the network or persists key material.
package signer

import (
	"encoding/base64"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"

	"github.com/silkyway/silk/internal/core/sdkerr"
)

// Keypair holds one wallet's signing key.
type Keypair struct {
	priv solana.PrivateKey
}

// Generate creates a new random keypair.
func Generate() (*Keypair, error) {
	priv, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, sdkerr.New(sdkerr.CodeAPIError, "generate keypair: %v", err)
	}
	return &Keypair{priv: priv}, nil
}

// FromBase58 loads a keypair from its base58 private key encoding.
func FromBase58(s string) (*Keypair, error) {
	priv, err := solana.PrivateKeyFromBase58(s)
	if err != nil {
		return nil, sdkerr.New(sdkerr.CodeWalletNotFound, "Invalid wallet private key: %v", err)
	}
	return &Keypair{priv: priv}, nil
}

// Address returns the base58 public address.
func (k *Keypair) Address() string {
	return k.priv.PublicKey().String()
}

// PrivateKeyBase58 returns the base58 private key for persistence by the
// config store.
func (k *Keypair) PrivateKeyBase58() string {
	return k.priv.String()
}

// SignTransaction decodes a base64 unsigned transaction, applies this
// keypair's signature, and re-encodes the signed bytes. Only the slot
// belonging to this keypair is signed; other required signers are left
// untouched.
func (k *Keypair) SignTransaction(unsignedTx string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(unsignedTx)
	if err != nil {
		return "", sdkerr.New(sdkerr.CodeAPIError, "decode transaction: %v", err)
	}

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return "", sdkerr.New(sdkerr.CodeAPIError, "parse transaction: %v", err)
	}

	pub := k.priv.PublicKey()
	if _, err := tx.PartialSign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(pub) {
			return &k.priv
		}
		return nil
	}); err != nil {
		return "", sdkerr.New(sdkerr.CodeAPIError, "sign transaction: %v", err)
	}

	signed, err := tx.MarshalBinary()
	if err != nil {
		return "", sdkerr.New(sdkerr.CodeAPIError, "serialize transaction: %v", err)
	}
	return base64.StdEncoding.EncodeToString(signed), nil
}
