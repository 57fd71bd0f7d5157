// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"github.com/btcsuite/btcd/btcec"
)

// PublicKey is a btcec.PublicKey wrapper
type PublicKey btcec.PublicKey

// PublicKeyFromBytes parses a public key from its compressed or uncompressed
// serialized form
func PublicKeyFromBytes(pubKeyBytes []byte) (*PublicKey, error) {
	pubKey, err := btcec.ParsePubKey(pubKeyBytes, curve)
	if err != nil {
		return nil, err
	}
	return (*PublicKey)(pubKey), nil
}

// Serialize get the serialized format of public key, in compressed 33-byte form
func (p *PublicKey) Serialize() []byte {
	return (*btcec.PublicKey)(p).SerializeCompressed()
}

// SerializeUncompressed returns the 65-byte uncompressed form of the public key
func (p *PublicKey) SerializeUncompressed() []byte {
	return (*btcec.PublicKey)(p).SerializeUncompressed()
}
