package crypto

import (
	"bytes"
	"testing"
)

func TestSignMessage(t *testing.T) {
	privKey, pubKey, err := NewKeyPair()
	if err != nil {
		t.Errorf("Error generating new key pair: %s", err)
		return
	}

	message := "dummy test message"
	messageHash := Sha256(Sha256([]byte(message)))
	sig, err := Sign(privKey, messageHash)

	if err != nil {
		t.Errorf("Error signing: %s", err)
		return
	}
	if !sig.VerifySignature(pubKey, messageHash) {
		t.Error("Signature verification failed")
	}

	// use another public key
	_, pubKey2, err := NewKeyPair()
	if err != nil {
		t.Errorf("Error generating new key pair: %s", err)
		return
	}
	if sig.VerifySignature(pubKey2, messageHash) {
		t.Error("Signature verification succeeded, but should have failed because of wrong public key")
	}
}

func TestSignatureSerialize(t *testing.T) {
	privKey, pubKey, err := NewKeyPair()
	if err != nil {
		t.Fatalf("Error generating new key pair: %s", err)
	}

	messageHash := Sha256([]byte("serialize me"))
	sig, err := Sign(privKey, messageHash)
	if err != nil {
		t.Fatalf("Error signing: %s", err)
	}

	sigBytes := sig.Serialize()
	sig2, err := SigFromBytes(sigBytes)
	if err != nil {
		t.Fatalf("Error parsing DER signature: %s", err)
	}
	if !sig2.VerifySignature(pubKey, messageHash) {
		t.Error("Parsed signature failed to verify")
	}
	if !bytes.Equal(sig2.Serialize(), sigBytes) {
		t.Error("Signature changed across serialize/parse round trip")
	}

	// garbage is not a DER signature
	if _, err := SigFromBytes([]byte{0x01, 0x02, 0x03}); err == nil {
		t.Error("SigFromBytes should fail on malformed input")
	}
}

func TestSignWrongHashSize(t *testing.T) {
	privKey, _, err := NewKeyPair()
	if err != nil {
		t.Fatalf("Error generating new key pair: %s", err)
	}
	if _, err := Sign(privKey, []byte("short")); err == nil {
		t.Error("Sign should reject a message hash that is not 32 bytes")
	}
}

func TestPublicKeyFromBytes(t *testing.T) {
	privKey, pubKey, err := NewKeyPair()
	if err != nil {
		t.Fatalf("Error generating new key pair: %s", err)
	}
	_ = privKey

	pubKeyBytes := pubKey.Serialize()
	if len(pubKeyBytes) != 33 {
		t.Errorf("Compressed public key length = %d, want 33", len(pubKeyBytes))
	}
	pubKey2, err := PublicKeyFromBytes(pubKeyBytes)
	if err != nil {
		t.Fatalf("Error parsing public key: %s", err)
	}
	if !bytes.Equal(pubKey2.Serialize(), pubKeyBytes) {
		t.Error("Public key changed across serialize/parse round trip")
	}

	uncompressed := pubKey.SerializeUncompressed()
	if len(uncompressed) != 65 {
		t.Errorf("Uncompressed public key length = %d, want 65", len(uncompressed))
	}
	if _, err := PublicKeyFromBytes(uncompressed); err != nil {
		t.Errorf("Error parsing uncompressed public key: %s", err)
	}

	if _, err := PublicKeyFromBytes([]byte{0x02}); err == nil {
		t.Error("PublicKeyFromBytes should fail on truncated input")
	}
}
