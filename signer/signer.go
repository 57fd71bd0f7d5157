// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package signer abstracts signature production away from script building and
// verification. A Signer may wrap a local private key or a remote signing
// service; callers only see the asynchronous SignAsync and the bounded Sign.
package signer

import (
	"errors"
	"time"

	"github.com/okayplanet/bitcoin-s-core/crypto"
	"github.com/okayplanet/bitcoin-s-core/log"
)

var logger = log.NewLogger("signer")

// DefaultSignTimeout bounds how long Sign waits for the underlying signing
// routine before giving up.
const DefaultSignTimeout = 30 * time.Second

// ErrSignTimeout is returned when a signing routine does not produce a
// signature within the allotted time.
var ErrSignTimeout = errors.New("Signing timed out")

// SignFunc produces a signature over the passed message hash.
type SignFunc func(messageHash []byte) (*crypto.Signature, error)

// Executor runs signing routines. It decides where the work happens, e.g.,
// a fresh goroutine or a shared worker pool.
type Executor interface {
	Go(func())
}

// goExecutor runs each routine on its own goroutine.
type goExecutor struct{}

func (goExecutor) Go(f func()) {
	go f()
}

// Result carries the outcome of an asynchronous signing request.
type Result struct {
	Sig *crypto.Signature
	Err error
}

// Signer produces signatures via a SignFunc and optionally exposes the
// corresponding public key.
type Signer struct {
	sign   SignFunc
	pubKey *crypto.PublicKey
	exec   Executor
}

// New returns a Signer that signs with fn and advertises pubKey.
func New(fn SignFunc, pubKey *crypto.PublicKey) *Signer {
	return NewWithExecutor(fn, pubKey, goExecutor{})
}

// NewWithExecutor returns a Signer that runs fn on the passed executor.
func NewWithExecutor(fn SignFunc, pubKey *crypto.PublicKey, exec Executor) *Signer {
	return &Signer{
		sign:   fn,
		pubKey: pubKey,
		exec:   exec,
	}
}

// NewRemote returns a Signer for a signing backend whose public key is not
// known locally, e.g., a detached signing service.
func NewRemote(fn SignFunc) *Signer {
	return NewWithExecutor(fn, nil, goExecutor{})
}

// FromPrivateKey returns a Signer backed by a local private key.
func FromPrivateKey(privKey *crypto.PrivateKey) *Signer {
	return New(func(messageHash []byte) (*crypto.Signature, error) {
		return crypto.Sign(privKey, messageHash)
	}, privKey.PubKey())
}

// PubKey returns the signer's public key if it advertises one.
func (s *Signer) PubKey() (*crypto.PublicKey, bool) {
	return s.pubKey, s.pubKey != nil
}

// SignAsync starts a signing routine for messageHash and returns a channel
// delivering its Result. The channel is buffered so the routine never blocks
// on a caller that walked away.
func (s *Signer) SignAsync(messageHash []byte) <-chan Result {
	resultCh := make(chan Result, 1)
	s.exec.Go(func() {
		sig, err := s.sign(messageHash)
		resultCh <- Result{Sig: sig, Err: err}
	})
	return resultCh
}

// Sign signs messageHash synchronously, waiting at most DefaultSignTimeout.
func (s *Signer) Sign(messageHash []byte) (*crypto.Signature, error) {
	return s.SignWithTimeout(messageHash, DefaultSignTimeout)
}

// SignWithTimeout signs messageHash synchronously, waiting at most timeout.
// On timeout the signing routine keeps running but its result is dropped.
func (s *Signer) SignWithTimeout(messageHash []byte, timeout time.Duration) (*crypto.Signature, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-s.SignAsync(messageHash):
		return result.Sig, result.Err
	case <-timer.C:
		logger.Warnf("Signing did not finish within %v", timeout)
		return nil, ErrSignTimeout
	}
}
