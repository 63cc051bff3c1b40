// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip38

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"

	"github.com/ModChain/bip38/address"
	"github.com/ModChain/bip38/curve"
	"github.com/ModChain/bip38/network"
)

// Engine encrypts and decrypts keys for one network.  An Engine holds no
// secrets.  It is safe for concurrent use as long as the reader given to
// WithRandReader is; the default crypto/rand reader is.
type Engine struct {
	params        network.Params
	wifPrefix     []byte
	addressPrefix []byte
	log           *slog.Logger
	rand          io.Reader
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger.  The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRandReader replaces crypto/rand as the source of owner salts and
// seeds.  The Engine does not serialize reads from r.
func WithRandReader(r io.Reader) Option {
	return func(e *Engine) {
		if r != nil {
			e.rand = r
		}
	}
}

// New returns an Engine for the given network.
func New(params network.Params, opts ...Option) *Engine {
	e := &Engine{
		params:        params,
		wifPrefix:     params.WIFPrefixBytes(),
		addressPrefix: params.AddressPrefixBytes(),
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		rand:          rand.Reader,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("network", params.String())
	return e
}

// Params returns the network the engine was created for.
func (e *Engine) Params() network.Params {
	return e.params
}

func (e *Engine) address(pub *curve.PublicKey) string {
	return address.Encode(pub, e.addressPrefix, e.params.Alphabet)
}

func (e *Engine) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(e.rand, b); err != nil {
		return nil, fmt.Errorf("bip38: read random bytes: %w", err)
	}
	return b, nil
}
