// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package network holds the per-currency version prefixes consumed by the WIF
// and address codecs.  A table of common currencies is built in and callers
// may load their own from YAML.
package network

import (
	"bytes"
	_ "embed"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ModChain/bip38/base58check"
)

// Common network names.
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Regtest = "regtest"
)

//go:embed networks.yaml
var builtinTable []byte

// Params are the version prefixes of one network of one currency.
type Params struct {
	Currency      string
	Network       string
	WIFPrefix     uint32
	AddressPrefix uint32
	Alphabet      *base58check.Alphabet
}

// WIFPrefixBytes returns the WIF prefix in its minimal big-endian form.
func (p Params) WIFPrefixBytes() []byte {
	return prefixBytes(p.WIFPrefix)
}

// AddressPrefixBytes returns the address prefix in its minimal big-endian
// form.
func (p Params) AddressPrefixBytes() []byte {
	return prefixBytes(p.AddressPrefix)
}

// String returns "currency/network".
func (p Params) String() string {
	return p.Currency + "/" + p.Network
}

// prefixBytes drops leading zero bytes but always keeps at least one, so
// 0x00 encodes as a single zero byte.
func prefixBytes(v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	i := 0
	for i < len(b)-1 && b[i] == 0 {
		i++
	}
	return append([]byte(nil), b[i:]...)
}

type tableFile struct {
	Currencies []struct {
		Name     string `yaml:"name"`
		Alphabet string `yaml:"alphabet"`
		Networks []struct {
			Name          string `yaml:"name"`
			WIFPrefix     uint32 `yaml:"wif_prefix"`
			AddressPrefix uint32 `yaml:"address_prefix"`
		} `yaml:"networks"`
	} `yaml:"currencies"`
}

// Table maps currencies and network names to Params.  Lookups are case
// insensitive.
type Table struct {
	names    []string
	networks map[string]map[string]Params
}

// Load reads a YAML parameter table.
func Load(r io.Reader) (*Table, error) {
	var f tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		str := fmt.Sprintf("failed to decode network table: %v", err)
		return nil, makeError(ErrInvalidTable, str)
	}

	t := &Table{networks: make(map[string]map[string]Params, len(f.Currencies))}
	for _, c := range f.Currencies {
		if c.Name == "" {
			return nil, makeError(ErrInvalidTable, "currency without a name")
		}
		key := strings.ToLower(c.Name)
		if _, ok := t.networks[key]; ok {
			str := fmt.Sprintf("duplicate currency %q", c.Name)
			return nil, makeError(ErrInvalidTable, str)
		}
		alphabet, err := base58check.NewAlphabet(c.Alphabet)
		if err != nil {
			str := fmt.Sprintf("currency %q: %v", c.Name, err)
			return nil, makeError(ErrInvalidTable, str)
		}
		if len(c.Networks) == 0 {
			str := fmt.Sprintf("currency %q has no networks", c.Name)
			return nil, makeError(ErrInvalidTable, str)
		}

		nets := make(map[string]Params, len(c.Networks))
		for _, n := range c.Networks {
			netKey := strings.ToLower(n.Name)
			if _, ok := nets[netKey]; ok {
				str := fmt.Sprintf("currency %q: duplicate network %q", c.Name, n.Name)
				return nil, makeError(ErrInvalidTable, str)
			}
			nets[netKey] = Params{
				Currency:      c.Name,
				Network:       n.Name,
				WIFPrefix:     n.WIFPrefix,
				AddressPrefix: n.AddressPrefix,
				Alphabet:      alphabet,
			}
		}
		t.networks[key] = nets
		t.names = append(t.names, c.Name)
	}
	sort.Strings(t.names)
	return t, nil
}

// Lookup returns the parameters of a currency network.
func (t *Table) Lookup(currency, network string) (Params, error) {
	nets, ok := t.networks[strings.ToLower(currency)]
	if !ok {
		str := fmt.Sprintf("unknown currency %q", currency)
		return Params{}, makeError(ErrUnknownCurrency, str)
	}
	p, ok := nets[strings.ToLower(network)]
	if !ok {
		str := fmt.Sprintf("currency %q has no network %q", currency, network)
		return Params{}, makeError(ErrUnknownNetwork, str)
	}
	return p, nil
}

// Currencies returns the currency names in the table, sorted.
func (t *Table) Currencies() []string {
	return append([]string(nil), t.names...)
}

// Networks returns the sorted network names of a currency.
func (t *Table) Networks(currency string) ([]string, error) {
	nets, ok := t.networks[strings.ToLower(currency)]
	if !ok {
		str := fmt.Sprintf("unknown currency %q", currency)
		return nil, makeError(ErrUnknownCurrency, str)
	}
	names := make([]string, 0, len(nets))
	for _, p := range nets {
		names = append(names, p.Network)
	}
	sort.Strings(names)
	return names, nil
}

var builtin = func() *Table {
	t, err := Load(bytes.NewReader(builtinTable))
	if err != nil {
		panic(fmt.Sprintf("built-in network table: %v", err))
	}
	return t
}()

// Builtin returns the table compiled into the package.
func Builtin() *Table {
	return builtin
}

// Lookup returns parameters from the built-in table.
func Lookup(currency, network string) (Params, error) {
	return builtin.Lookup(currency, network)
}

// Bitcoin networks, the defaults of most callers.
var (
	Bitcoin        = mustLookup("Bitcoin", Mainnet)
	BitcoinTestnet = mustLookup("Bitcoin", Testnet)
)

func mustLookup(currency, network string) Params {
	p, err := builtin.Lookup(currency, network)
	if err != nil {
		panic(err)
	}
	return p
}
