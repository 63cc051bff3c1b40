// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bip38 implements BIP0038 passphrase-protected private keys for
secp256k1 based currencies.

Two ways of protecting a key are provided:

  - Non-EC-multiplied keys ("6P" strings with prefix 0x0142) encrypt an
    existing WIF private key directly.  Encrypt and Decrypt are inverses.
  - EC-multiplied keys ("6P" strings with prefix 0x0143) let the owner of a
    passphrase hand an intermediate code to a third party, which can then
    generate fresh encrypted keys together with a confirmation code without
    ever learning the private keys.  Only the passphrase holder can decrypt
    them.

The EC-multiplied flow is split over three parties:

	owner:     code := e.IntermediateCode(passphrase, WithLotSequence(lot, seq))
	generator: k := e.CreateNewEncryptedWIF(code, true, nil)
	owner:     e.ConfirmCode(passphrase, k.ConfirmationCode)
	owner:     e.Decrypt(k.EncryptedWIF, passphrase)

An Engine is bound to one network, see the network package for the built-in
table of currencies.  The network decides the WIF and address version bytes
as well as the Base58 alphabet; the encrypted keys, intermediate codes and
confirmation codes themselves always use the Bitcoin alphabet.

Passphrases are normalized to Unicode NFC before being stretched with scrypt.

Errors returned by this package are of type Error and can be matched with
errors.Is against the ErrorKind constants, and against the error kinds of the
curve, wif, address and base58check packages when they are the cause.  A
wrong passphrase always yields ErrIncorrectPassphrase.
*/
package bip38
