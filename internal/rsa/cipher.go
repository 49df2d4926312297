// Copyright © 2026 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rsa

import (
	"errors"
	"strings"

	"github.com/getamis/rsacore/internal/bigint"
	"github.com/getamis/rsacore/internal/rsakey"
)

var (
	// ErrKeyTooSmall is returned when the modulus cannot safely hold
	// even a single plaintext byte (n <= 256).
	ErrKeyTooSmall = errors.New("rsa: modulus too small to hold a block")
	// ErrCorruptBlock is returned by Decrypt when a recovered block's
	// length marker is out of range, which can only happen when the
	// cipher was produced under a different key.
	ErrCorruptBlock = errors.New("rsa: corrupt plaintext block")
)

var base256 = bigint.FromInt(256)

// blockWidth returns the largest w such that 256^w < n, i.e. the widest
// big-endian byte block that is guaranteed to parse below n.
func blockWidth(n *bigint.Int) int {
	pow := bigint.One()
	w := 0
	for {
		next := bigint.Mul(pow, base256)
		if !bigint.Less(next, n) {
			return w
		}
		pow = next
		w++
	}
}

// Encrypt chunks message into fixed-width blocks and RSA-encrypts each
// under pub, rendering the ciphertext as space-separated decimal
// BigInt tokens in block order.
//
// When the modulus is wide enough for at least a two-byte block (w>=2),
// each block reserves its first byte as a length marker (1..w-1) naming
// how many of the remaining w-1 bytes are real payload; this resolves
// how a short final block is told apart from zero padding. When the
// modulus only clears a single byte (w==1, e.g. n=3233 from the
// reference scenario), every block is exactly one raw payload byte —
// there is no short final block to disambiguate, since each block
// always carries exactly one byte.
func Encrypt(message []byte, pub rsakey.Key) (string, error) {
	if len(message) == 0 {
		return "", nil
	}
	w := blockWidth(pub.N)
	if w < 1 {
		return "", ErrKeyTooSmall
	}
	payloadWidth := w - 1
	if w == 1 {
		payloadWidth = 1
	}

	var tokens []string
	for offset := 0; offset < len(message); offset += payloadWidth {
		end := offset + payloadWidth
		if end > len(message) {
			end = len(message)
		}
		chunk := message[offset:end]

		var block []byte
		if w == 1 {
			block = chunk
		} else {
			block = make([]byte, w)
			block[0] = byte(len(chunk))
			copy(block[1:], chunk)
		}

		m := bigint.FromBytesBE(block)
		c, err := bigint.ModPow(m, pub.X, pub.N)
		if err != nil {
			return "", err
		}
		tokens = append(tokens, c.String())
	}
	return strings.Join(tokens, " "), nil
}

// Decrypt splits cipher on whitespace, RSA-decrypts each token under
// priv, and concatenates the recovered payload bytes in block order. A
// trailing space in cipher is tolerated.
func Decrypt(cipher string, priv rsakey.Key) ([]byte, error) {
	tokens := strings.Fields(cipher)
	if len(tokens) == 0 {
		return nil, nil
	}
	w := blockWidth(priv.N)
	if w < 1 {
		return nil, ErrKeyTooSmall
	}

	var out []byte
	for _, tok := range tokens {
		c, err := bigint.Parse(tok)
		if err != nil {
			return nil, err
		}
		m, err := bigint.ModPow(c, priv.X, priv.N)
		if err != nil {
			return nil, err
		}
		block, err := bigint.ToBytes(m, w)
		if err != nil {
			return nil, err
		}
		if w == 1 {
			out = append(out, block[0])
			continue
		}
		n := int(block[0])
		if n < 1 || n > w-1 {
			return nil, ErrCorruptBlock
		}
		out = append(out, block[1:1+n]...)
	}
	return out, nil
}
