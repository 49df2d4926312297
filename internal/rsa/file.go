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
	"os"

	"github.com/getamis/rsacore/internal/rsakey"
)

// EncryptFile reads inPath, encrypts its contents under pub, and writes
// the ciphertext's textual form to outPath.
func EncryptFile(inPath, outPath string, pub rsakey.Key) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	cipher, err := Encrypt(data, pub)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(cipher), 0o644)
}

// DecryptFile reads the ciphertext's textual form from inPath, decrypts
// it under priv, and writes the recovered plaintext bytes to outPath.
func DecryptFile(inPath, outPath string, priv rsakey.Key) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	plain, err := Decrypt(string(data), priv)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, plain, 0o644)
}
