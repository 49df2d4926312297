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

// Package prng holds the process-wide pseudo-random generator. The CLI
// seeds it once at startup; everything downstream (prime candidates,
// Miller-Rabin witnesses) draws from the same source, mirroring the
// source's single std::srand(time(NULL)) call.
package prng

import "math/rand"

var shared *rand.Rand

// Seed (re-)initializes the shared generator.
func Seed(seed int64) {
	shared = rand.New(rand.NewSource(seed))
}

// Rand returns the shared generator, seeding it from the current time
// on first use if the CLI never called Seed explicitly.
func Rand() *rand.Rand {
	if shared == nil {
		Seed(defaultSeed())
	}
	return shared
}
