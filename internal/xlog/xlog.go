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

// Package xlog is the structured logging entry point shared by the CLI
// subcommands.
package xlog

import "github.com/getamis/sirius/log"

var logger = log.Discard()

// Logger returns the current package-level logger.
func Logger() log.Logger {
	return logger
}

// SetLogger replaces the package-level logger, e.g. to attach a real
// sink at process startup.
func SetLogger(l log.Logger) {
	logger = l
}
