/* Copyright 2026 Daybook Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package crypt provides cryptographically random tokens
package crypt

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

// SyncKeyLen is the length of a sync key
const SyncKeyLen = 8

const syncKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GetRandomStr generates a base64-encoded random string from the given
// number of random bytes
func GetRandomStr(numBytes int) (string, error) {
	b := make([]byte, numBytes)

	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "reading random bytes")
	}

	return base64.StdEncoding.EncodeToString(b), nil
}

// GetSyncKey generates a random sync key made of uppercase letters and
// digits. Keys are generated independent of existing keys and are not
// guaranteed to be collision-free; the unique index on the sync_keys
// table is the only guard.
func GetSyncKey() (string, error) {
	b := make([]byte, SyncKeyLen)

	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "reading random bytes")
	}

	ret := make([]byte, SyncKeyLen)
	for i, v := range b {
		ret[i] = syncKeyAlphabet[int(v)%len(syncKeyAlphabet)]
	}

	return string(ret), nil
}
