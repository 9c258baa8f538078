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

package crypt

import (
	"strings"
	"testing"

	"github.com/daybookhq/daybook/pkg/assert"
)

func TestGetSyncKey(t *testing.T) {
	for i := 0; i < 100; i++ {
		key, err := GetSyncKey()
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, len(key), SyncKeyLen, "key length mismatch")

		for _, c := range key {
			if !strings.ContainsRune(syncKeyAlphabet, c) {
				t.Errorf("key %s contains character outside the alphabet: %c", key, c)
			}
		}
	}
}

func TestGetRandomStr(t *testing.T) {
	s1, err := GetRandomStr(32)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := GetRandomStr(32)
	if err != nil {
		t.Fatal(err)
	}

	assert.NotEqual(t, s1, "", "random string should not be empty")
	assert.NotEqual(t, s1, s2, "two random strings should differ")
}
