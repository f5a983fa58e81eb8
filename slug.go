// Copyright 2026 The Richmark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package richmark

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugTruncateLen bounds the number of leading bytes of a string
// that contribute to a derived identifier.
// Identifiers key persisted state, so this value must not change
// once documents exist.
const slugTruncateLen = 20

// deaccent decomposes characters and strips combining marks,
// so that "café" and "cafe" slug identically.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugify derives a lowercase alphanumeric identifier from s.
// Every character that is not an ASCII letter or digit after
// accent folding is dropped.
func slugify(s string) string {
	if folded, _, err := transform.String(deaccent, s); err == nil {
		s = folded
	}
	sb := new(strings.Builder)
	sb.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if 'a' <= r && r <= 'z' || '0' <= r && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// truncSlug slugifies at most the first slugTruncateLen bytes of s.
func truncSlug(s string) string {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > slugTruncateLen {
		trimmed = trimmed[:slugTruncateLen]
	}
	return slugify(trimmed)
}
