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
	"html"
	"regexp"
	"strings"
)

// Inline patterns, in application order.
// Links run before the emphasis passes so that asterisks and underscores
// inside link labels and URLs are consumed as link text, not as delimiters.
// The emphasis passes do re-scan substituted anchor markup;
// incidental emphasis inside link text is accepted authored behavior
// and the ordering must not be changed.
var (
	pipeLinkRE   = regexp.MustCompile(`\[([^\[\]|]+)\|([^\[\]|]+)\]`)
	parenLinkRE  = regexp.MustCompile(`\[([^\[\]]+)\]\(([^()\s]+)\)`)
	boldItalicRE = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	boldRE       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRE     = regexp.MustCompile(`\*([^*]+)\*`)
	underlineRE  = regexp.MustCompile(`_([^_]+)_`)
)

// transformInline converts one line of authored text
// into inline HTML suitable for a text-bearing container.
// The input is escaped first; the markup substitutions below
// are the only sources of tags in the result.
func transformInline(text string) string {
	s := html.EscapeString(text)
	s = pipeLinkRE.ReplaceAllStringFunc(s, func(m string) string {
		sub := pipeLinkRE.FindStringSubmatch(m)
		return anchor(sub[2], sub[1])
	})
	s = parenLinkRE.ReplaceAllStringFunc(s, func(m string) string {
		sub := parenLinkRE.FindStringSubmatch(m)
		return anchor(sub[2], sub[1])
	})
	s = boldItalicRE.ReplaceAllString(s, "<strong><em>$1</em></strong>")
	s = boldRE.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRE.ReplaceAllString(s, "<em>$1</em>")
	s = underlineRE.ReplaceAllString(s, "<u>$1</u>")
	return s
}

func anchor(url, label string) string {
	return `<a href="` + completeScheme(strings.TrimSpace(url)) +
		`" target="_blank" rel="noopener">` + strings.TrimSpace(label) + `</a>`
}

// completeScheme prefixes https:// when url carries no scheme.
// Site-rooted paths and fragments pass through unchanged.
func completeScheme(url string) string {
	switch {
	case strings.HasPrefix(url, "http://"),
		strings.HasPrefix(url, "https://"),
		strings.HasPrefix(url, "mailto:"),
		strings.HasPrefix(url, "/"),
		strings.HasPrefix(url, "#"):
		return url
	}
	return "https://" + url
}
