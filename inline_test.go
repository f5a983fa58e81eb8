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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransformInline(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Plain",
			text: "just words",
			want: "just words",
		},
		{
			name: "Escaped",
			text: "a < b & c > d",
			want: "a &lt; b &amp; c &gt; d",
		},
		{
			name: "PipeLink",
			text: "[click|example.com/page]",
			want: `<a href="https://example.com/page" target="_blank" rel="noopener">click</a>`,
		},
		{
			name: "ParenLink",
			text: "[click](example.com/page)",
			want: `<a href="https://example.com/page" target="_blank" rel="noopener">click</a>`,
		},
		{
			name: "LinkKeepsScheme",
			text: "[home](https://example.com)",
			want: `<a href="https://example.com" target="_blank" rel="noopener">home</a>`,
		},
		{
			name: "LinkKeepsRootedPath",
			text: "[about](/about)",
			want: `<a href="/about" target="_blank" rel="noopener">about</a>`,
		},
		{
			name: "LinkInSentence",
			text: "see [the docs|docs.example.com] for more",
			want: `see <a href="https://docs.example.com" target="_blank" rel="noopener">the docs</a> for more`,
		},
		{
			name: "BoldItalic",
			text: "***loud***",
			want: "<strong><em>loud</em></strong>",
		},
		{
			name: "Bold",
			text: "some **bold** text",
			want: "some <strong>bold</strong> text",
		},
		{
			name: "Italic",
			text: "an *italic* word",
			want: "an <em>italic</em> word",
		},
		{
			name: "Underline",
			text: "_underlined_",
			want: "<u>underlined</u>",
		},
		{
			name: "MixedEmphasis",
			text: "**bold** and *italic* and _under_",
			want: "<strong>bold</strong> and <em>italic</em> and <u>under</u>",
		},
		{
			name: "SingleAsteriskSurvives",
			text: "2 * 3 = 6",
			want: "2 * 3 = 6",
		},
		{
			name: "AsteriskInLinkLabel",
			text: "[a*b|example.com]",
			want: `<a href="https://example.com" target="_blank" rel="noopener">a*b</a>`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := transformInline(test.text)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("transformInline(%q) (-want +got):\n%s", test.text, diff)
			}
		})
	}
}

func TestCompleteScheme(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com", "https://example.com"},
		{"mailto:me@example.com", "mailto:me@example.com"},
		{"/local/page", "/local/page"},
		{"#section", "#section"},
	}
	for _, test := range tests {
		if got := completeScheme(test.url); got != test.want {
			t.Errorf("completeScheme(%q) = %q; want %q", test.url, got, test.want)
		}
	}
}
