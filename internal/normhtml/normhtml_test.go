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

package normhtml

import "testing"

func TestNormalizeHTML(t *testing.T) {
	tests := []struct {
		b    string
		want string
	}{
		{"<p>a  \t b</p>", "<p>a b</p>"},
		{"<p>a  \t\nb</p>", "<p>a b</p>"},
		{"<p>a  b</p>", "<p>a b</p>"},
		{" <p>a  b</p>", "<p>a b</p>"},
		{"<p>a  b</p> ", "<p>a b</p>"},
		{"\n\t<p>\n\t\ta  b\t\t</p>\n\t", "<p>a b</p>"},
		{"<i>a  b</i> ", "<i>a b</i> "},
		{"<br />", "<br>"},
		{`<a title="bar" HREF="foo">x</a>`, `<a href="foo" title="bar">x</a>`},
		{"&forall;&amp;&gt;&lt;&quot;", "∀&amp;&gt;&lt;&quot;"},
		{
			"<figure>\n\t<img src=\"a\" alt=\"b\">\n\t<figcaption>cap</figcaption>\n</figure>",
			`<figure><img alt="b" src="a"><figcaption>cap</figcaption></figure>`,
		},
		{
			"<form>\n\t<button value=\"A\">A</button>\n</form>",
			`<form><button value="A">A</button></form>`,
		},
		{
			`<iframe loading="lazy" allowfullscreen></iframe>`,
			`<iframe allowfullscreen loading="lazy"></iframe>`,
		},
		// Whitespace inside <pre> is significant.
		{"<pre>a\n  b\t</pre>", "<pre>a\n  b\t</pre>"},
		{"<ul>\n\t<li>a</li>\n\t<li>b</li>\n</ul>", "<ul><li>a</li><li>b</li></ul>"},
	}
	for _, test := range tests {
		if got := NormalizeHTML([]byte(test.b)); string(got) != test.want {
			t.Errorf("NormalizeHTML(%q) = %q; want %q", test.b, got, test.want)
		}
	}
}
