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

// Package normhtml normalizes HTML for test comparison,
// ignoring insignificant output differences:
// attribute order, inter-element whitespace outside <pre>,
// and escaping variants.
package normhtml

import (
	"bytes"
	"regexp"
	"sort"
	"unicode"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// NormalizeHTML strips insignificant differences from an HTML fragment.
// Attributes are sorted by key, runs of whitespace outside <pre>
// collapse to one space, and whitespace between block-level elements
// is dropped.
func NormalizeHTML(b []byte) []byte {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var output []byte
	last := html.StartTagToken
	var lastTag string
	inPre := false
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output
		case html.TextToken:
			data := tok.Text()
			if !inPre {
				data = whitespaceRE.ReplaceAll(data, []byte(" "))
				if isBlockTag(lastTag) {
					switch last {
					case html.StartTagToken:
						data = bytes.TrimLeftFunc(data, unicode.IsSpace)
					case html.EndTagToken:
						data = bytes.TrimSpace(data)
					}
				}
			}
			output = append(output, htmlEscaper.Replace(bytes.Clone(data))...)
		case html.EndTagToken:
			tagBytes, _ := tok.TagName()
			tag := string(tagBytes)
			if tag == "pre" {
				inPre = false
			} else if isBlockTag(tag) {
				output = bytes.TrimRightFunc(output, unicode.IsSpace)
			}
			output = append(output, "</"...)
			output = append(output, tag...)
			output = append(output, ">"...)
			lastTag = tag
		case html.StartTagToken, html.SelfClosingTagToken:
			tagBytes, hasAttr := tok.TagName()
			tag := string(tagBytes)
			if tag == "pre" {
				inPre = true
			}
			if isBlockTag(tag) {
				output = bytes.TrimRightFunc(output, unicode.IsSpace)
			}
			output = append(output, "<"...)
			output = append(output, tag...)
			if hasAttr {
				output = appendSortedAttrs(output, tok)
			}
			output = append(output, ">"...)
			lastTag = tag
		case html.CommentToken:
			output = append(output, tok.Raw()...)
		}

		last = tt
		if tt == html.SelfClosingTagToken {
			last = html.EndTagToken
		}
	}
}

func appendSortedAttrs(output []byte, tok *html.Tokenizer) []byte {
	type htmlAttribute struct {
		key   string
		value string
	}
	var attrs []htmlAttribute
	for {
		k, v, more := tok.TagAttr()
		attrs = append(attrs, htmlAttribute{string(k), string(v)})
		if !more {
			break
		}
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].key < attrs[j].key
	})
	for _, attr := range attrs {
		output = append(output, " "...)
		output = append(output, attr.key...)
		if attr.value != "" {
			output = append(output, `="`...)
			output = append(output, html.EscapeString(attr.value)...)
			output = append(output, `"`...)
		}
	}
	return output
}

// blockTags covers the elements the block renderer emits plus the
// common structural tags, so expected HTML in tests can be laid out
// with extra whitespace.
var blockTags = map[string]struct{}{
	atom.Blockquote.String(): {},
	atom.Button.String():     {},
	atom.Div.String():        {},
	atom.Figcaption.String(): {},
	atom.Figure.String():     {},
	atom.Form.String():       {},
	atom.H1.String():         {},
	atom.H2.String():         {},
	atom.H3.String():         {},
	atom.Hr.String():         {},
	atom.Iframe.String():     {},
	atom.Li.String():         {},
	atom.Ol.String():         {},
	atom.P.String():          {},
	atom.Pre.String():        {},
	atom.Ul.String():         {},
}

func isBlockTag(tag string) bool {
	_, ok := blockTags[tag]
	return ok
}
