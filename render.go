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

// Package richmark renders authored blog markup into typed content blocks.
//
// The grammar is line-oriented and deliberately not CommonMark:
// in addition to headings, lists, quotes, images, dividers, and fenced
// code, it recognizes bracketed directives for video embeds, audio and
// playlist embeds, and polls, and it binds italic-only lines to the
// image directive above them as captions.
//
// [Renderer.Render] never fails: malformed directives fall through to
// paragraph text, a failure on one line is replaced by an inline error
// block, and a failure escaping the per-line boundary is replaced by a
// single document-level error block.
package richmark

import "fmt"

// Renderer turns authored documents into render-ready block sequences.
// The zero value renders without asset resolution.
//
// A Renderer performs no I/O beyond what its AssetResolver's stores do;
// a render completes synchronously before returning.
type Renderer struct {
	// Assets resolves image source references. Optional.
	Assets *AssetResolver
}

// Render splits doc into lines, classifies each line into a block, and
// returns the ordered, render-ready sequence. Lines consumed by a
// neighboring block (captions, fenced-code interiors) are dropped, not
// emitted as empty space.
//
// Render never panics past its boundary: per-line failures become
// inline error blocks and anything escaping that containment collapses
// the result to a single document-level error block.
func (r *Renderer) Render(doc string) (blocks []Block) {
	defer func() {
		if p := recover(); p != nil {
			blocks = []Block{{
				Kind: ErrorKind,
				Line: -1,
				Text: fmt.Sprintf("document render failed: %v", p),
			}}
		}
	}()

	c := newClassifier(r, doc)
	blocks = make([]Block, 0, len(c.lines))
	for i := range c.lines {
		b := c.classifyLine(i)
		if b.Kind == skipKind {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}

func (r *Renderer) resolveAsset(src string) string {
	if r == nil || r.Assets == nil {
		return src
	}
	return r.Assets.Resolve(src)
}

// Render renders doc with the default [Renderer].
func Render(doc string) []Block {
	return new(Renderer).Render(doc)
}
