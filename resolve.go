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

import "strings"

// AssetStore is a read-only mapping from short asset reference names
// to displayable payloads (URLs or inline data).
// It is populated by the authoring upload flow, outside this package.
type AssetStore interface {
	// Get returns the payload stored under key.
	Get(key string) (payload string, ok bool)
}

// FileRef describes one uploaded file in a post's manifest.
type FileRef struct {
	Name string
	ID   string
	URL  string
}

// A Post is a stored document plus its uploaded-file manifest.
// The renderer only reads posts; authoring mutates them elsewhere.
type Post struct {
	Category string
	Slug     string
	Title    string
	Content  string
	Files    []FileRef
}

// PostSource lists the known posts for the last-resort asset scan.
type PostSource interface {
	Posts() []*Post
}

// An AssetResolver resolves short asset references found in authored
// content to directly renderable sources. Authored references outlive
// storage generations, so resolution works through layered fallbacks:
//
//  1. Absolute URLs, inline data payloads, and rooted paths pass through.
//  2. The current asset store namespace.
//  3. The legacy namespace, kept for older authored content.
//  4. The upload manifest of the post being rendered, if known.
//  5. A scan of every known post's manifest.
//
// An unresolvable reference is returned unchanged; surfacing the miss
// is the presentation layer's load-error hook, not the resolver's.
type AssetResolver struct {
	Store   AssetStore // current namespace
	Legacy  AssetStore // prior-generation namespace
	Current *Post      // post being rendered, if the render is post-scoped
	Posts   PostSource // all known posts
}

// Resolve maps src to a renderable source, short-circuiting on the
// first fallback tier that produces a hit.
func (r *AssetResolver) Resolve(src string) string {
	if r == nil || src == "" || isDirectSource(src) {
		return src
	}
	if r.Store != nil {
		if payload, ok := r.Store.Get(src); ok {
			return payload
		}
	}
	if r.Legacy != nil {
		if payload, ok := r.Legacy.Get(src); ok {
			return payload
		}
	}
	if r.Current != nil {
		if url, ok := manifestMatch(r.Current, src); ok {
			return url
		}
	}
	if r.Posts != nil {
		for _, post := range r.Posts.Posts() {
			if url, ok := manifestMatch(post, src); ok {
				return url
			}
		}
	}
	return src
}

// isDirectSource reports whether src needs no resolution:
// absolute http(s) URLs, inline data payloads, and site-rooted paths.
func isDirectSource(src string) bool {
	return strings.HasPrefix(src, "http://") ||
		strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "data:") ||
		strings.HasPrefix(src, "/")
}

// manifestMatch scans a post's upload manifest for an entry whose name
// or id equals src or is contained within it. The first entry wins;
// when two posts carry a colliding short name, whichever post the
// source lists first supplies the URL.
func manifestMatch(p *Post, src string) (string, bool) {
	for _, f := range p.Files {
		if f.Name != "" && (f.Name == src || strings.Contains(src, f.Name)) {
			return f.URL, true
		}
		if f.ID != "" && (f.ID == src || strings.Contains(src, f.ID)) {
			return f.URL, true
		}
	}
	return "", false
}
