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

// Package postfile loads posts from a directory tree.
//
// Each post is a file at <root>/<category>/<slug>.md whose optional
// YAML front matter (delimited by "---" lines) carries the title and
// the uploaded-file manifest. The body below the front matter is the
// authored document.
package postfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"richmark.dev/go/richmark"
)

type frontMatter struct {
	Title string    `yaml:"title"`
	Files []fileRef `yaml:"files"`
}

type fileRef struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
	URL  string `yaml:"url"`
}

// Store is an in-memory snapshot of the posts under one directory.
// It satisfies the renderer's post-source contract.
type Store struct {
	root  string
	posts []*richmark.Post
}

// Load reads every .md file under root.
// Files directly under root belong to the "" category;
// deeper files take their first path segment as the category.
func Load(root string) (*Store, error) {
	s := &Store{root: root}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		post, err := readPost(root, path)
		if err != nil {
			return err
		}
		s.posts = append(s.posts, post)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load posts from %s: %w", root, err)
	}
	return s, nil
}

// Posts returns every loaded post.
func (s *Store) Posts() []*richmark.Post {
	return s.posts
}

// Find returns the post stored under (category, slug), or nil.
func (s *Store) Find(category, slug string) *richmark.Post {
	for _, p := range s.posts {
		if p.Category == category && p.Slug == slug {
			return p
		}
	}
	return nil
}

func readPost(root, path string) (*richmark.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return nil, err
	}
	category := ""
	if dir := filepath.Dir(rel); dir != "." {
		category, _, _ = strings.Cut(filepath.ToSlash(dir), "/")
	}

	post := &richmark.Post{
		Category: category,
		Slug:     strings.TrimSuffix(filepath.Base(path), ".md"),
	}

	fm, body, err := splitFrontMatter(string(data))
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", rel, err)
	}
	post.Content = body
	if fm != nil {
		post.Title = fm.Title
		for _, f := range fm.Files {
			post.Files = append(post.Files, richmark.FileRef{Name: f.Name, ID: f.ID, URL: f.URL})
		}
	}
	return post, nil
}

// splitFrontMatter separates an optional leading YAML front matter
// section from the document body. A document without an opening "---"
// line is all body.
func splitFrontMatter(doc string) (*frontMatter, string, error) {
	const delim = "---"
	lines := strings.SplitN(doc, "\n", 2)
	if strings.TrimSpace(lines[0]) != delim || len(lines) < 2 {
		return nil, doc, nil
	}
	rest := lines[1]
	head, body, found := strings.Cut(rest, "\n"+delim)
	if !found {
		return nil, doc, nil
	}
	fm := new(frontMatter)
	if err := yaml.Unmarshal([]byte(head), fm); err != nil {
		return nil, "", fmt.Errorf("parse front matter: %w", err)
	}
	body = strings.TrimPrefix(body, "\n")
	return fm, body, nil
}
