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

package postfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"richmark.dev/go/richmark"
)

var _ richmark.PostSource = (*Store)(nil)

func writePost(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "travel/lisbon.md",
		"---\n"+
			"title: A week in Lisbon\n"+
			"files:\n"+
			"  - name: tram.jpg\n"+
			"    id: f1\n"+
			"    url: https://cdn.example.com/tram.jpg\n"+
			"---\n"+
			"# Lisbon\n\n![tram](tram.jpg)\n")
	writePost(t, root, "food/ramen.md", "# Ramen\n\nNo front matter here.\n")
	writePost(t, root, "notes.md", "loose note\n")
	writePost(t, root, "travel/raw.txt", "not a post")

	s, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(s.Posts()); got != 3 {
		t.Fatalf("len(Posts()) = %d; want 3", got)
	}

	lisbon := s.Find("travel", "lisbon")
	if lisbon == nil {
		t.Fatal(`Find("travel", "lisbon") = nil`)
	}
	want := &richmark.Post{
		Category: "travel",
		Slug:     "lisbon",
		Title:    "A week in Lisbon",
		Content:  "# Lisbon\n\n![tram](tram.jpg)\n",
		Files: []richmark.FileRef{
			{Name: "tram.jpg", ID: "f1", URL: "https://cdn.example.com/tram.jpg"},
		},
	}
	if diff := cmp.Diff(want, lisbon); diff != "" {
		t.Errorf("post (-want +got):\n%s", diff)
	}

	ramen := s.Find("food", "ramen")
	if ramen == nil {
		t.Fatal(`Find("food", "ramen") = nil`)
	}
	if ramen.Title != "" || len(ramen.Files) != 0 {
		t.Errorf("post without front matter has title %q and %d files", ramen.Title, len(ramen.Files))
	}
	if ramen.Content != "# Ramen\n\nNo front matter here.\n" {
		t.Errorf("body = %q", ramen.Content)
	}

	loose := s.Find("", "notes")
	if loose == nil {
		t.Fatal(`Find("", "notes") = nil`)
	}

	if s.Find("travel", "porto") != nil {
		t.Error("Find for a missing post returned non-nil")
	}
}

func TestLoadBadFrontMatter(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "broken.md", "---\ntitle: [unclosed\n---\nbody\n")

	if _, err := Load(root); err == nil {
		t.Error("Load with invalid front matter = nil; want error")
	}
}

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "WithFrontMatter",
			doc:       "---\ntitle: Hi\n---\nbody line\n",
			wantTitle: "Hi",
			wantBody:  "body line\n",
		},
		{
			name:     "NoFrontMatter",
			doc:      "just a body\n",
			wantBody: "just a body\n",
		},
		{
			name:     "UnterminatedFrontMatter",
			doc:      "---\ntitle: Hi\nno closing delimiter\n",
			wantBody: "---\ntitle: Hi\nno closing delimiter\n",
		},
		{
			name:     "Empty",
			doc:      "",
			wantBody: "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fm, body, err := splitFrontMatter(test.doc)
			if err != nil {
				t.Fatal(err)
			}
			title := ""
			if fm != nil {
				title = fm.Title
			}
			if title != test.wantTitle {
				t.Errorf("title = %q; want %q", title, test.wantTitle)
			}
			if body != test.wantBody {
				t.Errorf("body = %q; want %q", body, test.wantBody)
			}
		})
	}
}
