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

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://youtu.be/abc123", "abc123"},
		{"https://youtu.be/abc123?t=5", "abc123"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL1", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/xyz789?start=30", "xyz789"},
		{"https://youtu.be/abc123#t=10", "abc123"},
		{"https://example.com/watch", ""},
		{"https://youtu.be/", ""},
		{"not a url", ""},
	}
	for _, test := range tests {
		if got := youtubeID(test.url); got != test.want {
			t.Errorf("youtubeID(%q) = %q; want %q", test.url, got, test.want)
		}
	}
}

func TestParseVideoDirective(t *testing.T) {
	tests := []struct {
		line string
		want *VideoData
	}{
		{
			line: "[YOUTUBE:https://youtu.be/abc123?t=5]",
			want: &VideoData{Provider: "youtube", ExternalID: "abc123"},
		},
		{
			line: "[YOUTUBE:https://www.youtube.com/watch?v=dQw4w9WgXcQ]",
			want: &VideoData{Provider: "youtube", ExternalID: "dQw4w9WgXcQ"},
		},
		{line: "[YOUTUBE:https://example.com/clip]", want: nil},
		{line: "[YOUTUBE:]", want: nil},
		{line: "plain text", want: nil},
	}
	for _, test := range tests {
		got, ok := parseVideoDirective(test.line)
		if (test.want != nil) != ok {
			t.Errorf("parseVideoDirective(%q) ok = %t; want %t", test.line, ok, test.want != nil)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("parseVideoDirective(%q) (-want +got):\n%s", test.line, diff)
		}
	}
}

func TestSpotifyItem(t *testing.T) {
	tests := []struct {
		url      string
		wantType string
		wantID   string
	}{
		{"https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC", "track", "4uLU6hMCjMI75M1A2tKUQC"},
		{"https://open.spotify.com/album/xyz789?si=1", "album", "xyz789"},
		{"https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M", "playlist", "37i9dQZF1DXcBWIGoYBM5M"},
		{"https://open.spotify.com/artist/0OdUWJ0sBjDrqHygGUXeCF", "artist", "0OdUWJ0sBjDrqHygGUXeCF"},
		{"https://open.spotify.com/episode/ep1", "episode", "ep1"},
		{"https://open.spotify.com/show/sh1", "show", "sh1"},
		{"https://open.spotify.com/user/someone", "", ""},
		{"https://example.com/track/123", "track", "123"},
	}
	for _, test := range tests {
		gotType, gotID := spotifyItem(test.url)
		if gotType != test.wantType || gotID != test.wantID {
			t.Errorf("spotifyItem(%q) = (%q, %q); want (%q, %q)",
				test.url, gotType, gotID, test.wantType, test.wantID)
		}
	}
}

func TestParsePollDirective(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantQ       string
		wantOptions []string
		wantOK      bool
	}{
		{
			name:        "TwoOptions",
			line:        "[POLL:Pick one|A|B]",
			wantQ:       "Pick one",
			wantOptions: []string{"A", "B"},
			wantOK:      true,
		},
		{
			name:        "TrimsWhitespace",
			line:        "[POLL: Favorite season? | Spring | Autumn ]",
			wantQ:       "Favorite season?",
			wantOptions: []string{"Spring", "Autumn"},
			wantOK:      true,
		},
		{
			name:        "SingleOption",
			line:        "[POLL:Agree?|Yes]",
			wantQ:       "Agree?",
			wantOptions: []string{"Yes"},
			wantOK:      true,
		},
		{
			name:   "NoOptions",
			line:   "[POLL:Question only, no options]",
			wantOK: false,
		},
		{
			name:   "EmptyOptions",
			line:   "[POLL:Q| | ]",
			wantOK: false,
		},
		{
			name:   "NotADirective",
			line:   "POLL: what?",
			wantOK: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q, options, ok := parsePollDirective(test.line)
			if ok != test.wantOK {
				t.Fatalf("parsePollDirective(%q) ok = %t; want %t", test.line, ok, test.wantOK)
			}
			if q != test.wantQ {
				t.Errorf("question = %q; want %q", q, test.wantQ)
			}
			if diff := cmp.Diff(test.wantOptions, options); diff != "" {
				t.Errorf("options (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDerivePollID(t *testing.T) {
	id := derivePollID("Intro", 4, "Pick one")
	if want := "poll-intro-4-pickone"; id != want {
		t.Errorf("derivePollID = %q; want %q", id, want)
	}

	// Identity is the ledger key; repeated derivation must not drift.
	for i := 0; i < 3; i++ {
		if got := derivePollID("Intro", 4, "Pick one"); got != id {
			t.Fatalf("derivePollID drifted: %q then %q", id, got)
		}
	}

	if a, b := derivePollID("Intro", 4, "Pick one"), derivePollID("Intro", 5, "Pick one"); a == b {
		t.Errorf("polls on different lines share identity %q", a)
	}
	if a, b := derivePollID("Intro", 4, "Pick one"), derivePollID("Outro", 4, "Pick one"); a == b {
		t.Errorf("polls under different headings share identity %q", a)
	}
}
