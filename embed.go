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
	"strconv"
	"strings"
)

// Directive extraction is pure and total: a token that does not parse
// is a non-match, never an error, and the line falls through to the
// next classification rule.

const (
	videoDirectivePrefix = "[YOUTUBE:"
	audioDirectivePrefix = "[SPOTIFY:"
	pollDirectivePrefix  = "[POLL:"
)

// youtubeAnchors are the URL fragments that identify a YouTube link.
// The video id immediately follows the anchor.
var youtubeAnchors = []string{"youtu.be/", "watch?v=", "/embed/"}

// youtubeID extracts the video id from a YouTube URL.
// It returns "" when url is not a recognized YouTube link.
func youtubeID(url string) string {
	for _, anchor := range youtubeAnchors {
		_, rest, ok := strings.Cut(url, anchor)
		if !ok {
			continue
		}
		if id := trimIDTail(rest); id != "" {
			return id
		}
	}
	return ""
}

// trimIDTail cuts an extracted id at the first query,
// parameter, or fragment separator.
func trimIDTail(s string) string {
	if i := strings.IndexAny(s, "?&#"); i >= 0 {
		s = s[:i]
	}
	return s
}

// directiveBody returns the text between "[PREFIX:" and the closing
// bracket, or ok=false when line is not that directive.
func directiveBody(line, prefix string) (body string, ok bool) {
	if !strings.HasPrefix(line, prefix) || !strings.HasSuffix(line, "]") {
		return "", false
	}
	return line[len(prefix) : len(line)-1], true
}

// parseVideoDirective recognizes a [YOUTUBE:<url>] line.
func parseVideoDirective(line string) (*VideoData, bool) {
	url, ok := directiveBody(line, videoDirectivePrefix)
	if !ok {
		return nil, false
	}
	id := youtubeID(strings.TrimSpace(url))
	if id == "" {
		return nil, false
	}
	return &VideoData{Provider: "youtube", ExternalID: id}, true
}

// spotifyItemTypes lists the recognized Spotify path segments
// in match priority order. The first segment present in the URL wins.
var spotifyItemTypes = []string{"track", "album", "playlist", "artist", "episode", "show"}

// spotifyItem classifies a Spotify URL and extracts its item id.
// An unrecognized path yields empty results.
func spotifyItem(url string) (itemType, itemID string) {
	for _, t := range spotifyItemTypes {
		_, rest, ok := strings.Cut(url, "/"+t+"/")
		if !ok {
			continue
		}
		if i := strings.IndexByte(rest, '?'); i >= 0 {
			rest = rest[:i]
		}
		rest = strings.TrimSuffix(rest, "/")
		if rest == "" {
			continue
		}
		return t, rest
	}
	return "", ""
}

// parseAudioDirective recognizes a [SPOTIFY:<url>] line.
func parseAudioDirective(line string) (*AudioData, bool) {
	url, ok := directiveBody(line, audioDirectivePrefix)
	if !ok {
		return nil, false
	}
	itemType, itemID := spotifyItem(strings.TrimSpace(url))
	if itemID == "" {
		return nil, false
	}
	return &AudioData{Provider: "spotify", ItemType: itemType, ItemID: itemID}, true
}

// parsePollDirective recognizes a [POLL:<question>|<option>|...] line.
// At least one non-empty option is required;
// the question and options are trimmed of surrounding whitespace.
func parsePollDirective(line string) (question string, options []string, ok bool) {
	body, ok := directiveBody(line, pollDirectivePrefix)
	if !ok {
		return "", nil, false
	}
	parts := strings.Split(body, "|")
	if len(parts) < 2 {
		return "", nil, false
	}
	question = strings.TrimSpace(parts[0])
	for _, p := range parts[1:] {
		if opt := strings.TrimSpace(p); opt != "" {
			options = append(options, opt)
		}
	}
	if question == "" || len(options) == 0 {
		return "", nil, false
	}
	return question, options, true
}

// derivePollID builds the persistent identity of a poll directive from
// the nearest preceding heading, the directive's line index, and the
// question text. The identity keys the vote ledger, so identical
// (heading, line, question) triples must always produce identical ids
// across renders.
func derivePollID(heading string, line int, question string) string {
	return "poll-" + truncSlug(heading) + "-" + strconv.Itoa(line) + "-" + truncSlug(question)
}
