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
	"fmt"
	"regexp"
	"strings"
)

// headingLookback bounds how far above a poll directive the classifier
// searches for the heading that contextualizes its identity.
const headingLookback = 10

var (
	// imageRE matches an image directive line:
	// ![alt](src) with an optional {width=...} attribute and an
	// optional trailing full-data annotation carrying the complete
	// payload out of band.
	imageRE = regexp.MustCompile(`^!\[([^\]]*)\]\(([^()\s]+)\)(?:\{width=([0-9]+(?:%|px)?)\})?(?:<!--(data:[^>]+)-->)?$`)

	// captionRE matches an italic-only line, which binds as a caption
	// to an image directive on the line above it.
	captionRE = regexp.MustCompile(`^\*([^*]+)\*$`)

	// listItemRE matches bulleted and numbered list items,
	// optionally indented. A space after the marker is required,
	// which keeps caption lines and dividers out.
	listItemRE = regexp.MustCompile(`^\s*(?:([-*+])|([0-9]+)\.)\s+(.*)$`)
)

// classifier is the per-document line pass. Classification is stateful:
// a caption binds to the image line above it and a fenced code run
// consumes its interior, so indices of consumed lines are recorded in
// skip and reported as skip blocks when the main pass reaches them.
type classifier struct {
	r     *Renderer
	lines []string
	skip  map[int]bool
}

func newClassifier(r *Renderer, doc string) *classifier {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	// A final newline terminates the last line;
	// it does not open an empty one.
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return &classifier{r: r, lines: lines, skip: make(map[int]bool)}
}

// classifyLine classifies lines[i] into exactly one block.
// The first matching rule wins. A panic while classifying or rendering
// one line is contained here and substituted with an error block
// carrying the line index; the rest of the document is unaffected.
func (c *classifier) classifyLine(i int) (b Block) {
	defer func() {
		if p := recover(); p != nil {
			b = Block{
				Kind: ErrorKind,
				Line: i,
				Text: fmt.Sprintf("line %d: %v", i, p),
			}
		}
	}()

	if c.skip[i] {
		return Block{Kind: skipKind, Line: i}
	}
	line := c.lines[i]
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		return Block{Kind: BlankKind, Line: i}
	}

	// A caption line is consumed by the image above it even when the
	// image was classified in an earlier call.
	if captionRE.MatchString(trimmed) && i > 0 &&
		imageRE.MatchString(strings.TrimSpace(c.lines[i-1])) {
		return Block{Kind: skipKind, Line: i}
	}

	if strings.HasPrefix(trimmed, "#") {
		return c.classifyHeading(i, trimmed)
	}

	if trimmed == "---" || trimmed == "___" {
		return Block{Kind: DividerKind, Line: i}
	}

	if question, options, ok := parsePollDirective(trimmed); ok {
		return Block{
			Kind: PollKind,
			Line: i,
			Poll: &PollData{
				ID:       derivePollID(c.nearestHeading(i), i, question),
				Question: question,
				Options:  options,
			},
		}
	}

	if strings.HasPrefix(trimmed, "```") {
		return c.classifyCodeFence(i, trimmed)
	}

	if video, ok := parseVideoDirective(trimmed); ok {
		return Block{Kind: VideoKind, Line: i, Video: video}
	}

	if audio, ok := parseAudioDirective(trimmed); ok {
		return Block{Kind: AudioKind, Line: i, Audio: audio}
	}

	if m := imageRE.FindStringSubmatch(trimmed); m != nil {
		return c.classifyImage(i, m)
	}

	if m := listItemRE.FindStringSubmatch(line); m != nil {
		return Block{
			Kind: ListItemKind,
			Line: i,
			Text: transformInline(m[3]),
			List: &ListData{Ordered: m[2] != ""},
		}
	}

	if strings.HasPrefix(trimmed, ">") {
		return Block{
			Kind: QuoteKind,
			Line: i,
			Text: transformInline(strings.TrimSpace(trimmed[1:])),
		}
	}

	return Block{Kind: ParagraphKind, Line: i, Text: transformInline(trimmed)}
}

// classifyHeading handles a #-prefixed line.
// Levels deeper than 3 clamp to 3.
func (c *classifier) classifyHeading(i int, trimmed string) Block {
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	text := strings.TrimSpace(trimmed[level:])
	if level > 3 {
		level = 3
	}
	return Block{
		Kind: HeadingKind,
		Line: i,
		Text: transformInline(text),
		Heading: &HeadingData{
			Level: level,
			ID:    truncSlug(text),
		},
	}
}

// classifyCodeFence opens a fenced code run at line i and consumes
// every following line verbatim until a closing fence. The consumed
// interior and the closing fence are marked as skip lines. A fence
// that never closes runs to the end of the document.
func (c *classifier) classifyCodeFence(i int, trimmed string) Block {
	language := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
	var body []string
	for j := i + 1; j < len(c.lines); j++ {
		c.skip[j] = true
		if strings.TrimSpace(c.lines[j]) == "```" {
			break
		}
		body = append(body, c.lines[j])
	}
	return Block{
		Kind: CodeBlockKind,
		Line: i,
		Code: &CodeData{Language: language, Body: strings.Join(body, "\n")},
	}
}

// classifyImage handles a matched image directive.
// An image whose source is itself a recognized video URL is the second
// authoring path for video embeds and classifies as one. Otherwise the
// source is resolved, a trailing full-data annotation taking precedence,
// and an italic-only next line is attached as the caption and consumed.
func (c *classifier) classifyImage(i int, m []string) Block {
	alt, src, width, fullData := m[1], m[2], m[3], m[4]

	if id := youtubeID(src); id != "" {
		return Block{
			Kind:  VideoKind,
			Line:  i,
			Video: &VideoData{Provider: "youtube", ExternalID: id},
		}
	}

	caption := ""
	if i+1 < len(c.lines) {
		if cm := captionRE.FindStringSubmatch(strings.TrimSpace(c.lines[i+1])); cm != nil {
			caption = cm[1]
			c.skip[i+1] = true
		}
	}

	resolved := fullData
	if resolved == "" {
		resolved = c.r.resolveAsset(src)
	}
	return Block{
		Kind: ImageKind,
		Line: i,
		Image: &ImageData{
			Src:     resolved,
			Alt:     alt,
			Caption: caption,
			Width:   width,
		},
	}
}

// nearestHeading returns the text of the closest heading within
// headingLookback lines above i, or "" when none is present.
func (c *classifier) nearestHeading(i int) string {
	for j := i - 1; j >= 0 && j >= i-headingLookback; j-- {
		t := strings.TrimSpace(c.lines[j])
		if strings.HasPrefix(t, "#") {
			return strings.TrimSpace(strings.TrimLeft(t, "#"))
		}
	}
	return ""
}
