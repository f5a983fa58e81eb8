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
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"richmark.dev/go/richmark/poll"
)

// PollStateReader supplies recorded vote state for rendering polls.
// *poll.Store satisfies it.
type PollStateReader interface {
	State(pollID string, options []string, voterID string) (*poll.State, error)
}

// An HTMLRenderer converts classified blocks into HTML.
//
// Block text fields already carry inline markup produced by the
// renderer's own escape-then-substitute pass; everything else written
// here (attributes, poll questions and options, code bodies) is
// escaped on the way out.
type HTMLRenderer struct {
	// Polls supplies vote state for poll blocks. When nil, or when a
	// read fails, polls render in their not-yet-voted form.
	Polls PollStateReader
	// VoterID identifies the viewing voter for poll state reads.
	VoterID string
	// SecretPolls withholds counts and percentages after voting and
	// shows an acknowledgement instead. The ledger records votes
	// identically either way.
	SecretPolls bool
	// Placeholder is an image source the presentation layer swaps in
	// when an asset fails to load. Emitted as a data attribute.
	Placeholder string
	// HighlightStyle is the chroma style for code blocks.
	// Empty selects "github".
	HighlightStyle string
	// Titles maps block line indexes to embed titles fetched out of
	// band (see FetchTitles). Missing entries use a generic title.
	Titles map[int]string
}

// RenderHTML writes blocks to w as HTML
// using the default options for [HTMLRenderer].
func RenderHTML(w io.Writer, blocks []Block) error {
	return new(HTMLRenderer).Render(w, blocks)
}

// Render writes the given block sequence to w as HTML,
// one top-level element per line.
// Consecutive list items of the same order collapse into one list.
// It returns the first write error encountered, if any.
func (r *HTMLRenderer) Render(w io.Writer, blocks []Block) error {
	var buf []byte
	for i := 0; i < len(blocks); {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, '\n')
		}
		if blocks[i].Kind == ListItemKind {
			var n int
			buf, n = r.appendList(buf, blocks[i:])
			i += n
		} else {
			buf = r.appendBlock(buf, blocks[i])
			i++
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("render blocks to html: %w", err)
		}
	}
	return nil
}

func (r *HTMLRenderer) appendBlock(dst []byte, b Block) []byte {
	switch b.Kind {
	case ParagraphKind:
		dst = append(dst, "<p>"...)
		dst = append(dst, b.Text...)
		dst = append(dst, "</p>"...)
	case BlankKind:
		dst = append(dst, "<br>"...)
	case DividerKind:
		dst = append(dst, "<hr>"...)
	case HeadingKind:
		dst = append(dst, "<h"...)
		dst = strconv.AppendInt(dst, int64(b.Heading.Level), 10)
		if b.Heading.ID != "" {
			dst = append(dst, ` id="`...)
			dst = append(dst, html.EscapeString(b.Heading.ID)...)
			dst = append(dst, `"`...)
		}
		dst = append(dst, ">"...)
		dst = append(dst, b.Text...)
		dst = append(dst, "</h"...)
		dst = strconv.AppendInt(dst, int64(b.Heading.Level), 10)
		dst = append(dst, ">"...)
	case QuoteKind:
		dst = append(dst, "<blockquote><p>"...)
		dst = append(dst, b.Text...)
		dst = append(dst, "</p></blockquote>"...)
	case CodeBlockKind:
		dst = r.appendCodeBlock(dst, b)
	case ImageKind:
		dst = r.appendImage(dst, b)
	case VideoKind:
		dst = r.appendVideo(dst, b)
	case AudioKind:
		dst = r.appendAudio(dst, b)
	case PollKind:
		dst = r.appendPoll(dst, b)
	case ErrorKind:
		dst = append(dst, `<div class="render-error" data-line="`...)
		dst = strconv.AppendInt(dst, int64(b.Line), 10)
		dst = append(dst, `">`...)
		dst = append(dst, html.EscapeString(b.Text)...)
		dst = append(dst, "</div>"...)
	}
	return dst
}

// appendList renders the run of list items at the head of blocks,
// splitting whenever the ordering flips,
// and reports how many blocks it consumed.
func (r *HTMLRenderer) appendList(dst []byte, blocks []Block) ([]byte, int) {
	n := 0
	for n < len(blocks) && blocks[n].Kind == ListItemKind &&
		blocks[n].List.Ordered == blocks[0].List.Ordered {
		n++
	}
	openTag, closeTag := "<ul>", "</ul>"
	if blocks[0].List.Ordered {
		openTag, closeTag = "<ol>", "</ol>"
	}
	dst = append(dst, openTag...)
	for _, b := range blocks[:n] {
		dst = append(dst, "<li>"...)
		dst = append(dst, b.Text...)
		dst = append(dst, "</li>"...)
	}
	dst = append(dst, closeTag...)
	return dst, n
}

func (r *HTMLRenderer) appendCodeBlock(dst []byte, b Block) []byte {
	if highlighted, ok := r.highlight(b.Code); ok {
		return append(dst, highlighted...)
	}
	dst = append(dst, "<pre><code"...)
	if b.Code.Language != "" {
		dst = append(dst, ` class="language-`...)
		dst = append(dst, html.EscapeString(b.Code.Language)...)
		dst = append(dst, `"`...)
	}
	dst = append(dst, ">"...)
	dst = append(dst, html.EscapeString(b.Code.Body)...)
	dst = append(dst, "</code></pre>"...)
	return dst
}

// highlight runs a code body through chroma.
// Unknown languages and tokenizer failures fall back
// to the plain escaped form.
func (r *HTMLRenderer) highlight(code *CodeData) (string, bool) {
	if code.Language == "" {
		return "", false
	}
	lexer := lexers.Get(code.Language)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	styleName := r.HighlightStyle
	if styleName == "" {
		styleName = "github"
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code.Body)
	if err != nil {
		return "", false
	}
	sb := new(strings.Builder)
	if err := chromahtml.New().Format(sb, style, iterator); err != nil {
		return "", false
	}
	return sb.String(), true
}

func (r *HTMLRenderer) appendImage(dst []byte, b Block) []byte {
	dst = append(dst, `<figure><img src="`...)
	dst = append(dst, html.EscapeString(b.Image.Src)...)
	dst = append(dst, `" alt="`...)
	dst = append(dst, html.EscapeString(b.Image.Alt)...)
	dst = append(dst, `"`...)
	if b.Image.Width != "" {
		dst = append(dst, ` width="`...)
		dst = append(dst, html.EscapeString(strings.TrimSuffix(b.Image.Width, "px"))...)
		dst = append(dst, `"`...)
	}
	if r.Placeholder != "" {
		dst = append(dst, ` data-fallback="`...)
		dst = append(dst, html.EscapeString(r.Placeholder)...)
		dst = append(dst, `"`...)
	}
	dst = append(dst, ">"...)
	if b.Image.Caption != "" {
		dst = append(dst, "<figcaption>"...)
		dst = append(dst, html.EscapeString(b.Image.Caption)...)
		dst = append(dst, "</figcaption>"...)
	}
	dst = append(dst, "</figure>"...)
	return dst
}

func (r *HTMLRenderer) appendVideo(dst []byte, b Block) []byte {
	title := r.Titles[b.Line]
	if title == "" {
		title = "YouTube video"
	}
	dst = append(dst, `<iframe class="video-embed" src="https://www.youtube.com/embed/`...)
	dst = append(dst, html.EscapeString(b.Video.ExternalID)...)
	dst = append(dst, `" title="`...)
	dst = append(dst, html.EscapeString(title)...)
	dst = append(dst, `" loading="lazy" allowfullscreen></iframe>`...)
	return dst
}

func (r *HTMLRenderer) appendAudio(dst []byte, b Block) []byte {
	title := r.Titles[b.Line]
	if title == "" {
		title = "Spotify " + b.Audio.ItemType
	}
	dst = append(dst, `<iframe class="audio-embed" src="https://open.spotify.com/embed/`...)
	dst = append(dst, html.EscapeString(b.Audio.ItemType)...)
	dst = append(dst, '/')
	dst = append(dst, html.EscapeString(b.Audio.ItemID)...)
	dst = append(dst, `" title="`...)
	dst = append(dst, html.EscapeString(title)...)
	dst = append(dst, `" loading="lazy" allow="encrypted-media"></iframe>`...)
	return dst
}

func (r *HTMLRenderer) appendPoll(dst []byte, b Block) []byte {
	var state *poll.State
	if r.Polls != nil {
		// A failed read renders the poll as not yet voted;
		// the ledger stays authoritative for the next render.
		state, _ = r.Polls.State(b.Poll.ID, b.Poll.Options, r.VoterID)
	}

	dst = append(dst, `<form class="poll" data-poll-id="`...)
	dst = append(dst, html.EscapeString(b.Poll.ID)...)
	dst = append(dst, `"><p class="poll-question">`...)
	dst = append(dst, html.EscapeString(b.Poll.Question)...)
	dst = append(dst, "</p>"...)

	switch {
	case state == nil || state.VoterChoice == "":
		for _, opt := range b.Poll.Options {
			dst = append(dst, `<button type="submit" name="option" value="`...)
			dst = append(dst, html.EscapeString(opt)...)
			dst = append(dst, `">`...)
			dst = append(dst, html.EscapeString(opt)...)
			dst = append(dst, "</button>"...)
		}
	case r.SecretPolls:
		dst = append(dst, `<p class="poll-thanks">Thanks for voting!</p>`...)
	default:
		total := state.Total()
		for _, opt := range b.Poll.Options {
			count := state.Counts[opt]
			percent := 0
			if total > 0 {
				percent = count * 100 / total
			}
			dst = append(dst, `<div class="poll-result`...)
			if opt == state.VoterChoice {
				dst = append(dst, " poll-chosen"...)
			}
			dst = append(dst, `"><span class="poll-option">`...)
			dst = append(dst, html.EscapeString(opt)...)
			dst = append(dst, `</span><span class="poll-count">`...)
			dst = strconv.AppendInt(dst, int64(count), 10)
			dst = append(dst, " ("...)
			dst = strconv.AppendInt(dst, int64(percent), 10)
			dst = append(dst, "%)</span></div>"...)
		}
	}
	dst = append(dst, "</form>"...)
	return dst
}
