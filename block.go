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

import "fmt"

// BlockKind identifies the variant of a [Block].
type BlockKind uint16

const (
	ParagraphKind BlockKind = 1 + iota
	BlankKind
	HeadingKind
	DividerKind
	ListItemKind
	QuoteKind
	CodeBlockKind
	ImageKind
	VideoKind
	AudioKind
	PollKind
	ErrorKind

	// skipKind marks a line that was consumed by a neighboring block
	// (an image caption or the interior of a fenced code run).
	// Blocks of this kind are dropped before rendering output
	// and never appear in the sequence returned by [Renderer.Render].
	skipKind
)

func (k BlockKind) String() string {
	switch k {
	case ParagraphKind:
		return "Paragraph"
	case BlankKind:
		return "Blank"
	case HeadingKind:
		return "Heading"
	case DividerKind:
		return "Divider"
	case ListItemKind:
		return "ListItem"
	case QuoteKind:
		return "Quote"
	case CodeBlockKind:
		return "CodeBlock"
	case ImageKind:
		return "Image"
	case VideoKind:
		return "Video"
	case AudioKind:
		return "Audio"
	case PollKind:
		return "Poll"
	case ErrorKind:
		return "Error"
	case skipKind:
		return "skip"
	default:
		return fmt.Sprintf("BlockKind(%d)", uint16(k))
	}
}

// A Block is one render-ready unit of a classified document.
// Kind selects the variant;
// only the pointer field matching the variant (if any) is non-nil.
type Block struct {
	Kind BlockKind
	// Line is the index of the block's first line in the source document.
	// It is stable across renders of the same document
	// and keys out-of-band data such as fetched embed titles.
	// Document-level error blocks use -1.
	Line int

	// Text holds the inline-transformed HTML
	// for Paragraph, Heading, ListItem, and Quote blocks,
	// and the message for Error blocks.
	Text string

	Heading *HeadingData
	List    *ListData
	Code    *CodeData
	Image   *ImageData
	Video   *VideoData
	Audio   *AudioData
	Poll    *PollData
}

// HeadingData carries the heading-specific fields of a Block.
type HeadingData struct {
	// Level is 1 through 3. Deeper source headings clamp to 3.
	Level int
	// ID is a slug derived from the leading characters of the heading text,
	// usable as an anchor and as context for poll identities.
	ID string
}

// ListData carries the list-item-specific fields of a Block.
// Each source line is its own item;
// grouping consecutive items into one list is an output concern.
type ListData struct {
	Ordered bool
}

// CodeData carries the fenced-code fields of a Block.
type CodeData struct {
	// Language is the text following the opening fence, possibly empty.
	Language string
	// Body is the verbatim interior of the fence, without a trailing newline.
	Body string
}

// ImageData carries the image fields of a Block.
type ImageData struct {
	// Src is the resolved, directly renderable source.
	Src string
	Alt string
	// Caption is the text of an italic-only line
	// immediately following the image line, or empty.
	Caption string
	// Width is the raw value of a {width=...} attribute, or empty.
	Width string
}

// VideoData carries the video-embed fields of a Block.
type VideoData struct {
	Provider   string // currently always "youtube"
	ExternalID string
}

// AudioData carries the audio- or playlist-embed fields of a Block.
type AudioData struct {
	Provider string // currently always "spotify"
	// ItemType is one of track, album, playlist, artist, episode, show.
	ItemType string
	ItemID   string
}

// PollData carries the poll fields of a Block.
type PollData struct {
	// ID is the deterministic poll identity (see derivePollID).
	// It is the primary key of the persisted vote ledger
	// and must not drift between renders of the same document.
	ID       string
	Question string
	Options  []string
}
