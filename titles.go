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

import "context"

// TitleLookup resolves human-readable titles for embedded media.
// Implementations are expected to be slow and fallible;
// rendering never waits on them.
type TitleLookup interface {
	VideoTitle(ctx context.Context, externalID string) (string, error)
	AudioTitle(ctx context.Context, itemType, itemID string) (string, error)
}

// FetchTitles looks up titles for the video and audio embeds in blocks
// and reports each found title to apply, keyed by the block's line
// index. Lookups run after FetchTitles returns; the primary render is
// never delayed and failed lookups are dropped, leaving the embed on
// its placeholder title. apply may be called from another goroutine.
// The returned channel closes when every lookup has finished.
func FetchTitles(ctx context.Context, lookup TitleLookup, blocks []Block, apply func(line int, title string)) <-chan struct{} {
	done := make(chan struct{})
	if lookup == nil || apply == nil {
		close(done)
		return done
	}

	var embeds []Block
	for _, b := range blocks {
		if b.Kind == VideoKind || b.Kind == AudioKind {
			embeds = append(embeds, b)
		}
	}

	go func() {
		defer close(done)
		for _, b := range embeds {
			var title string
			var err error
			switch b.Kind {
			case VideoKind:
				title, err = lookup.VideoTitle(ctx, b.Video.ExternalID)
			case AudioKind:
				title, err = lookup.AudioTitle(ctx, b.Audio.ItemType, b.Audio.ItemID)
			}
			if err == nil && title != "" {
				apply(b.Line, title)
			}
		}
	}()
	return done
}
