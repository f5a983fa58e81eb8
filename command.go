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
	"strings"
)

// CommandKind identifies a post-editing command.
type CommandKind uint8

const (
	EditImageCommand CommandKind = 1 + iota
	EditCaptionCommand
	SetWidthCommand
	DeleteImageCommand
)

// A Command is one editing action the presentation layer dispatches
// against an authored document. Commands address the image directive
// at a line index; they are the explicit replacement for ambient
// per-image handler functions.
type Command struct {
	Kind CommandKind
	// Line indexes the image directive the command targets.
	Line int

	// Src and Alt replace the directive's fields for EditImageCommand.
	// An empty Alt keeps the current alt text.
	Src string
	Alt string
	// Caption is the new caption for EditCaptionCommand.
	// Empty removes an existing caption line.
	Caption string
	// Width is the new {width=...} value for SetWidthCommand.
	// Empty removes the attribute.
	Width string
}

// Apply rewrites doc according to cmd and returns the updated document.
// The target line must be an image directive; otherwise, or when the
// line index is out of range, Apply returns an error and doc unchanged.
func Apply(doc string, cmd Command) (string, error) {
	lines := strings.Split(doc, "\n")
	if cmd.Line < 0 || cmd.Line >= len(lines) {
		return doc, fmt.Errorf("apply command: line %d out of range", cmd.Line)
	}
	m := imageRE.FindStringSubmatch(strings.TrimSpace(lines[cmd.Line]))
	if m == nil {
		return doc, fmt.Errorf("apply command: line %d is not an image directive", cmd.Line)
	}
	alt, src, width, fullData := m[1], m[2], m[3], m[4]

	switch cmd.Kind {
	case EditImageCommand:
		if cmd.Src != "" {
			src = cmd.Src
			fullData = "" // a new source invalidates the stale annotation
		}
		if cmd.Alt != "" {
			alt = cmd.Alt
		}
		lines[cmd.Line] = imageDirective(alt, src, width, fullData)

	case SetWidthCommand:
		lines[cmd.Line] = imageDirective(alt, src, cmd.Width, fullData)

	case EditCaptionCommand:
		hasCaption := cmd.Line+1 < len(lines) &&
			captionRE.MatchString(strings.TrimSpace(lines[cmd.Line+1]))
		switch {
		case cmd.Caption == "" && hasCaption:
			lines = append(lines[:cmd.Line+1], lines[cmd.Line+2:]...)
		case cmd.Caption == "":
			// Nothing to remove.
		case hasCaption:
			lines[cmd.Line+1] = "*" + cmd.Caption + "*"
		default:
			lines = append(lines[:cmd.Line+1],
				append([]string{"*" + cmd.Caption + "*"}, lines[cmd.Line+1:]...)...)
		}

	case DeleteImageCommand:
		end := cmd.Line + 1
		if end < len(lines) && captionRE.MatchString(strings.TrimSpace(lines[end])) {
			end++
		}
		lines = append(lines[:cmd.Line], lines[end:]...)

	default:
		return doc, fmt.Errorf("apply command: unknown kind %d", cmd.Kind)
	}
	return strings.Join(lines, "\n"), nil
}

// imageDirective reassembles an image directive line.
func imageDirective(alt, src, width, fullData string) string {
	sb := new(strings.Builder)
	sb.WriteString("![")
	sb.WriteString(alt)
	sb.WriteString("](")
	sb.WriteString(src)
	sb.WriteString(")")
	if width != "" {
		sb.WriteString("{width=")
		sb.WriteString(width)
		sb.WriteString("}")
	}
	if fullData != "" {
		sb.WriteString("<!--")
		sb.WriteString(fullData)
		sb.WriteString("-->")
	}
	return sb.String()
}
