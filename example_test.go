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

package richmark_test

import (
	"fmt"
	"os"

	"richmark.dev/go/richmark"
)

func Example() {
	// Classify document lines into typed blocks.
	blocks := richmark.Render("Hello, **World**!\n")
	// Render the blocks to HTML.
	richmark.RenderHTML(os.Stdout, blocks)
	// Output:
	// <p>Hello, <strong>World</strong>!</p>
}

func ExampleApply() {
	doc := "# Trip photos\n![tram](tram.jpg)"
	doc, err := richmark.Apply(doc, richmark.Command{
		Kind:    richmark.EditCaptionCommand,
		Line:    1,
		Caption: "Tram 28 climbing Graça",
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(doc)
	// Output:
	// # Trip photos
	// ![tram](tram.jpg)
	// *Tram 28 climbing Graça*
}
