// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// operationsMarkdown documents the script grammar shared by run and repl.
const operationsMarkdown = `
# Operations
* **insert** K [K...] (ins, i, add): add keys, duplicates are ignored
* **delete** K [K...] (del, d, rm): remove keys, missing keys are ignored
* **search** K (find, s, get): look up a key and show its height and balance
* **range** LO HI: keys k with LO <= k < HI
* **count**, **len**, **height**, **min**, **max**
* **inorder** (keys): all keys in ascending order
* **check** (validate): verify order, height and balance invariants, and that keys lie strictly inside the configured bounds (bounds left at the smallest or largest int are open)
* **show** (print): draw the tree
* **clear**: drop every key

Lines are split with shell quoting rules and '#' starts a comment.
`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlkit %s**

Drive a height-balanced binary search tree from scripts, fixed scenarios,
random fills or an interactive prompt, and check its invariants as it changes.

Built with Go %s

# Commands
* **run** [script]: replay a script file (stdin when omitted)
* **scenarios**: check every rotation case and the fixed tree properties
* **fill**: insert distinct random keys and report statistics
* **repl**: interactive prompt with a live view of the tree
* **show** K...: build a tree from the given keys and draw it
* **config**: show settings from ~/.avlkit.yaml
%s
# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), operationsMarkdown)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
