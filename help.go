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

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Artist Finder %s**

Load artist catalogs into a self-balancing AVL tree and query them by ID, playcount or style.

Built with Go %s

# 1. Features
* Loads comma separated artist files (id,name,gender,country,styles,playcount)
* AVL or plain binary search tree index, switchable with --mode
* Interactive menu, terminal dashboard and one-shot queries
* Walkthrough of the tree operations on a small integer data set

# 2. Commands
* **artistfinder** or **artistfinder menu**: interactive menu
* **artistfinder dashboard**: tree statistics, sorted IDs and a style chart
* **artistfinder query show 40**: run a single menu action and exit
* **artistfinder list --pager**: page through the sorted IDs with $PAGER
* **artistfinder walkthrough**: print traversals, mirroring and leaves
* **artistfinder settings**: show or create ~/.artistfinder.yaml

# 3. Menu actions
1. load [small|large|<file>]
2. list [<page>]
3. probe [<file>]
4. height
5. find <id>
6. show <id>
7. playcount <n>
8. style <style>
9. help
10. clear

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
