// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package i18n

import (
	"strconv"
	"strings"
)

// countInserts returns how many arguments fmt.Sprintf would consume for the template.
// Explicit argument indexes (%[2]v) move the position the same way fmt does, so a
// template that repeats a slot counts it once, and '*' widths consume an argument.
func countInserts(template string) int {
	argNum, maxArg := 0, 0
	consume := func() {
		argNum++
		if argNum > maxArg {
			maxArg = argNum
		}
	}
	end := len(template)
	for i := 0; i < end; i++ {
		if template[i] != '%' {
			continue
		}
		i++
		for i < end && strings.IndexByte("+-# 0", template[i]) >= 0 {
			i++
		}
		// width
		i, argNum = argIndex(template, i, argNum)
		if i < end && template[i] == '*' {
			consume()
			i++
		}
		for i < end && template[i] >= '0' && template[i] <= '9' {
			i++
		}
		// precision
		if i < end && template[i] == '.' {
			i++
			i, argNum = argIndex(template, i, argNum)
			if i < end && template[i] == '*' {
				consume()
				i++
			}
			for i < end && template[i] >= '0' && template[i] <= '9' {
				i++
			}
		}
		i, argNum = argIndex(template, i, argNum)
		if i >= end {
			break
		}
		if template[i] != '%' {
			consume()
		}
	}
	return maxArg
}

// argIndex parses an explicit "[n]" at position i, returning the position after it
// and the zero based argument number it selects
func argIndex(template string, i, argNum int) (int, int) {
	if i >= len(template) || template[i] != '[' {
		return i, argNum
	}
	closeBracket := strings.IndexByte(template[i:], ']')
	if closeBracket < 0 {
		return i, argNum
	}
	n, err := strconv.Atoi(template[i+1 : i+closeBracket])
	if err != nil || n < 1 {
		return i + closeBracket + 1, argNum
	}
	return i + closeBracket + 1, n - 1
}
