// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package document

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFromName parses a wire document name (lower-case hex) into its numeric
// id. Malformed names parse to 0.
func IDFromName(
	name string,
) uint32 {
	id, _ := strconv.ParseUint(name, 16, 64)

	return uint32(id)
}

// NameFromID formats a numeric document id as its wire name.
func NameFromID(
	id uint32,
) string {
	return fmt.Sprintf("%x", id)
}

// IsValidAppName checks whether string is a valid application name.
//
// App names are composed of 3 or more elements separated by a period ('.')
// character. Each element must only contain the ASCII characters
// "[A-Z][a-z][0-9]_" and must not begin with a digit. Names must not begin
// with a '.' and must not exceed 255 characters.
func IsValidAppName(
	name string,
) bool {
	if len(name) == 0 || len(name) > 255 {
		return false
	}

	elements := strings.Split(name, ".")
	if len(elements) < 3 {
		return false
	}

	for _, element := range elements {
		if len(element) == 0 {
			return false
		}
		if !isValidInitialNameCharacter(rune(element[0])) {
			return false
		}
		for _, c := range element[1:] {
			if !isValidNameCharacter(c) {
				return false
			}
		}
	}

	return true
}

func isValidInitialNameCharacter(c rune) bool {
	return (c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		c == '_'
}

func isValidNameCharacter(c rune) bool {
	return isValidInitialNameCharacter(c) ||
		(c >= '0' && c <= '9')
}
