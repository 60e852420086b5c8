// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package importexpand

import (
	"strings"

	"github.com/philocalyst/anki/cerrs"
)

// Reader resolves and reads import targets on behalf of Expand. relPath is
// resolved against the directory of the file identified by fromCanonical;
// the returned canonical string is whatever the caller uses to recognize the
// same file again (an absolute path, a revision-qualified blob key, etc.) —
// Expand never inspects it beyond equality comparison for cycle detection.
type Reader interface {
	Resolve(fromCanonical, relPath string) (canonical string, err error)
	Read(canonical string) (text string, err error)
}

const importPrefix = "import "

// Expand returns rootText with every import directive replaced by the
// recursive expansion of its target, depth-first and left-to-right. Text
// with no import directives is returned unchanged.
func Expand(reader Reader, rootCanonical, rootText string) (string, error) {
	stack := make(map[string]struct{})
	return expand(reader, stack, rootCanonical, rootText)
}

func expand(reader Reader, stack map[string]struct{}, canonical, text string) (string, error) {
	if _, onStack := stack[canonical]; onStack {
		return "", &cerrs.CircularImportError{Path: canonical}
	}
	stack[canonical] = struct{}{}
	defer delete(stack, canonical)

	var out strings.Builder
	rest := text
	for len(rest) > 0 {
		var line string
		var hasNewline bool
		if idx := strings.IndexByte(rest, '\n'); idx == -1 {
			line, rest = rest, ""
		} else {
			line, rest, hasNewline = rest[:idx], rest[idx+1:], true
		}

		target, ok := importTarget(line)
		if !ok {
			out.WriteString(line)
			if hasNewline {
				out.WriteByte('\n')
			}
			continue
		}

		childCanonical, err := reader.Resolve(canonical, target)
		if err != nil {
			return "", &cerrs.ImportPathResolutionError{Path: target, Cause: err}
		}
		childText, err := reader.Read(childCanonical)
		if err != nil {
			return "", &cerrs.ImportUnreadableError{Path: target, Cause: err}
		}
		expanded, err := expand(reader, stack, childCanonical, childText)
		if err != nil {
			return "", err
		}
		out.WriteString(expanded)
		if !strings.HasSuffix(expanded, "\n") {
			out.WriteByte('\n')
		}
	}
	return out.String(), nil
}

// importTarget reports whether line is an import directive and, if so, its
// trimmed relative path.
func importTarget(line string) (string, bool) {
	trimmed := strings.TrimRight(line, "\r")
	if !strings.HasPrefix(trimmed, importPrefix) {
		return "", false
	}
	path := strings.TrimSpace(trimmed[len(importPrefix):])
	if path == "" {
		return "", false
	}
	return path, true
}
