package knowledge

import (
	"regexp"
	"strings"
)

var blankLines = regexp.MustCompile(`\n{2,}`)

// chunkMarkdown splits a markdown document into paragraph-level chunks.
// Headings are merged with the paragraph that follows them so a chunk
// keeps its local context when embedded on its own.
func chunkMarkdown(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	raw := blankLines.Split(content, -1)
	chunks := make([]string, 0, len(raw))

	var pendingHeading string
	for _, part := range raw {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if isHeadingOnly(part) {
			// Keep accumulating headings until real text shows up.
			if pendingHeading != "" {
				pendingHeading += "\n" + part
			} else {
				pendingHeading = part
			}
			continue
		}

		if pendingHeading != "" {
			part = pendingHeading + "\n\n" + part
			pendingHeading = ""
		}
		chunks = append(chunks, part)
	}

	// A trailing heading with no body still carries signal.
	if pendingHeading != "" {
		chunks = append(chunks, pendingHeading)
	}

	return chunks
}

func isHeadingOnly(part string) bool {
	if strings.Contains(part, "\n") {
		return false
	}
	return strings.HasPrefix(part, "#")
}
