package feed

import (
	"regexp"
	"strings"
)

// maxMentionsPerMessage caps how many distinct mentions one message can carry.
const maxMentionsPerMessage = 20

var mentionPattern = regexp.MustCompile(`@([a-zA-Z0-9_.-]+)`)

// ExtractMentions scans a message body for @handle tokens. Matches are
// lowercased, deduplicated preserving first-seen order, and capped.
func ExtractMentions(body string) []string {
	matches := mentionPattern.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	mentions := make([]string, 0, len(matches))
	for _, m := range matches {
		handle := strings.ToLower(m[1])
		if _, ok := seen[handle]; ok {
			continue
		}
		seen[handle] = struct{}{}
		mentions = append(mentions, handle)
		if len(mentions) == maxMentionsPerMessage {
			break
		}
	}
	return mentions
}
