package post

import (
	"fmt"
	"strings"
	"time"

	"github.com/McKael/madon"
)

const maxPostSize = 500
const unlisted = "unlisted"

// ToMastodon posts the message to the school's Mastodon account, threading
// continuation posts when the text exceeds the instance limit.
func ToMastodon(client *madon.Client) PosterFn {
	if client == nil {
		return ToStdout
	}
	return func(target, text string) error {
		tags := renderTags([]string{"schule", "vertretungsplan", "termine"}, "#")
		parts := splitMessage(text, maxPostSize-len(tags)-2)

		var inReplyTo int64 = 0
		for i, content := range parts {
			if inReplyTo > 0 {
				time.Sleep(500 * time.Millisecond)
			}
			content = content + "\n\n" + tags
			spoiler := ""
			if len(parts) > 1 {
				spoiler = fmt.Sprintf("%d/%d", i+1, len(parts))
			}
			s, err := client.PostStatus(content, inReplyTo, nil, spoiler != "", spoiler, unlisted)
			if err != nil {
				return SendError{Target: client.InstanceURL, Err: err}
			}
			inReplyTo = s.ID
		}
		return nil
	}
}

// splitMessage cuts the text into chunks of at most max runes along line
// boundaries; a single oversized line is cut mid-line.
func splitMessage(text string, max int) []string {
	if len([]rune(text)) <= max {
		return []string{text}
	}

	parts := make([]string, 0)
	var cur []rune
	for _, line := range strings.Split(text, "\n") {
		lr := []rune(line)
		for len(lr) > max {
			if len(cur) > 0 {
				parts = append(parts, string(cur))
				cur = nil
			}
			parts = append(parts, string(lr[:max]))
			lr = lr[max:]
		}
		if len(cur) > 0 && len(cur)+len(lr)+1 > max {
			parts = append(parts, string(cur))
			cur = nil
		}
		if len(cur) > 0 {
			cur = append(cur, '\n')
		}
		cur = append(cur, lr...)
	}
	if len(cur) > 0 {
		parts = append(parts, string(cur))
	}
	return parts
}
