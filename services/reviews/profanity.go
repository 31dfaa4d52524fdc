package reviews

import (
	"regexp"
)

// profanityPattern is the same coarse screen the moderation view applies when
// highlighting suspect submissions.
var profanityPattern = regexp.MustCompile(`(?i)kurwa|chuj|pierd`)

// Flagged reports whether the text trips the profanity pre-screen. Flagged
// reviews still enter the pending queue; the flag only surfaces to moderators.
func Flagged(text string) bool {
	return profanityPattern.MatchString(text)
}
