package youtube

import (
	"regexp"
	"strings"
)

// Keywords that indicate educational/study content.
var educationalKeywords = []string{
	"tutorial", "learn", "course", "lesson", "guide", "how to", "basics", "fundamentals",
	"introduction", "overview", "explained", "step by step", "tips", "tricks", "best practices",
	"complete guide", "full course", "crash course", "beginners", "advanced", "intermediate",
	"masterclass", "workshop", "training", "education", "academic", "lecture", "seminar",
}

// Keywords that indicate non-educational content (filtered out).
var nonEducationalKeywords = []string{
	"vlog", "daily", "lifestyle", "funny", "comedy", "entertainment", "gaming", "music video",
	"song", "cover", "reaction", "challenge", "prank", "unboxing", "haul", "review", "unbox",
	"asmr", "satisfying", "relaxing", "sleep", "meditation", "workout", "fitness", "dance",
}

var emojiPattern = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`)

// isEducational decides whether a title/description pair looks like study
// content. Any single disqualifying signal vetoes the match: false
// negatives are cheaper than surfacing entertainment as a lesson, and the
// relaxed search pass recovers volume when this filter drops everything.
func isEducational(title, description string) bool {
	text := strings.ToLower(title + " " + description)
	loweredTitle := strings.ToLower(title)

	if !containsAny(text, educationalKeywords) {
		return false
	}
	if containsAny(text, nonEducationalKeywords) {
		return false
	}
	// Shallow or extreme-duration titles rarely make good lesson material.
	if strings.Contains(loweredTitle, "short") || strings.Contains(loweredTitle, "quick") {
		return false
	}
	if strings.Contains(loweredTitle, "10 hour") || strings.Contains(loweredTitle, "24 hour") {
		return false
	}
	return !emojiPattern.MatchString(title)
}

// hasDisqualifier is the relaxed-pass filter: only a negative keyword or an
// emoji in the title rejects a video; no positive signal is required.
func hasDisqualifier(title, description string) bool {
	text := strings.ToLower(title + " " + description)
	return containsAny(text, nonEducationalKeywords) || emojiPattern.MatchString(title)
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
