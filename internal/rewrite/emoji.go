package rewrite

import "strings"

// emojiTokens are the decorative prefixes removed from log messages,
// each with its trailing space. Removal is a case-sensitive literal
// substring match in this order; a token must appear byte-for-byte
// identical (no Unicode normalization) to be stripped.
var emojiTokens = []string{
	"🛑 ",
	"🎯 ",
	"⚠️ ",
	"📊 ",
	"🤖 ",
	"⚙️ ",
	"🔄 ",
	"✅ ",
	"🚨 ",
	"💥 ",
}

// StripEmoji removes every occurrence of each mapped emoji token from
// content and returns the new content with the number of tokens removed.
// Emoji not in the token list are left untouched.
func StripEmoji(content string) (string, int) {
	removed := 0
	for _, tok := range emojiTokens {
		n := strings.Count(content, tok)
		if n == 0 {
			continue
		}
		content = strings.ReplaceAll(content, tok, "")
		removed += n
	}
	return content, removed
}
