package notify

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Discord rejects messages longer than 2000 characters. Audit previews are
// trimmed earlier so the surrounding formatting survives the cap.
const (
	maxContentLen   = 2000
	maxPreviewLen   = 1800
	truncatedSuffix = "... [truncated]"
)

// RestartMessage renders the changelog notification posted after the bot
// process restarts.
func RestartMessage(host string, at time.Time) string {
	var b strings.Builder
	b.WriteString("🔁 **qrls-bot restarted**\n")
	b.WriteString("• **Host:** `" + host + "`\n")
	b.WriteString("• **Time:** " + at.UTC().Format("2006-01-02 15:04:05") + " UTC")
	return Truncate(b.String())
}

// SendMessageAudit renders the changelog entry written after an operator
// sends a message through the bot.
func SendMessageAudit(host, channelID, content string) string {
	preview := content
	if len(preview) > maxPreviewLen {
		preview = cutAt(preview, maxPreviewLen) + truncatedSuffix
	}

	var b strings.Builder
	b.WriteString("📝 **sendmessage used**\n")
	b.WriteString("• **From host:** `" + host + "`\n")
	b.WriteString("• **Target channel:** `" + channelID + "`\n")
	b.WriteString("• **Content:**\n")
	b.WriteString("```txt\n" + preview + "\n```")
	return Truncate(b.String())
}

// Truncate caps content at Discord's message length limit, marking the cut.
func Truncate(content string) string {
	if len(content) <= maxContentLen {
		return content
	}
	return cutAt(content, maxContentLen-len(truncatedSuffix)) + truncatedSuffix
}

// cutAt slices content at a byte offset, backing off to a rune boundary so a
// multibyte character is never split.
func cutAt(content string, n int) string {
	for n > 0 && !utf8.RuneStart(content[n]) {
		n--
	}
	return content[:n]
}
