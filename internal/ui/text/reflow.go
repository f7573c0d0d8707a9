package text

// Reflow turns word-separating spaces in *msg into line breaks once the
// current line grows past maxLength runes, and returns the length of the
// longest resulting line. Breaks only ever replace a space, so a single word
// longer than maxLength leaves its line over length. The count restarts at
// every break, whether it was already present or inserted here.
func Reflow(msg *string, maxLength int) int {
	runes := []rune(*msg)
	cur, longest := 0, 0
	last := len(runes) - 1
	for i, r := range runes {
		if r == ' ' && cur > maxLength {
			runes[i] = '\n'
			r = '\n'
		}
		if r == '\n' {
			longest = max(longest, cur)
			cur = 0
			continue
		}
		cur++
		if i == last {
			longest = max(longest, cur)
		}
	}
	*msg = string(runes)
	return longest
}
