package market

import (
	"strings"

	"golang.org/x/net/html"
)

// stripTags flattens HTML fragments to plain text. Job posting descriptions
// frequently arrive as markup; keyword matching needs the text only.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(tokenizer.Text())
			sb.WriteString(" ")
		}
	}
}
