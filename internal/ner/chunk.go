package ner

import (
	"strings"
	"unicode/utf8"
)

// chunkText splits text into pieces of at most size bytes, breaking on line
// boundaries and then on spaces. A single word longer than size is cut.
func chunkText(text string, size int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if size <= 0 || len(text) <= size {
		return []string{text}
	}

	var chunks []string
	for len(text) > size {
		cut := strings.LastIndexByte(text[:size], '\n')
		if cut <= 0 {
			cut = strings.LastIndexByte(text[:size], ' ')
		}
		if cut <= 0 {
			cut = size
			for cut > 1 && !utf8.RuneStart(text[cut]) {
				cut--
			}
		}
		if piece := strings.TrimSpace(text[:cut]); piece != "" {
			chunks = append(chunks, piece)
		}
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
