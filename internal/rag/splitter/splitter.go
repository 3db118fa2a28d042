package splitter

import (
	"strings"

	"github.com/startup-advisor/backend/internal/domain/advice"
)

// defaultSeparators go from coarsest to finest; the empty string means
// character-level splitting and always matches.
var defaultSeparators = []string{"\n\n", "\n", ". ", "! ", "? ", " ", ""}

// Splitter cuts text into overlapping chunks of at most chunkSize characters,
// recursively falling through the separator list until pieces fit.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

func New(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = 0
	}
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   defaultSeparators,
	}
}

// SplitDocuments chunks every document, copying the parent metadata onto each
// chunk and preserving order across and within documents.
func (s *Splitter) SplitDocuments(documents []advice.Document) []advice.Chunk {
	var chunks []advice.Chunk
	for _, doc := range documents {
		for _, text := range s.SplitText(doc.Content) {
			chunks = append(chunks, advice.Chunk{
				Content:  text,
				Metadata: doc.Metadata,
			})
		}
	}
	return chunks
}

func (s *Splitter) SplitText(text string) []string {
	return s.split(text, s.separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	separator := separators[len(separators)-1]
	var remaining []string
	for i, sep := range separators {
		if sep == "" || strings.Contains(text, sep) {
			separator = sep
			remaining = separators[i+1:]
			break
		}
	}

	var splits []string
	for _, piece := range strings.Split(text, separator) {
		if piece != "" {
			splits = append(splits, piece)
		}
	}

	var final []string
	var good []string
	for _, piece := range splits {
		if len(piece) < s.chunkSize {
			good = append(good, piece)
			continue
		}
		// Flush what fits, then recurse into the oversized piece with the
		// finer separators. With none left the piece stays atomic.
		if len(good) > 0 {
			final = append(final, s.merge(good, separator)...)
			good = nil
		}
		if len(remaining) == 0 {
			final = append(final, piece)
		} else {
			final = append(final, s.split(piece, remaining)...)
		}
	}
	if len(good) > 0 {
		final = append(final, s.merge(good, separator)...)
	}
	return final
}

// merge greedily packs consecutive splits back together up to chunkSize,
// keeping chunkOverlap characters of trailing context on the next chunk.
func (s *Splitter) merge(splits []string, separator string) []string {
	sepLen := len(separator)

	var chunks []string
	var current []string
	total := 0

	for _, piece := range splits {
		pieceLen := len(piece)
		if total+pieceLen+joinLen(sepLen, len(current) > 0) > s.chunkSize && len(current) > 0 {
			if chunk := joinSplits(current, separator); chunk != "" {
				chunks = append(chunks, chunk)
			}
			for total > s.chunkOverlap ||
				(total+pieceLen+joinLen(sepLen, len(current) > 0) > s.chunkSize && total > 0) {
				total -= len(current[0]) + joinLen(sepLen, len(current) > 1)
				current = current[1:]
			}
		}
		current = append(current, piece)
		total += pieceLen + joinLen(sepLen, len(current) > 1)
	}
	if chunk := joinSplits(current, separator); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

func joinSplits(parts []string, separator string) string {
	return strings.TrimSpace(strings.Join(parts, separator))
}

func joinLen(sepLen int, joined bool) int {
	if joined {
		return sepLen
	}
	return 0
}
