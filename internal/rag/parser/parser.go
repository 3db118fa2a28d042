package parser

import (
	"regexp"
	"strings"

	"github.com/startup-advisor/backend/internal/domain/advice"
)

// Advice blocks are level-2 headings whose text starts with "advice":
//
//	## advice_1
//	**stage:** Idea
//	**topic:** customer_interviews
//
// A block runs from its heading to the next advice heading or end of file.
var (
	headingPattern    = regexp.MustCompile(`(?m)^##\s+advice[^\n]*`)
	stagePattern      = regexp.MustCompile(`\*\*stage:\*\*\s*(.+)`)
	topicPattern      = regexp.MustCompile(`\*\*topic:\*\*\s*(.+)`)
	complexityPattern = regexp.MustCompile(`\*\*complexity:\*\*\s*(.+)`)
	tagsPattern       = regexp.MustCompile(`\*\*tags:\*\*\s*\[(.+)\]`)
)

// ParseMarkdownAdvices splits raw markdown into one Document per advice block,
// in source order. A file with no advice headings becomes a single Document
// carrying only the base metadata.
func ParseMarkdownAdvices(mdText string, base advice.Metadata) []advice.Document {
	headings := headingPattern.FindAllStringIndex(mdText, -1)

	if len(headings) == 0 {
		content := strings.TrimSpace(mdText)
		if content == "" {
			return nil
		}
		return []advice.Document{{
			Content:  content,
			Metadata: base,
		}}
	}

	documents := make([]advice.Document, 0, len(headings))
	for i, loc := range headings {
		end := len(mdText)
		if i+1 < len(headings) {
			end = headings[i+1][0]
		}
		block := mdText[loc[0]:end]
		headingLine := mdText[loc[0]:loc[1]]
		body := block[len(headingLine):]

		meta := base
		meta.AdviceID = strings.TrimSpace(strings.Trim(headingLine, "#"))
		parseBlockFields(body, &meta)

		documents = append(documents, advice.Document{
			Content:  strings.TrimSpace(block),
			Metadata: meta,
		})
	}
	return documents
}

// parseBlockFields merges the optional labeled fields found in a block body.
// Malformed or absent fields are simply skipped.
func parseBlockFields(body string, meta *advice.Metadata) {
	if m := stagePattern.FindStringSubmatch(body); m != nil {
		meta.StageLabel = strings.TrimSpace(m[1])
	}
	if m := topicPattern.FindStringSubmatch(body); m != nil {
		meta.Topic = strings.TrimSpace(m[1])
	}
	if m := complexityPattern.FindStringSubmatch(body); m != nil {
		meta.Complexity = strings.TrimSpace(m[1])
	}
	if m := tagsPattern.FindStringSubmatch(body); m != nil {
		meta.Tags = parseTags(m[1])
	}
}

func parseTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		tag = strings.Trim(tag, `"`)
		tag = strings.Trim(tag, `'`)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
