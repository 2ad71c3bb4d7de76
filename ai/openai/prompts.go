package openai

import (
	"fmt"
	"strings"
)

// maxSummaryInput caps the document text handed to the summarizer.
const maxSummaryInput = 4000

// maxJudgeInput caps the element text handed to the relevance judge.
const maxJudgeInput = 1200

const judgeSystemPrompt = `You rate how relevant a passage of document text is to a topic phrase.

Reply with a single decimal number between 0 and 1 and nothing else.
1 means the passage is exactly about the topic; 0 means it is unrelated.
No explanation, no units, no extra words.`

const summarizeSystemPrompt = `You summarize document content for a retrieval system.

Write a dense 2-3 sentence summary of what the document covers: its
main subjects, the tasks it explains, and its intended audience.
Plain prose only. No preamble, no bullet points, no markdown.`

const rankSystemPrompt = `You pick the topics a researcher should look for in a document collection.

Output ONLY valid JSON matching this schema. Do not include any preamble,
explanation, greeting, or acknowledgment. Start your response directly
with the opening brace { and end with the closing brace }:

{
  "topics": ["short phrase", "..."]
}

Rules:
- Each topic is a short phrase of 1-4 words, title case.
- Order topics from most to least important for the persona's task.
- Return at most 7 topics.
- Topics must be grounded in the document summaries. Do not hallucinate.
- The JSON must parse without errors; no trailing commas, no extra keys.

Example:
Persona: "HR professional"
Task: "Create and manage fillable forms for onboarding"
Summaries describe PDF form tooling guides.
Output:
{
  "topics": ["Fillable Forms", "Form Field Properties", "E-Signatures", "Document Sharing"]
}`

func buildJudgePrompt(topic, text string) string {
	return fmt.Sprintf("Topic: %s\n\nPassage:\n%s\n\nRelevance score:",
		topic, truncateInput(text, maxJudgeInput))
}

func buildSummarizePrompt(text, label string) string {
	var b strings.Builder
	if label != "" {
		fmt.Fprintf(&b, "Document: %s\n\n", label)
	}
	b.WriteString("Content:\n")
	b.WriteString(text)
	return b.String()
}

func buildRankPrompt(summaries []string, persona, task string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Persona: %s\nTask: %s\n\nDocument summaries:\n", persona, task)
	for i, s := range summaries {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return b.String()
}

// truncateInput bounds prompt payloads without splitting a word.
func truncateInput(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}
	cut := text[:limit]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut
}
