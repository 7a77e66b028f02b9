package query

import (
	"strings"

	"github.com/finsolve/finsight/core"
)

// contextDelimiter separates chunk texts inside the prompt context block.
const contextDelimiter = "\n\n-----\n\n"

// NoEvidenceMessage is returned verbatim when retrieval finds nothing
// within the caller's scope.
const NoEvidenceMessage = "No relevant documents found for your role."

const promptTemplate = `
You are FinSolve-AI, an enterprise assistant.
Your task is to give **long, detailed, well-structured answers** using ONLY the context provided.

### Instructions:
- Provide a **clear, multi-paragraph answer**
- Include explanations, examples, reasoning steps
- If the context contains multiple points, **summarize and connect them**
- Never guess beyond the provided context
- Write in a professional but easy-to-understand tone
- Minimum length: **6–10 sentences**

### User Role:
{{role}}

### Context:
{{context}}

### Question:
{{question}}

### Final Answer (detailed and structured):
`

// buildPrompt assembles the grounded generation prompt from the retrieved
// chunks, preserving their ranked order in the context block.
func buildPrompt(role, question string, chunks []core.ScoredChunk) string {
	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Chunk.Text
	}

	prompt := promptTemplate
	prompt = strings.ReplaceAll(prompt, "{{role}}", role)
	prompt = strings.ReplaceAll(prompt, "{{context}}", strings.Join(texts, contextDelimiter))
	prompt = strings.ReplaceAll(prompt, "{{question}}", question)
	return prompt
}
