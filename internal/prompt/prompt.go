// Package prompt renders generation requests for both scenes. Builders are
// pure templating: they embed their inputs verbatim and never transform
// file content.
package prompt

import (
	"fmt"
	"strings"

	"codefactory/internal/chunk"
	"codefactory/internal/llmclient"
)

// Request is one fully-rendered generation request: role-tagged message
// blocks plus the number of records the prompt asks for.
type Request struct {
	Messages []llmclient.Message
	Count    int
}

const qaSystem = "You are a senior software engineer. " +
	"You read code and generate developer-style questions, step-by-step reasoning, " +
	"and clear answers. You MUST respond in strict JSON only."

const designSystem = "You are a senior software architect. " +
	"You design new features that fit into an existing codebase. " +
	"You must provide clear reasoning and final design specifications. " +
	"Respond in strict JSON only."

// ForChunk builds the scene-1 request: the chunk sits verbatim inside a
// fenced block and the model must answer with {"samples":[...]}.
func ForChunk(c chunk.Chunk, qaCount int) Request {
	var b strings.Builder
	fmt.Fprintf(&b, "File path: %s\n", c.FilePath)
	fmt.Fprintf(&b, "Class / module: %s\n\n", c.ClassName)
	b.WriteString("Code (with line numbers):\n\n")
	b.WriteString("```text\n")
	b.WriteString(c.ContentWithLines)
	b.WriteString("\n```\n\n")
	b.WriteString("Task:\n\n")
	fmt.Fprintf(&b, "Propose %d realistic questions a developer or product owner might ask\n", qaCount)
	b.WriteString("about this code (behavior, intent, edge cases, business logic, etc.).\n\n")
	b.WriteString("For each question, write a detailed thinking_trace that explains, step by step,\n")
	b.WriteString("how you reason about the code to reach an answer.\n\n")
	b.WriteString("Then give a concise final answer.\n\n")
	b.WriteString("Output STRICTLY as JSON (no comments, no extra text):\n\n")
	b.WriteString(`{
  "samples": [
    {
      "question": "string",
      "thinking_trace": "string, multi-step reasoning",
      "answer": "string, concise answer"
    }
  ]
}`)

	return Request{
		Messages: []llmclient.Message{
			{Role: "system", Content: qaSystem},
			{Role: "user", Content: b.String()},
		},
		Count: qaCount,
	}
}

// ForDesign builds the scene-2 request from the full project file listing
// and a sampled subset; the model must answer with {"plans":[...]}.
func ForDesign(projectFiles, sampleFiles []string, designCount int) Request {
	var b strings.Builder
	b.WriteString("Existing project structure (partial):\n\n")
	b.WriteString(bulleted(projectFiles))
	b.WriteString("\n\nRepresentative files (subset):\n\n")
	b.WriteString(bulleted(sampleFiles))
	b.WriteString("\n\nTask:\n")
	fmt.Fprintf(&b, "1. Propose %d realistic new features or enhancements that could be added\n", designCount)
	b.WriteString("to this project. They should be consistent with the existing structure and naming.\n")
	b.WriteString("2. For each feature, provide a detailed thinking_trace explaining:\n")
	b.WriteString("- why this feature makes sense,\n")
	b.WriteString("- how it fits into the architecture,\n")
	b.WriteString("- what modules or layers it touches,\n")
	b.WriteString("- what trade-offs you considered.\n")
	b.WriteString("3. Then write a design_spec describing the final design in a concise, implementable way.\n\n")
	b.WriteString("Output STRICTLY as JSON (no comments, no extra text):\n\n")
	b.WriteString(`{
  "plans": [
    {
      "feature_title": "string",
      "thinking_trace": "string, multi-step reasoning",
      "design_spec": "string, final proposed design"
    }
  ]
}`)

	return Request{
		Messages: []llmclient.Message{
			{Role: "system", Content: designSystem},
			{Role: "user", Content: b.String()},
		},
		Count: designCount,
	}
}

func bulleted(items []string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "- " + it
	}
	return strings.Join(lines, "\n")
}
