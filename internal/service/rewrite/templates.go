package rewrite

import "github.com/heartmarshall/mydocs-backend/internal/domain"

// levelTemplates are the instructions placed ahead of the content for each
// simplification level. The technical mode uses the technical level.
var levelTemplates = map[domain.SimplificationLevel]string{
	domain.SimplificationTechnical: `Rewrite the following documentation for an experienced engineer.
Be precise and dense. Use exact terminology, keep every code sample, and add
implementation details, edge cases and trade-offs where they are implied.
Do not explain basic concepts. Keep the markdown structure.`,

	domain.SimplificationStandard: `Rewrite the following documentation so it reads clearly for a
working developer. Keep the technical terms but tighten wording, fix unclear
sentences and keep every code sample. Keep the markdown structure.`,

	domain.SimplificationSimplified: `Rewrite the following documentation in simpler language.
Use short sentences, explain jargon the first time it appears and break long
paragraphs into steps or bullet points. Keep code samples and the markdown
structure.`,

	domain.SimplificationBeginner: `Rewrite the following documentation for someone new to
programming. Explain every technical term in plain words, say why each step
matters, and add a short example where it helps. Keep code samples but
describe what they do. Use markdown headings and lists.`,

	domain.SimplificationNoob: `Rewrite the following documentation for a complete non-technical
reader. Avoid jargon entirely or explain it with everyday analogies. Use a
friendly tone, very short sentences and small steps. Summarize what code does
instead of assuming the reader can read it. Use markdown headings and lists.`,
}

const customTemplate = `Rewrite the following documentation according to these instructions:

%s

Keep the markdown structure unless the instructions say otherwise.`

const contentSeparator = "\n\n---\n\n"
