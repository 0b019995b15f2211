package crew

import (
	"fmt"
	"strings"

	"github.com/pmorozov/newscrew/internal/model"
)

const researcherSystem = `You are a Senior Research Analyst. You uncover the most relevant, ` +
	`current developments on a given topic and present them as concise factual findings. ` +
	`You never fabricate sources; if you are unsure, say so in the finding itself.`

const analystSystem = `You are a Reporting Analyst. You turn research findings into detailed, ` +
	`well-structured markdown reports. Each main topic gets its own section with full context. ` +
	`Output markdown only, without code fences around the document.`

// researcherPrompt builds the first-stage prompt. Source excerpts, when
// present, ground the findings; the agent is told to prefer them.
func researcherPrompt(req model.ResearchRequest, sources []model.Source) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Conduct thorough research about %s.\n", req.Topic)
	fmt.Fprintf(&b, "Focus on the most interesting and relevant developments as of %s.\n\n", req.CurrentYear)

	if len(sources) > 0 {
		b.WriteString("Use the following source excerpts as primary grounding material:\n\n")
		for i, src := range sources {
			fmt.Fprintf(&b, "Source %d: %s", i+1, src.URL)
			if src.Title != "" {
				fmt.Fprintf(&b, " (%s)", src.Title)
			}
			b.WriteString("\n")
			if src.Excerpt != "" {
				fmt.Fprintf(&b, "%s\n", src.Excerpt)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "Return a list of exactly 10 bullet points of the most relevant information about %s, one per line.", req.Topic)

	return b.String()
}

// analystPrompt builds the second-stage prompt from the parsed findings
func analystPrompt(req model.ResearchRequest, findings []model.Finding) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Review the following research findings about %s and expand each into a full report section:\n\n", req.Topic)
	for _, f := range findings {
		fmt.Fprintf(&b, "%d. %s\n", f.Index, f.Text)
	}
	b.WriteString("\nWrite a comprehensive markdown report. Start with a top-level heading naming the topic, ")
	b.WriteString("then one section per finding with detailed, accurate context. ")
	fmt.Fprintf(&b, "The report covers the state of the topic as of %s.", req.CurrentYear)

	return b.String()
}
