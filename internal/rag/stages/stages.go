package stages

import (
	"fmt"
	"strings"
)

// Definition is one entry of the fixed startup lifecycle catalog. The ids
// double as the dataset's top-level directory names and as the keyword values
// of the `stage` payload field in the vector store.
type Definition struct {
	ID          string
	Label       string
	Description string
}

var Catalog = []Definition{
	{
		ID:          "01_Ideation_Stage",
		Label:       "Ideation Stage",
		Description: "Idea generation, problem discovery, customer interviews, opportunity framing.",
	},
	{
		ID:          "02_Validation_Stage",
		Label:       "Validation Stage",
		Description: "MVPs, experiments, user testing, rapid learning, validating problem-solution fit.",
	},
	{
		ID:          "03_Product_Building_Stage",
		Label:       "Product Building Stage",
		Description: "Product design, UX, feature development, building something people can use repeatedly.",
	},
	{
		ID:          "04_Growth_Traction_Stage",
		Label:       "Growth & Traction Stage",
		Description: "Acquisition channels, go-to-market, early traction, crossing the adoption gap.",
	},
	{
		ID:          "05_Funding_Stage",
		Label:       "Funding Stage",
		Description: "Fundraising strategy, angels, VCs, term sheets, negotiations, investor readiness.",
	},
	{
		ID:          "06_Team_Leadership_Stage",
		Label:       "Team & Leadership Stage",
		Description: "Hiring, culture, leadership, communication, managing people and teams.",
	},
	{
		ID:          "07_Scaling_Stage",
		Label:       "Scaling Stage",
		Description: "Hypergrowth, scaling systems, OKRs, performance management, scaling operations.",
	},
	{
		ID:          "08_Strategic_Maturity_Stage",
		Label:       "Strategic Maturity Stage",
		Description: "Long-term strategy, competitive advantage, execution discipline, strategic positioning.",
	},
}

func IsKnown(id string) bool {
	for _, def := range Catalog {
		if def.ID == id {
			return true
		}
	}
	return false
}

// ClassifierPrompt builds the stage-detection prompt for a user question. The
// model is instructed to reply with a bare JSON array of stage ids.
func ClassifierPrompt(question string) string {
	var catalogLines []string
	for _, def := range Catalog {
		catalogLines = append(catalogLines, fmt.Sprintf("- %q: %s — %s", def.ID, def.Label, def.Description))
	}

	return fmt.Sprintf(`You are a classifier that maps user questions to startup lifecycle stages.

You are given a list of stages (with IDs, names, and descriptions) and a user question.
Your task is to return ALL stages that are relevant to answering this question.

Stages:
%s

User question:
%s

Instructions:
1. Consider that the question may be in English or Arabic.
2. Choose every stage where the question would reasonably need knowledge from that stage.
   - For example, a question mixing funding and growth should select both "05_Funding_Stage" and "04_Growth_Traction_Stage".
3. If no stage clearly matches, return an empty list.
4. Your response MUST be a valid JSON array of strings, using ONLY the stage IDs.
   - Example: ["01_Ideation_Stage", "02_Validation_Stage"]
   - Example (no match): []

Return ONLY the JSON array. Do not add any explanation.
`, strings.Join(catalogLines, "\n"), question)
}
