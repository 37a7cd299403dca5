package llm

import (
	"encoding/json"
	"fmt"

	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

const periodFormat = "January 02, 2006"

// systemPrompt is the fixed instruction describing the desired output shape.
const systemPrompt = `You are a medical report generator that creates professionally formatted health timelines. Generate a comprehensive health timeline based on the provided symptoms and medications data.
The timeline must include:
1. A title page with patient information and report period
2. A chronological list of symptoms with their dates and severity
3. A chronological list of medications with their start and end dates, and purposes
4. Analysis of potential correlations between medications and symptom changes
5. Recommendations for follow-up (without specific medical advice)

FORMATTING REQUIREMENTS:
- Use consistent heading levels: # for main sections, ## for subsections
- Format dates as MM/DD/YYYY for better readability
- Use **bold** for important information (dates, medication names, symptom names)
- Use *italics* for severity levels and medication dosages
- Use bullet points for listing items within sections
- Include horizontal rules (---) between major sections
- Create tables using markdown format for medication schedules
- Keep paragraphs short and concise for better PDF rendering
- Use clear section headers with proper hierarchical structure
- Include a summary section at the beginning

The output should be in markdown format that can be easily converted to a PDF-compatible structure.`

// buildUserPrompt embeds the formatted period boundaries and both projected
// datasets as literal structured text, plus the requested format hint.
func buildUserPrompt(req ports.NarrativeRequest) string {
	return fmt.Sprintf(`Generate a detailed, professionally formatted health report timeline for the period from **%s** to **%s**.

# SYMPTOMS DATA:
%s

# MEDICATIONS DATA:
%s

Report format requested: %s

Ensure the report uses proper hierarchical headings, bold for important information, italics for supporting details, and maintains a consistent formatting style throughout. Include clear section dividers and organize information in a logical flow that will render well in a PDF document.`,
		req.PeriodStart.Format(periodFormat),
		req.PeriodEnd.Format(periodFormat),
		encodeRecords(req.Symptoms),
		encodeRecords(req.Medications),
		req.Format,
	)
}

// encodeRecords renders a projected dataset as literal JSON. Marshalling
// slices of plain structs cannot fail; an empty dataset renders as [].
func encodeRecords(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
