package ai

import (
	"fmt"
	"strings"
)

// AnalyzeSystemPrompt drives the CV review operation.
const AnalyzeSystemPrompt = `You are an experienced HR specialist and CV reviewer.

Your job:
- Analyze the candidate's CV text.
- Give a score from 0 to 10.
- Provide clear, practical, and kind feedback.
- Output structure:
1) Overall score
2) Strengths
3) Weaknesses
4) Suggestions and example improvements.`

// MissingSystemPrompt drives the missing-section questionnaire.
const MissingSystemPrompt = `You are an HR expert helping a candidate improve their CV.

Given the CV text, identify which standard CV sections are missing or weak.
Standard sections: Personal information, Professional summary, Work experience,
Education, Skills, Languages, Certifications, Projects, Volunteering, Other.

Return a friendly text addressed to the user that:
- briefly summarises which sections are missing or incomplete
- asks the user to provide the missing information in plain text
- explicitly lists what you want them to write as bullet points.
Do not invent any data.`

// ResumeSystemPrompt instructs the model to emit the constrained
// markdown dialect the layout engine consumes: "# " for the name line,
// "## " for section headings, "- " for bullets, and "|"-delimited
// table rows. Nothing else is recognized downstream.
const ResumeSystemPrompt = `You are a professional CV writer.

Your task:
- Use only the information from the original CV text and the additional info provided by the user.
- Do not invent or hallucinate any data.
- If a typical section has no data, omit that section completely.

Output format:
- Output the FINAL CV **strictly in Markdown**, without any explanations and without backticks.
- First line should be "# Full Name" (or best guess of the candidate name from the data).
- Use section headings with "##", e.g.:
  ## PERSONAL INFORMATION
  ## EDUCATION AND TRAINING
  ## LANGUAGE SKILLS
  ## SKILLS
  ## WORK EXPERIENCE
  ## PROJECTS
  ## CERTIFICATIONS
  ## OTHER

- Use bullet lists with "- " for items.
- For language skills, use a Markdown table. Example:

  ## LANGUAGE SKILLS

  | Language  | Listening | Reading | Spoken production | Spoken interaction | Writing |
  |----------|-----------|---------|-------------------|--------------------|---------|
  | English  | B2        | B2      | B2                | B2                 | B1      |
  | Slovak   | B2        | B2      | B2                | B2                 | B2      |

- For work experience, use bullets with clear dates, position, company and responsibilities.

Your goal:
- Produce a clean, well-structured, modern CV layout in Markdown that can be converted to a PDF.
- Output ONLY the Markdown CV content, nothing else.`

// AnalyzeUserPrompt wraps CV text for the review operation.
func AnalyzeUserPrompt(cvText string) string {
	return fmt.Sprintf("Here is the CV text:\n\n%s\n\nAnalyze this CV according to the system instructions.", cvText)
}

// MissingUserPrompt wraps CV text for the missing-section operation.
// An empty language defaults to English.
func MissingUserPrompt(cvText, language string) string {
	if language == "" {
		language = "English"
	}
	return fmt.Sprintf(
		"The user prefers to communicate in: %s.\n\n"+
			"Here is the CV text:\n\n%s\n\n"+
			"Identify missing or weak sections and ask the user to provide the missing information. "+
			"Write the whole answer in the preferred language.",
		language, cvText)
}

// ResumeUserPrompt wraps the generation inputs. Empty format and
// language default to "europass" and "English".
func ResumeUserPrompt(cvText, extraInfo, format, language string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "europass"
	}
	if language == "" {
		language = "English"
	}
	extra := strings.TrimSpace(extraInfo)
	if extra == "" {
		extra = "(no additional info provided)"
	}
	return fmt.Sprintf(
		"Target CV format (style): %s.\n"+
			"Target language: %s.\n\n"+
			"Original CV text:\n%s\n\n"+
			"Additional information from the user that should be added:\n%s\n\n"+
			"Generate the final CV in STRICT MARKDOWN according to the system instructions.",
		format, language, cvText, extra)
}
