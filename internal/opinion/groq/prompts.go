package groq

import (
	"fmt"
	"strings"
	"time"
)

const sectionSystemPrompt = `You are an AI-powered ATS (applicant tracking system) resume evaluator that delivers detailed, professional analysis of a user's resume. You must provide details in the given format only.`

func sectionUserPrompt(resumeText string, now time.Time) string {
	currentMonth := strings.ToLower(now.Format("Jan/2006"))
	return fmt.Sprintf(`Extract the following details from the resume:
- Education
- Experience
- Projects
Format =>
Education:
<education details, one line per entry>
Experience:
<experience details with from and to date and a brief summary, one line per entry>
Experience Dates:
<from date - to date, one numbered entry per experience>
Projects:
<project name and summary, one line per entry>
Notes (for you only, do not print them):
1) Every date must be "<first 3 letters of month>/<4-digit year>", e.g. mar/2024, jan/2020.
1.1) Convert dates the user wrote differently into that format.
1.2) If an experience is ongoing ("Present" or "Current"), replace the end with the current month, i.e. %s.
2) Add no details beyond what is asked.
3) Prefix each detail line with "- ". Section headings get no prefix symbol.
4) In the Experience Dates section only, number each entry, e.g. "1. jan/2024 - jun/2024".
%s`, currentMonth, resumeText)
}

const evaluateSystemPrompt = `You are an AI-powered ATS (applicant tracking system) resume evaluator. Evaluate the resume against industry standards for ATS compatibility, score it across multiple dimensions, and provide detailed recommendations for improvement.`

func evaluateUserPrompt(resumeText, jobRequirements string) string {
	return fmt.Sprintf(`1. PRIMARY OBJECTIVES
- Calculate an Overall ATS Score (0-100) adapted to the user's industry and job role. Format: Overall ATS Score: (0-100)/100
- Break the score into weighted categories:
  - Keyword Optimization (25%%) - relevance, density, and placement of industry-specific terms.
  - Work Experience & Achievements (20%%) - action verbs, quantifiable impact, chronological structure.
  - Skills & Competencies (15%%) - balance of hard and soft skills, alignment with the role.
  - Education & Certifications (10%%) - completeness, formatting, relevance.
  - Grammar & Consistency (10%%) - tense usage, spelling, punctuation, readability.
- Explain and recommend actionable improvements for the user's role and industry.
- [MUST] Output raw text with no word formatting; the output is processed further with regular expressions.

2. OUTPUT FORMAT
For every category print exactly:
<number>. <category name> (<weight>)
- Score: <score>/<weight>
- Strength: <one line>
- Weakness: <one line>
- Recommendations: <one line>

Never give vague feedback; every improvement step must be concrete and tied to the resume content.

Example output:
Resume Evaluation Report for <candidate name>

Overall ATS Score: 82/100

Category Breakdown:

1. Keyword Optimization (25%%)
- Score: 20/25
- Strength: The resume includes several relevant keywords such as Python, Pandas, Power BI, and Machine Learning.
- Weakness: Keywords like "Data Visualization" and "NLP" are mentioned but not emphasized.
- Recommendations: Add more emphasis on the keywords the job description repeats.

## JOB DESCRIPTION FOR ROLE ##
%s
Here is the content of the resume:
%s`, jobRequirements, resumeText)
}
