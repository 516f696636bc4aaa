package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCandidateSkillsPrompt creates prompt for extracting categorized skills from a resume
func (pb *PromptBuilder) BuildCandidateSkillsPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert resume parser. Your task is to extract all skills from the provided text.
Group the skills logically into categories like TECHNICAL, SOFT in the specified section of the text. Do not go into the Project section to extract.

Resume Text:
---
%s
---

Return your response in the following JSON format:
{
  "skill_sets": [
    {"category": "TECHNICAL", "skills": ["<skill>", "..."]},
    {"category": "SOFT", "skills": ["<skill>", "..."]}
  ]
}`, resumeText)
}

// BuildRequiredSkillsPrompt creates prompt for extracting required skills from a job description
func (pb *PromptBuilder) BuildRequiredSkillsPrompt(jobDescription string) string {
	return fmt.Sprintf(`Act as an expert technical recruiter and resume parser.
Your task is to STRICTLY extract and categorize the skills mentioned in the provided job description.
DO NOT add any skill yourself that is not explicitly present in the job description.

Job Description:
---
%s
---

Identify the essential skills and separate them into 'technical_skills' and 'soft_skills'.

Return your response in the following JSON format:
{
  "technical_skills": ["<specific technical hard skill>", "..."],
  "soft_skills": ["<essential soft skill>", "..."]
}`, jobDescription)
}

// BuildContentScorePrompt creates prompt for scoring resume content quality
func (pb *PromptBuilder) BuildContentScorePrompt(resumeText, jobTitle string) string {
	return fmt.Sprintf(`Act as a strict Resume ATS (Applicant Tracking System).
Analyze the resume text provided below for the role of: %s.

Evaluate the **content quality** based on:
1. Relevance to the target job (%s)
2. Presence of quantified achievements (metrics, numbers)
3. Clarity and use of action verbs
4. Absence of spelling/grammar errors (Score lower if found)

Resume Text:
---
%s
---

Based on this analysis, provide a score (0-100), the reasoning, missing keywords, and exactly 3 actionable tips for improvement.

Return your response in the following JSON format:
{
  "score": <0-100>,
  "reasoning": "<brief explanation of why this score was given>",
  "missing_keywords": ["<important keyword missing from the text>", "..."],
  "improvement_tips": ["<tip 1>", "<tip 2>", "<tip 3>"]
}`, jobTitle, jobTitle, resumeText)
}

// BuildStructureScorePrompt creates prompt for scoring resume structure quality
func (pb *PromptBuilder) BuildStructureScorePrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert Resume Structure Evaluator.

Analyze the provided resume text for visual hierarchy and logical flow, focusing on the text output, not the original PDF/DOCX layout.
Criteria:
- Logical section ordering (Expected: Contact -> Summary -> Experience -> Projects -> Skills -> Education)
- Clear distinction between sections (implied by proper use of newlines)
- Overall readability and flow.

Resume Text:
---
%s
---

Assign a score (0-100) and provide brief reasoning based on the above criteria.

Return your response in the following JSON format:
{
  "score": <0-100>,
  "reasoning": "<brief explanation of why this score was given>"
}`, resumeText)
}

// BuildSkillOptimizationPrompt creates prompt for suggesting skills to add
func (pb *PromptBuilder) BuildSkillOptimizationPrompt(currentSkills, jobRequirements, jobTitle string) string {
	return fmt.Sprintf(`Act as an experienced Technical Recruiter and Hiring Manager specializing in the role of %s.

Your task is to evaluate the candidate's profile by comparing their current skills with the job requirements.

Objectives:
Identify **5 key skills the candidate should ADD** to better align with the role.
- Include a balanced mix of **technical skills** and **soft skills**.
- Focus on high-impact, industry-relevant, and role-specific skills.

Context:
- Current Skills: %s
- Job Requirements: %s

Guidelines:
- Be concise, realistic, and role-specific.
- Avoid generic or obvious recommendations.
- Justify each recommendation with a short, clear rationale.

Return your response in the following JSON format:
{
  "skills_to_add": ["<relevant missing skill>", "..."]
}`, jobTitle, currentSkills, jobRequirements)
}

// BuildStructureFeedbackPrompt creates prompt for actionable structure feedback
func (pb *PromptBuilder) BuildStructureFeedbackPrompt(resumeText string) string {
	return fmt.Sprintf(`Act as an expert Resume Structure Evaluator. Your sole focus is the **overall logical organization** and flow of the document based on the extracted text.

**STRICT GUIDELINES:**
1. **IGNORE EXTRACTION ARTIFACTS:** Do not comment on specific formatting issues like missing spaces, hyphenation, or incorrect link formats. Assume these are errors caused by the PDF/DOCX text extraction process, not the candidate's fault.
2. **Focus Scope:** Evaluate only the following structural components:
   * **Section Order:** Is the order logical (e.g., Contact -> Summary -> Experience -> Skills -> Education)?
   * **Section Separation:** Are the sections clearly delineated?
   * **Consistency:** Is the visual flow consistent (e.g., proper use of capitalization for headings, date format consistency)?

Resume Text:
---
%s
---

Provide exactly 4 actionable key points for improvement based ONLY on the structural criteria above.
If the structure is perfect, all 4 points must reflect positive feedback. Don't write long sentences. Give the answer in short phrases.
Set 'has_issues' to false only if no significant structural improvements are needed.

Return your response in the following JSON format:
{
  "key_points": ["<point 1>", "<point 2>", "<point 3>", "<point 4>"],
  "has_issues": <true|false>
}`, resumeText)
}

// BuildContentFeedbackPrompt creates prompt for actionable content feedback
func (pb *PromptBuilder) BuildContentFeedbackPrompt(resumeText string) string {
	return fmt.Sprintf(`Act as a Senior Resume Editor. Review the resume content strictly for **Quality, Clarity, and Professional Relevance**.

**STRICT GUIDELINES:**
1. **Scope Focus:** Analyze the substance of the experience and project descriptions. Do NOT comment on Tone/Style, Grammar/Spelling (unless severe), or overall structure/layout.
2. **Prioritize Quantification (STAR/CAR):** Focus heavily on whether the bullet points describe accomplishments using metrics, numbers, and impact, rather than just listing duties.
3. **Ignore Artifacts:** Ignore minor spacing, punctuation, or hyphenation errors; assume they are due to text extraction and focus on the *meaning of the content*.

**Focus Criteria:**
1. **Clarity and Action:** Are the ideas clear, and does the text consistently use strong action verbs at the start of bullet points?
2. **Quantification (The "How Much"):** Does the candidate quantify their achievements with numbers, percentages, or scale?
3. **Relevance and Depth:** Is the content relevant to the implied target roles, and is there enough detail in the descriptions?
4. **Conciseness and Flow:** Is the content free from unnecessary jargon, redundancies, and passive language?

Don't give the answer in long sentences. Give the answer in short phrases.

Resume Text:
---
%s
---

Provide exactly 4 actionable key points for improvement based ONLY on the Content Quality criteria above.

Return your response in the following JSON format:
{
  "key_points": ["<point 1>", "<point 2>", "<point 3>", "<point 4>"],
  "has_issues": <true|false>
}`, resumeText)
}

// BuildToneStyleFeedbackPrompt creates prompt for tone and style feedback
func (pb *PromptBuilder) BuildToneStyleFeedbackPrompt(resumeText string) string {
	return fmt.Sprintf(`Act as an expert copywriter and career coach. Review the resume text specifically for **Tone and Style** only.

**STRICT GUIDELINES:**
1. **Scope Focus:** Analyze the use of language, formality, and voice. Do NOT comment on structural ordering, missing sections, or job-specific skills.
2. **Ignore Artifacts:** Ignore minor spacing, punctuation, or hyphenation errors; assume they are due to text extraction and focus on the *writing style*.

**Focus Criteria:**
1. **Professionalism and Formality:** Is the language appropriate for a workplace setting?
2. **Active Voice Usage (vs Passive Voice):** Is the text driven by action verbs (e.g., "Led a team") rather than passive constructions (e.g., "The team was led by me")?
3. **Impactful Language:** Does the writing use strong, engaging vocabulary (e.g., "Pioneered," "Accelerated") instead of weak adjectives (e.g., "Good," "Nice")?
4. **Consistency in Style:** Is the style (e.g., use of present/past tense, bullet format) uniform throughout the document?

Don't give the answer in long sentences. Give the answer in short phrases.

Resume Text:
---
%s
---

Provide exactly 4 actionable key points for improvement based ONLY on the Tone and Style criteria above.

Return your response in the following JSON format:
{
  "key_points": ["<point 1>", "<point 2>", "<point 3>", "<point 4>"],
  "has_issues": <true|false>
}`, resumeText)
}

// BuildImprovementSummaryPrompt creates prompt for the score-keyed improvement summary
func (pb *PromptBuilder) BuildImprovementSummaryPrompt(score int, resumeText, jobTitle string) string {
	return fmt.Sprintf(`You are an ATS Score Report Generator. Analyze the provided resume text against the requirements for a %s.

**STRICT GUIDELINES:**
Ignore minor spacing, punctuation, or hyphenation errors; assume they are due to text extraction and focus on the *writing style*.

Given the score of the resume from 0-100 based on keyword match, skill relevance, and standard formatting adherence,
provide EXACTLY 4 highly critical, actionable points for improvement. Categorize these points by Technical Skills, Education/Training Gaps, Formatting/Structure Issues, and Missing Key Sections.

---
Resume Score: %d
Job Title: %s
Resume Text:
%s
---

Your response must be concise and formatted for a critical summary.
Don't give the answer in long sentences. Give the answer in short phrases.

Return your response in the following JSON format:
{
  "key_points": ["<point 1>", "<point 2>", "<point 3>", "<point 4>"]
}`, jobTitle, score, jobTitle, resumeText)
}
