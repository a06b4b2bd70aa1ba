package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAssessmentPrompt creates the instruction document for one quiz
// generation run. The model keeps no memory between calls, so the prompt
// must be fully self-contained: the candidate-analysis rules, the gap
// analysis, the question style per experience level, and the exact JSON
// output contract all travel with every request.
func (pb *PromptBuilder) BuildAssessmentPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`As an expert AI hiring assistant, your task is to generate interview-style multiple-choice questions (MCQs).

**Step 1: Analyze the Candidate**
First, read the candidate's resume and determine the following:
- Candidate's full name.
- Candidate's email address.
- Candidate's phone number.
- Total years of professional experience.
- Experience Level: classify the candidate as 'Beginner' (0-2 years), 'Medium' (more than 2 and up to 4 years), or 'Senior' (more than 4 years).

**Step 2: Analyze the Skill Gap**
Next, compare the resume against the job description. Identify key skills, technologies, or responsibilities mentioned in the job description that are either MISSING or WEAKLY represented in the resume.

**Step 3: Generate Questions**
Based on the skill gaps from Step 2 and the Experience Level from Step 1, generate 15 to 20 multiple-choice questions.
- For 'Beginner' level, ask fundamental, definition-based and basic coding questions.
- For 'Medium' level, ask practical application, scenario-based and system design questions.
- For 'Senior' level, ask complex, strategic and architectural questions.
Each question must have exactly 4 options labeled A, B, C and D, a correct answer that is one of those labels, and a brief explanation of why the correct answer is right.

**Context:**
---
**Job Description:**
%s
---
**Candidate's Resume:**
%s
---

**Output Instructions:**
Return a single, valid JSON object. Do NOT include any other text or markdown formatting (like %s). The JSON object must contain exactly two keys: "candidate_details" and "questions".

**JSON Output Format Example:**
{
  "candidate_details": {
    "name": "Priya Sharma",
    "email": "priya.sharma@example.com",
    "phone": "9876543210",
    "total_experience": "4 years",
    "experience_level": "Medium"
  },
  "questions": [
    {
      "question": "In a microservices architecture, what is the primary role of an API Gateway?",
      "options": {
        "A": "To directly handle business logic for each service",
        "B": "To act as a single entry point, handling routing, authentication, and rate limiting",
        "C": "To store and manage data for all microservices",
        "D": "To replace the need for service discovery"
      },
      "correct_answer": "B",
      "explanation": "An API Gateway abstracts the backend services and provides a unified, secure interface for clients."
    }
  ]
}`,
		jobDescription, resumeText, "```json")
}
