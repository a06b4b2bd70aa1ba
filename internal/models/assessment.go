package models

// OptionLabels is the fixed set of answer labels every question must carry.
var OptionLabels = []string{"A", "B", "C", "D"}

type CandidateProfile struct {
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	TotalExperience string         `json:"total_experience"`
	ExperienceLevel ExperienceTier `json:"experience_level"`
}

type QuizQuestion struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
}

// AssessmentResult is the validated output of one pipeline run: the
// candidate profile the model extracted from the resume and the quiz
// targeting the candidate's skill gaps.
type AssessmentResult struct {
	CandidateDetails CandidateProfile `json:"candidate_details"`
	Questions        []QuizQuestion   `json:"questions"`
}
