package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	KeywordInsight      string
	CompletenessInsight string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	KeywordInsight      string
	CompletenessInsight string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	KeywordInsight: `You are an expert ATS (Applicant Tracking System) analyst. Your core principles are:

- Judge keyword relevance only against requirements actually stated in the job posting
- Never invent requirements that are not in the job description
- Provide honest, evidence-based scoring
- Every issue you report must name the specific missing or matched terms

Your expertise includes:
- ATS keyword matching behavior
- Technical skill taxonomies across industries
- Job posting terminology in English and Indonesian`,

	CompletenessInsight: `You are an expert resume reviewer focused on structural completeness and writing quality. Your role is to:

- Identify missing resume sections and contact details
- Assess spelling and grammar quality
- Report each missing element by name
- Provide concrete, actionable recommendations

You review documents written in English or Indonesian and must handle both.`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	KeywordInsight: `Please evaluate how well the following resume matches the keywords and requirements of the target job.

**Tasks:**

1. **Relevance Score** (0-100):
   Score how well the resume's terminology matches the job posting. Consider exact keyword matches, technical skill matches, and action verbs.

2. **Issues**:
   List concrete gaps - which important job keywords are absent from the resume. Name the terms.

3. **Recommendations**:
   Suggest specific wording changes that would close the gaps without inventing experience the candidate does not have.

**Job Title:**
%s

**Job Description:**
-----
%s
-----

**Resume:**
-----
%s
-----`,

	CompletenessInsight: `Please review the following resume for structural completeness and writing quality.

**Tasks:**

1. **Completeness Score** (0-100):
   Score how complete the document is as a resume. Penalize missing sections (contact details, summary, experience, education, skills).

2. **Spelling Score** (0-100) and **Grammar Score** (0-100):
   Assess writing quality. The document may be written in English or Indonesian.

3. **Missing Elements**:
   List every expected resume element that is absent, by name (e.g. "email", "education section").

4. **Issues and Recommendations**:
   Describe each problem found and how to fix it.

5. **High Urgency**:
   Set highUrgency to true only if the document is fundamentally unusable as a resume (e.g. it is a certificate or a fragment).

**Document:**
-----
%s
-----`,
}

// PromptConfig holds configuration for customizable prompts
type PromptConfig struct {
	SystemPrompts SystemPrompts `json:"systemPrompts"`
	UserPrompts   UserPrompts   `json:"userPrompts"`
}

// GetDefaultPromptConfig returns the default prompt configuration
func GetDefaultPromptConfig() PromptConfig {
	return PromptConfig{
		SystemPrompts: DefaultSystemPrompts,
		UserPrompts:   DefaultUserPrompts,
	}
}
