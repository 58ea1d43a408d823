package analyzer

import "regexp"

// Curated vocabularies used by the heuristic analyzers. Bilingual
// (English + Indonesian) where the source documents are.

// technicalTerms is the curated technical-skill vocabulary: languages,
// frameworks, platforms, and tools. Entries are stored in their
// punctuation-stripped lowercase form ("node.js" -> "nodejs").
var technicalTerms = map[string]struct{}{
	// Languages
	"python": {}, "java": {}, "javascript": {}, "typescript": {}, "golang": {},
	"ruby": {}, "rust": {}, "kotlin": {}, "swift": {}, "scala": {},
	"php": {}, "cpp": {}, "csharp": {},
	// Frameworks and libraries
	"react": {}, "reactjs": {}, "angular": {}, "vue": {}, "vuejs": {},
	"nodejs": {}, "node": {}, "django": {}, "flask": {}, "spring": {},
	"laravel": {}, "rails": {}, "express": {}, "nextjs": {}, "svelte": {},
	"fastapi": {}, "dotnet": {},
	// Data and infrastructure
	"postgresql": {}, "postgres": {}, "mysql": {}, "mongodb": {}, "redis": {},
	"elasticsearch": {}, "kafka": {}, "rabbitmq": {}, "graphql": {},
	"docker": {}, "kubernetes": {}, "terraform": {}, "ansible": {},
	"jenkins": {}, "linux": {},
	// Platforms and practices
	"aws": {}, "azure": {}, "gcp": {}, "firebase": {}, "heroku": {},
	"git": {}, "github": {}, "gitlab": {}, "cicd": {}, "devops": {},
	"microservices": {}, "restful": {}, "oauth": {}, "grpc": {},
	// Analytics and product tooling
	"tableau": {}, "powerbi": {}, "excel": {}, "figma": {}, "jira": {},
	"salesforce": {}, "hadoop": {}, "spark": {}, "tensorflow": {}, "pytorch": {},
}

// actionVerbs is the curated action-verb vocabulary for achievement-style
// phrasing
var actionVerbs = map[string]struct{}{
	"develop": {}, "developed": {}, "manage": {}, "managed": {},
	"lead": {}, "led": {}, "build": {}, "built": {}, "create": {},
	"created": {}, "design": {}, "designed": {}, "implement": {},
	"implemented": {}, "optimize": {}, "optimized": {}, "improve": {},
	"improved": {}, "deliver": {}, "delivered": {}, "launch": {},
	"launched": {}, "maintain": {}, "maintained": {}, "coordinate": {},
	"coordinated": {}, "analyze": {}, "analyzed": {}, "automate": {},
	"automated": {}, "architect": {}, "architected": {}, "migrate": {},
	"migrated": {}, "mentor": {}, "mentored": {}, "reduce": {},
	"reduced": {}, "increase": {}, "increased": {},
	// Indonesian
	"mengembangkan": {}, "membangun": {}, "mengelola": {}, "memimpin": {},
	"merancang": {}, "meningkatkan": {}, "mengoptimalkan": {},
	"menganalisis": {}, "mengimplementasikan": {},
}

// certificateIndicators flag a certificate document rather than a resume
var certificateIndicators = []string{
	"certificate", "certification", "certified", "issued by",
	"completion date", "date of completion", "successfully completed",
	"has completed", "course completion", "credential",
	"sertifikat", "sertifikasi", "diterbitkan oleh", "tanggal penyelesaian",
	"telah menyelesaikan", "dinyatakan lulus",
}

// resumeIndicators flag a conventional resume document
var resumeIndicators = []string{
	"experience", "education", "skills", "contact", "employment",
	"summary", "objective", "references",
	"pengalaman", "pendidikan", "keahlian", "kontak", "riwayat",
}

// projectVocabulary signals implementation and delivery work in the
// quantitative-impact analyzer
var projectVocabulary = []string{
	"project", "implemented", "developed", "built", "launched",
	"delivered", "deployed", "shipped",
	"proyek", "membangun", "mengembangkan", "meluncurkan",
}

// summaryVocabulary identifies summary-like prose when no explicit summary
// header exists
var summaryVocabulary = []string{
	"professional", "experienced", "passionate", "specializing",
	"specialized", "background in", "years of experience", "skilled in",
	"dedicated", "motivated", "berpengalaman", "profesional",
	"berdedikasi", "berfokus pada",
}

// genericStockPhrases are penalized in summary quality scoring
var genericStockPhrases = []string{
	"hard worker", "hard-working", "team player", "fast learner",
	"go-getter", "think outside the box", "self-starter",
	"pekerja keras", "cepat belajar", "mudah beradaptasi",
}

// Quantified-achievement patterns: percentages, counts with "+", currency
// amounts, and duration expressions
var quantifiedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(\.\d+)?\s?%`),
	regexp.MustCompile(`\d+\s?\+`),
	regexp.MustCompile(`(?i)([$€£]|rp\.?\s?)\d[\d,.]*`),
	regexp.MustCompile(`(?i)\d[\d,.]*\s?(juta|miliar|million|billion|[km])\b`),
	regexp.MustCompile(`(?i)\d+\s+(years?|months?|weeks?|tahun|bulan|minggu)\b`),
}
