package core

import "time"

// Case is one labeled fixture: a question about the source document, the
// reference answer, and the 1-based page that grounds it. Cases are built
// once at load time and only read afterwards; ID is the position in the
// fixture set and is the sole link back to the source triples.
type Case struct {
	ID             int    `json:"id" yaml:"id"`
	Question       string `json:"question" yaml:"question"`
	ExpectedAnswer string `json:"expected_answer" yaml:"expected_answer"`
	ExpectedPage   int    `json:"expected_page" yaml:"expected_page"`
}

// Response is one answerer output plus basic telemetry. Page is the
// 1-based cited page; zero means the answerer declined to cite one.
type Response struct {
	Answer     string        `json:"answer" yaml:"answer"`
	Page       int           `json:"page,omitempty" yaml:"page,omitempty"`
	TokenUsage TokenUsage    `json:"token_usage" yaml:"token_usage"`
	Latency    time.Duration `json:"latency" yaml:"latency"`
}

// TokenUsage captures token accounting for a request.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens" yaml:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens" yaml:"completion_tokens"`
	TotalTokens      int `json:"total_tokens" yaml:"total_tokens"`
}

// ScoredCase is the outcome of scoring one response against its case.
// An answerer failure is recorded in Error with a zero score and no page
// match; it never aborts the run.
type ScoredCase struct {
	Case        Case          `json:"case" yaml:"case"`
	Response    Response      `json:"response" yaml:"response"`
	AnswerScore float64       `json:"answer_score" yaml:"answer_score"`
	PageMatch   bool          `json:"page_match" yaml:"page_match"`
	Error       string        `json:"error,omitempty" yaml:"error,omitempty"`
	Duration    time.Duration `json:"duration" yaml:"duration"`
}

// Report summarizes one evaluation run. Cases are in fixture order.
type Report struct {
	FixtureName  string            `json:"fixture_name" yaml:"fixture_name"`
	AnswererName string            `json:"answerer_name" yaml:"answerer_name"`
	ScorerName   string            `json:"scorer_name" yaml:"scorer_name"`
	Metrics      Metrics           `json:"metrics" yaml:"metrics"`
	Cases        []ScoredCase      `json:"cases" yaml:"cases"`
	Metadata     map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	StartedAt    time.Time         `json:"started_at" yaml:"started_at"`
	FinishedAt   time.Time         `json:"finished_at" yaml:"finished_at"`
}

// Metrics aggregates a run. MeanAnswerScore and PageAccuracy are zero for
// an empty run rather than NaN.
type Metrics struct {
	TotalCases      int           `json:"total_cases" yaml:"total_cases"`
	MeanAnswerScore float64       `json:"mean_answer_score" yaml:"mean_answer_score"`
	PageAccuracy    float64       `json:"page_accuracy" yaml:"page_accuracy"`
	MedianScore     float64       `json:"median_score" yaml:"median_score"`
	P95Score        float64       `json:"p95_score" yaml:"p95_score"`
	TokenUsage      TokenUsage    `json:"token_usage" yaml:"token_usage"`
	AvgLatency      time.Duration `json:"avg_latency" yaml:"avg_latency"`
	P95Latency      time.Duration `json:"p95_latency" yaml:"p95_latency"`
}
