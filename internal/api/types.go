package api

import "encoding/json"

// QueryParams holds optional query string parameters.
type QueryParams map[string]string

// --- Test cases ---

// TestCase is one evaluation test case. Relations reference other
// collections by name, not id.
type TestCase struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	UserPrompts      string `json:"user_prompts"`
	SystemPrompts    string `json:"system_prompts"`
	ExpectedResponse string `json:"expected_response"`
	StrategyName     string `json:"strategy_name"`
	DomainName       string `json:"domain_name"`
	LanguageName     string `json:"language_name"`
	LLMJudgePrompt   string `json:"llm_judge_prompt"`
	Source           string `json:"source"`
	Benchmark        string `json:"benchmark"`
	URL              string `json:"url"`
}

// CreateTestCaseInput creates a test case. LLMJudgePrompt is always
// present in the payload: null unless the chosen strategy requires one.
type CreateTestCaseInput struct {
	Name             string  `json:"name"`
	UserPrompts      string  `json:"user_prompts"`
	SystemPrompts    string  `json:"system_prompts,omitempty"`
	ExpectedResponse string  `json:"expected_response,omitempty"`
	StrategyName     string  `json:"strategy_name"`
	DomainName       string  `json:"domain_name"`
	LanguageName     string  `json:"language_name"`
	LLMJudgePrompt   *string `json:"llm_judge_prompt"`
	Source           string  `json:"source,omitempty"`
	Benchmark        string  `json:"benchmark,omitempty"`
	URL              string  `json:"url,omitempty"`
	Notes            string  `json:"notes"`
}

// UpdateTestCaseInput carries only the fields that changed. Notes is the
// mandatory audit justification and is never echoed back by the server.
// LLMJudgePrompt is raw JSON so clearing the judge prompt can send an
// explicit null instead of an empty string.
type UpdateTestCaseInput struct {
	Name             *string         `json:"name,omitempty"`
	UserPrompts      *string         `json:"user_prompts,omitempty"`
	SystemPrompts    *string         `json:"system_prompts,omitempty"`
	ExpectedResponse *string         `json:"expected_response,omitempty"`
	StrategyName     *string         `json:"strategy_name,omitempty"`
	DomainName       *string         `json:"domain_name,omitempty"`
	LanguageName     *string         `json:"language_name,omitempty"`
	LLMJudgePrompt   json.RawMessage `json:"llm_judge_prompt,omitempty"`
	Source           *string         `json:"source,omitempty"`
	Benchmark        *string         `json:"benchmark,omitempty"`
	URL              *string         `json:"url,omitempty"`
	Notes            string          `json:"notes"`
}

// --- Prompts ---

type Prompt struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Text         string `json:"text"`
	SystemText   string `json:"system_text"`
	LanguageName string `json:"language_name"`
	Description  string `json:"description"`
}

type CreatePromptInput struct {
	Name         string `json:"name"`
	Text         string `json:"text"`
	SystemText   string `json:"system_text,omitempty"`
	LanguageName string `json:"language_name,omitempty"`
	Description  string `json:"description,omitempty"`
	Notes        string `json:"notes"`
}

type UpdatePromptInput struct {
	Name         *string `json:"name,omitempty"`
	Text         *string `json:"text,omitempty"`
	SystemText   *string `json:"system_text,omitempty"`
	LanguageName *string `json:"language_name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Notes        string  `json:"notes"`
}

// --- Responses ---

type Response struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Text         string `json:"text"`
	ResponseType string `json:"response_type"`
	LanguageName string `json:"language_name"`
	Source       string `json:"source"`
}

type CreateResponseInput struct {
	Name         string `json:"name"`
	Text         string `json:"text,omitempty"`
	ResponseType string `json:"response_type,omitempty"`
	LanguageName string `json:"language_name,omitempty"`
	Source       string `json:"source,omitempty"`
	Notes        string `json:"notes"`
}

type UpdateResponseInput struct {
	Name         *string `json:"name,omitempty"`
	Text         *string `json:"text,omitempty"`
	ResponseType *string `json:"response_type,omitempty"`
	LanguageName *string `json:"language_name,omitempty"`
	Source       *string `json:"source,omitempty"`
	Notes        string  `json:"notes"`
}

// --- Targets ---

type Target struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	URL           string   `json:"url"`
	DomainName    string   `json:"domain_name"`
	LanguageNames []string `json:"language_names"`
	Description   string   `json:"description"`
}

type CreateTargetInput struct {
	Name          string   `json:"name"`
	URL           string   `json:"url"`
	DomainName    string   `json:"domain_name,omitempty"`
	LanguageNames []string `json:"language_names,omitempty"`
	Description   string   `json:"description,omitempty"`
	Notes         string   `json:"notes"`
}

type UpdateTargetInput struct {
	Name          *string   `json:"name,omitempty"`
	URL           *string   `json:"url,omitempty"`
	DomainName    *string   `json:"domain_name,omitempty"`
	LanguageNames *[]string `json:"language_names,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Notes         string    `json:"notes"`
}

// --- Domains ---

type Domain struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateDomainInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"notes"`
}

type UpdateDomainInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Notes       string  `json:"notes"`
}

// --- Strategies ---

type Strategy struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	RequiresLLMPrompt bool   `json:"requires_llm_prompt"`
}

type CreateStrategyInput struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	RequiresLLMPrompt bool   `json:"requires_llm_prompt"`
	Notes             string `json:"notes"`
}

type UpdateStrategyInput struct {
	Name              *string `json:"name,omitempty"`
	Description       *string `json:"description,omitempty"`
	RequiresLLMPrompt *bool   `json:"requires_llm_prompt,omitempty"`
	Notes             string  `json:"notes"`
}

// --- Metrics ---

type Metric struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DomainName  string `json:"domain_name"`
}

type CreateMetricInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DomainName  string `json:"domain_name,omitempty"`
	Notes       string `json:"notes"`
}

type UpdateMetricInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	DomainName  *string `json:"domain_name,omitempty"`
	Notes       string  `json:"notes"`
}

// --- Languages ---

type Language struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type CreateLanguageInput struct {
	Name  string `json:"name"`
	Code  string `json:"code,omitempty"`
	Notes string `json:"notes"`
}

type UpdateLanguageInput struct {
	Name  *string `json:"name,omitempty"`
	Code  *string `json:"code,omitempty"`
	Notes string  `json:"notes"`
}

// --- Test plans ---

type TestPlan struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TargetName  string   `json:"target_name"`
	MetricNames []string `json:"metric_names"`
	Status      string   `json:"status"`
}

type CreateTestPlanInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	TargetName  string   `json:"target_name,omitempty"`
	MetricNames []string `json:"metric_names,omitempty"`
	Status      string   `json:"status,omitempty"`
	Notes       string   `json:"notes"`
}

type UpdateTestPlanInput struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	TargetName  *string   `json:"target_name,omitempty"`
	MetricNames *[]string `json:"metric_names,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Notes       string    `json:"notes"`
}

// --- Users ---

type User struct {
	ID       int    `json:"id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

type CreateUserInput struct {
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
	Notes    string `json:"notes"`
}

type UpdateUserInput struct {
	UserName *string `json:"user_name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Email    *string `json:"email,omitempty"`
	Notes    string  `json:"notes"`
}

// --- Session ---

// CurrentUser is the authenticated caller as reported by the server. It
// drives permission gating only and is never cached across sessions.
type CurrentUser struct {
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// ActivityEntry is one row of a user's audit history.
type ActivityEntry struct {
	Description string `json:"description"`
	Type        string `json:"type"`
	TestCaseID  int    `json:"testCaseId"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
}
