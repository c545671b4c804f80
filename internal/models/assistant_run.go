package models

import (
	"strings"
	"time"

	"github.com/aliyacapital/seriesdash/internal/errors"
)

// AssistantRun records one natural-language question put to the assistant
// and what became of it.
type AssistantRun struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(255);default:gen_random_uuid()"`
	UserEmail string    `json:"user_email" gorm:"column:user_email;type:varchar(255);not null"`
	Question  string    `json:"question" gorm:"column:question;type:text;not null"`
	Provider  string    `json:"provider" gorm:"column:provider;type:varchar(50);not null"` // openai | anthropic | gemini
	Model     string    `json:"model" gorm:"column:model;type:varchar(100)"`
	SQL       *string   `json:"sql" gorm:"column:sql;type:text"`
	Status    string    `json:"status" gorm:"column:status;type:varchar(20);not null;default:'pending'"` // pending|succeeded|rejected|failed
	Error     *string   `json:"error" gorm:"column:error;type:text"`
	RowCount  int       `json:"row_count" gorm:"column:row_count;not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;autoUpdateTime"`
}

func (AssistantRun) TableName() string { return "assistant_runs" }

const (
	RunStatusPending   = "pending"
	RunStatusSucceeded = "succeeded"
	RunStatusRejected  = "rejected"
	RunStatusFailed    = "failed"
)

// QueryResult is the raw output of an executed query. Columns keep the order
// the database returned them in.
type QueryResult struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// AssistantRequest is the body of an assistant query.
type AssistantRequest struct {
	Question string `json:"question"`
	// Summarize asks for a short prose summary of the result.
	Summarize bool `json:"summarize"`
}

// MaxQuestionLength bounds the text forwarded to the language model.
const MaxQuestionLength = 2000

func (r *AssistantRequest) Validate() error {
	q := strings.TrimSpace(r.Question)
	if q == "" {
		return &errors.ErrValidation{Field: "question", Message: "question is required"}
	}
	if len(q) > MaxQuestionLength {
		return &errors.ErrValidation{Field: "question", Message: "question is too long"}
	}
	return nil
}

// AssistantAnswer is the formatted result shown to the user.
type AssistantAnswer struct {
	RunID   string     `json:"run_id"`
	SQL     string     `json:"sql"`
	Columns []string   `json:"columns"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	NoRows  bool       `json:"no_rows"`
	Message string     `json:"message,omitempty"`
	Summary string     `json:"summary,omitempty"`
}
