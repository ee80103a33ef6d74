package domain

import "time"

type RecipeAction string

const (
	ActionCreated RecipeAction = "created"
	ActionViewed  RecipeAction = "viewed"
	ActionSaved   RecipeAction = "saved"
	ActionUnsaved RecipeAction = "unsaved"
)

type RecipeEvent struct {
	Action    RecipeAction `json:"action"`
	RecipeID  string       `json:"recipeId"`
	UserID    string       `json:"userId,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// ImportStats holds statistics about a catalog import.
type ImportStats struct {
	Fetched   int
	Imported  int
	Skipped   int
	Errors    int
	Published int
	Duration  time.Duration
}
