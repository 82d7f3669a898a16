package entity

import "time"

// Lead pipeline stages.
const (
	StageNew       = "New"
	StageContacted = "Contacted"
	StageQualified = "Qualified"
	StageConverted = "Converted"
)

// Lead acquisition sources.
const (
	SourceWebsite  = "Website"
	SourceGoogle   = "Google"
	SourceReferral = "Referral"
	SourceOther    = "Other"
)

// Lead scores.
const (
	ScoreCold = "Cold"
	ScoreWarm = "Warm"
	ScoreHot  = "Hot"
)

// Lead is a prospective customer record as the backend returns it.
// The backend uses Mongo-style identifiers, hence the _id tag.
type Lead struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Source    string    `json:"source,omitempty"`
	Stage     string    `json:"stage"`
	Score     string    `json:"score,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func Stages() []string {
	return []string{StageNew, StageContacted, StageQualified, StageConverted}
}

func Sources() []string {
	return []string{SourceWebsite, SourceGoogle, SourceReferral, SourceOther}
}

func Scores() []string {
	return []string{ScoreCold, ScoreWarm, ScoreHot}
}
