package entity

import (
	"time"

	"github.com/lib/pq"
)

// KnowledgeArticle is read-only to the triage engine. Popularity
// counters are owned by the knowledge repository on behalf of callers.
type KnowledgeArticle struct {
	ID          string         `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Category    string         `db:"category" json:"category"`
	Keywords    pq.StringArray `db:"keywords" json:"keywords"`
	Problem     string         `db:"problem" json:"problem"`
	Solution    string         `db:"solution" json:"solution"`
	Steps       pq.StringArray `db:"steps" json:"steps"`
	Views       int            `db:"views" json:"views"`
	Helpful     int            `db:"helpful" json:"helpful"`
	NotHelpful  int            `db:"not_helpful" json:"not_helpful"`
	IsPublished bool           `db:"is_published" json:"is_published"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

type MatchDetails struct {
	LexicalScore         float64 `json:"lexical_score"`
	TitleSimilarityPct   int     `json:"title_similarity_pct"`
	ProblemSimilarityPct int     `json:"problem_similarity_pct"`
	KeywordMatchCount    int     `json:"keyword_match_count"`
}

// ScoredArticle is transient search output.
type ScoredArticle struct {
	KnowledgeArticle
	Relevance    float64      `json:"relevance"`
	MatchDetails MatchDetails `json:"match_details"`
}
