package sentiment

import (
	"strings"

	"finance-qa-agent/internal/domain/entity"
)

// Word lists mirror the ones the news workers were tuned against. Matching is
// substring-based on purpose: "gains" and "dropped" should still count.
var positiveWords = []string{
	"gain",
	"growth",
	"positive",
	"surge",
	"beat",
	"up",
	"profit",
}

var negativeWords = []string{
	"loss",
	"drop",
	"negative",
	"down",
	"miss",
	"decline",
}

// Analyzer scores text with a fixed financial-news lexicon.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Analyze(text string) entity.Sentiment {
	lower := strings.ToLower(text)

	score := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			score--
		}
	}

	verdict := entity.SentimentNeutral
	switch {
	case score > 0:
		verdict = entity.SentimentPositive
	case score < 0:
		verdict = entity.SentimentNegative
	}

	return entity.Sentiment{
		Verdict: verdict,
		Score:   score,
	}
}

// AnalyzeArticles scores the combined titles and snippets of a news set.
func (a *Analyzer) AnalyzeArticles(articles []entity.Article) entity.Sentiment {
	var sb strings.Builder
	for _, article := range articles {
		sb.WriteString(article.Title)
		sb.WriteString(" ")
		sb.WriteString(article.Summary)
		sb.WriteString(" ")
	}
	return a.Analyze(sb.String())
}
