package domain

// Sentiment is a single sentiment class label
type Sentiment string

// sentiment classes
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentUnknown  Sentiment = "unknown"
)

// NoRelevantDiscussions is the terminal consensus value returned when the
// relevance filter discards every input comment. It is a valid outcome,
// not an error.
const NoRelevantDiscussions = "no relevant discussions found"

// ConsensusResult is the aggregate sentiment verdict for a topic across a
// batch of comments. Constructed fresh per invocation, immutable afterwards.
type ConsensusResult struct {
	Topic         string            `json:"topic"`
	Consensus     string            `json:"consensus"`
	Relevant      int               `json:"relevant"`
	OriginalTotal int               `json:"original_total"`
	Confidence    float64           `json:"confidence"`
	Breakdown     map[Sentiment]int `json:"breakdown,omitempty"`
	Explanation   string            `json:"explanation,omitempty"`
}
