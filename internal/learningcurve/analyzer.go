package learningcurve

import (
	"sort"
	"time"

	"github.com/casetalk/casetalk/internal/attempt"
)

// Trend is the direction of a student's scores across attempts.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Tolerance is the score-point band within which the trend counts as
// stable.
const Tolerance = 5

// Point is one scored attempt on the curve.
type Point struct {
	AttemptNumber    int       `json:"attemptNumber"`
	Score            int       `json:"score"`
	TimeSpentMinutes float64   `json:"timeSpentMinutes"`
	Date             time.Time `json:"date"`
}

// Curve is the derived view over a (student, case) attempt series.
// Trend is recomputed on every read, never stored authoritatively.
type Curve struct {
	Points             []Point `json:"points"`
	Trend              Trend   `json:"trend"`
	PredictedNextScore *int    `json:"predictedNextScore,omitempty"`
}

// PointsFromAttempts builds curve points from sealed attempts, ordered
// by attempt number. Unscored (abandoned) attempts are skipped.
func PointsFromAttempts(attempts []*attempt.Attempt) []Point {
	points := make([]Point, 0, len(attempts))
	for _, a := range attempts {
		if a.Score == nil {
			continue
		}
		points = append(points, Point{
			AttemptNumber:    a.AttemptNumber,
			Score:            *a.Score,
			TimeSpentMinutes: float64(a.TotalTimeSeconds) / 60,
			Date:             a.StartedAt,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].AttemptNumber < points[j].AttemptNumber
	})
	return points
}

// Analyze computes the trend and next-score projection for an ordered
// point series.
func Analyze(points []Point) Curve {
	return Curve{
		Points:             points,
		Trend:              ComputeTrend(points),
		PredictedNextScore: PredictNext(points),
	}
}

// ComputeTrend compares the mean of the latest half of the scores
// against the mean of the earliest half (both halves ⌈n/2⌉ wide, so
// they share the middle point for odd n). Fewer than 2 points is
// stable by definition: insufficient data, not an error.
func ComputeTrend(points []Point) Trend {
	n := len(points)
	if n < 2 {
		return TrendStable
	}

	half := (n + 1) / 2
	earliest := mean(points[:half])
	latest := mean(points[n-half:])

	switch {
	case latest > earliest+Tolerance:
		return TrendImproving
	case latest < earliest-Tolerance:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// PredictNext extrapolates the next score linearly from the last two
// points, clamped to [0,100]. Nil with fewer than 2 points.
func PredictNext(points []Point) *int {
	n := len(points)
	if n < 2 {
		return nil
	}

	last := points[n-1].Score
	prev := points[n-2].Score
	next := last + (last - prev)
	if next < 0 {
		next = 0
	}
	if next > 100 {
		next = 100
	}
	return &next
}

func mean(points []Point) float64 {
	sum := 0
	for _, p := range points {
		sum += p.Score
	}
	return float64(sum) / float64(len(points))
}
