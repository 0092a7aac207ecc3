package learningcurve

import (
	"testing"

	"github.com/casetalk/casetalk/internal/attempt"
)

func points(scores ...int) []Point {
	out := make([]Point, len(scores))
	for i, s := range scores {
		out[i] = Point{AttemptNumber: i + 1, Score: s}
	}
	return out
}

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   Trend
	}{
		{"no attempts", nil, TrendStable},
		{"one attempt", []int{50}, TrendStable},
		{"two improving", []int{50, 80}, TrendImproving},
		{"two declining", []int{80, 50}, TrendDeclining},
		{"two within tolerance", []int{70, 74}, TrendStable},
		{"exactly tolerance apart", []int{70, 75}, TrendStable},
		{"just past tolerance", []int{70, 76}, TrendImproving},
		{"odd count shares middle", []int{40, 60, 80}, TrendImproving},
		{"long flat", []int{70, 72, 69, 71, 70, 70}, TrendStable},
		{"long declining", []int{90, 85, 80, 60, 55, 50}, TrendDeclining},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTrend(points(tt.scores...)); got != tt.want {
				t.Errorf("scores %v: got %s, want %s", tt.scores, got, tt.want)
			}
		})
	}
}

func TestPredictNext(t *testing.T) {
	if got := PredictNext(points(50)); got != nil {
		t.Fatalf("expected nil with one attempt, got %d", *got)
	}

	if got := PredictNext(points(50, 80)); got == nil || *got != 100 {
		t.Fatalf("expected 100 (clamped from 110), got %v", got)
	}

	if got := PredictNext(points(60, 70)); got == nil || *got != 80 {
		t.Fatalf("expected 80, got %v", got)
	}

	if got := PredictNext(points(40, 10)); got == nil || *got != 0 {
		t.Fatalf("expected 0 (clamped), got %v", got)
	}
}

func TestPointsFromAttempts(t *testing.T) {
	s1, s3 := 50, 80
	attempts := []*attempt.Attempt{
		{AttemptNumber: 3, Score: &s3, TotalTimeSeconds: 120},
		{AttemptNumber: 2, Score: nil}, // abandoned
		{AttemptNumber: 1, Score: &s1, TotalTimeSeconds: 300},
	}

	pts := PointsFromAttempts(attempts)
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if pts[0].AttemptNumber != 1 || pts[1].AttemptNumber != 3 {
		t.Fatalf("points not ordered by attempt number: %+v", pts)
	}
	if pts[0].TimeSpentMinutes != 5 {
		t.Fatalf("expected 5 minutes, got %f", pts[0].TimeSpentMinutes)
	}
}

func TestAnalyze(t *testing.T) {
	curve := Analyze(points(50, 80))
	if curve.Trend != TrendImproving {
		t.Fatalf("expected improving, got %s", curve.Trend)
	}
	if curve.PredictedNextScore == nil || *curve.PredictedNextScore != 100 {
		t.Fatalf("unexpected prediction: %v", curve.PredictedNextScore)
	}
}
