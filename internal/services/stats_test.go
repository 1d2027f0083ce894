package services

import (
	"testing"

	"studyvibe/internal/models"
)

func TestBuildCompletionStats(t *testing.T) {
	items := []models.Homework{
		makeHomework(1, "Math", "2025-01-05"),
		makeHomework(2, "Math", "2025-01-06"),
		makeHomework(3, "Lit", "2025-01-07"),
		makeHomework(4, "Physics", "2025-01-08"),
	}
	// 4 задания: Math 1/2, Lit 1/1, Physics 0/1
	completions := map[uint]bool{1: true, 3: true, 4: false}

	stats := BuildCompletionStats(items, completions)

	if stats.TotalHomeworks != 4 || stats.CompletedHomeworks != 2 {
		t.Fatalf("Expected 2/4 completed, got %d/%d", stats.CompletedHomeworks, stats.TotalHomeworks)
	}
	if stats.OverallCompletionRate != 50 {
		t.Errorf("Expected overall rate 50, got %v", stats.OverallCompletionRate)
	}

	if len(stats.SubjectStats) != 3 {
		t.Fatalf("Expected 3 subjects, got %d", len(stats.SubjectStats))
	}
	// 按完成率降序：Lit 100% > Math 50% > Physics 0%
	wantOrder := []string{"Lit", "Math", "Physics"}
	for i, want := range wantOrder {
		if stats.SubjectStats[i].Subject != want {
			t.Fatalf("Expected subject order %v, got %v at index %d", wantOrder, stats.SubjectStats[i].Subject, i)
		}
	}

	math := stats.SubjectStats[1]
	if math.Completed != 1 || math.Total != 2 || math.CompletionRate != 50 {
		t.Errorf("Expected Math 1/2 (50%%), got %d/%d (%v%%)", math.Completed, math.Total, math.CompletionRate)
	}
}

func TestBuildCompletionStatsTieBreak(t *testing.T) {
	items := []models.Homework{
		makeHomework(1, "Math", "2025-01-05"),
		makeHomework(2, "Lit", "2025-01-06"),
	}

	// 两科完成率相同 → 按科目名排，顺序确定
	stats := BuildCompletionStats(items, nil)
	if stats.SubjectStats[0].Subject != "Lit" || stats.SubjectStats[1].Subject != "Math" {
		t.Errorf("Expected [Lit Math], got [%s %s]", stats.SubjectStats[0].Subject, stats.SubjectStats[1].Subject)
	}
}

func TestBuildCompletionStatsEmpty(t *testing.T) {
	stats := BuildCompletionStats(nil, nil)

	if stats.TotalHomeworks != 0 || stats.OverallCompletionRate != 0 {
		t.Errorf("Expected zero stats, got %+v", stats)
	}
	if stats.SubjectStats == nil || len(stats.SubjectStats) != 0 {
		t.Errorf("Expected empty (non-nil) subject stats, got %v", stats.SubjectStats)
	}
}
