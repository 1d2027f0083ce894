package services

import (
	"sort"

	"studyvibe/internal/models"
)

// SubjectStat 单个科目的完成情况
type SubjectStat struct {
	Subject        string  `json:"subject"`
	Completed      int     `json:"completed"`
	Total          int     `json:"total"`
	CompletionRate float64 `json:"completion_rate"`
}

// CompletionStats 整体完成率 + 按科目拆分
type CompletionStats struct {
	TotalHomeworks        int           `json:"total_homeworks"`
	CompletedHomeworks    int           `json:"completed_homeworks"`
	OverallCompletionRate float64       `json:"overall_completion_rate"`
	SubjectStats          []SubjectStat `json:"subject_stats"`
}

// BuildCompletionStats 按科目聚合完成率，completions 是 homework_id -> is_completed。
// 科目按完成率从高到低排，持平按科目名兜底，保证输出顺序稳定。
func BuildCompletionStats(items []models.Homework, completions map[uint]bool) CompletionStats {
	stats := CompletionStats{SubjectStats: []SubjectStat{}}

	bySubject := make(map[string]*SubjectStat)
	order := make([]string, 0)
	for _, hw := range items {
		s, ok := bySubject[hw.Subject]
		if !ok {
			s = &SubjectStat{Subject: hw.Subject}
			bySubject[hw.Subject] = s
			order = append(order, hw.Subject)
		}
		s.Total++
		stats.TotalHomeworks++
		if completions[hw.ID] {
			s.Completed++
			stats.CompletedHomeworks++
		}
	}

	if stats.TotalHomeworks > 0 {
		stats.OverallCompletionRate = float64(stats.CompletedHomeworks) / float64(stats.TotalHomeworks) * 100
	}

	for _, subject := range order {
		s := bySubject[subject]
		if s.Total > 0 {
			s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
		}
		stats.SubjectStats = append(stats.SubjectStats, *s)
	}
	sort.SliceStable(stats.SubjectStats, func(i, j int) bool {
		a, b := stats.SubjectStats[i], stats.SubjectStats[j]
		if a.CompletionRate != b.CompletionRate {
			return a.CompletionRate > b.CompletionRate
		}
		return a.Subject < b.Subject
	})

	return stats
}
