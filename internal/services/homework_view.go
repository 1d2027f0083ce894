package services

import (
	"fmt"
	"os"
	"sort"
	"time"

	"studyvibe/internal/models"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// 排序方式
const (
	SortByDate     = "date"     // 按截止日期升序
	SortBySubject  = "subject"  // 按科目名称排序（按地区排序规则）
	SortByPriority = "priority" // 按距离截止的天数升序
)

// 完成状态筛选
const (
	StatusAll       = "all"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// HomeworkFilters 作业列表的筛选条件，零值表示不过滤
type HomeworkFilters struct {
	Tags    []string // 与作业标签有交集即保留
	Subject string   // 空或 "all" 表示全部科目
	Status  string   // all / active / completed
}

// collate.Collator 内部有缓冲区，并发不安全，每次排序单独建一个
func newCollator() *collate.Collator {
	locale := os.Getenv("COLLATE_LOCALE")
	if locale == "" {
		locale = "ru"
	}
	return collate.New(language.Make(locale))
}

// HomeworkView 先筛选后排序，返回新的有序切片，不修改输入。
// now 由调用方每次渲染前快照一次，保证 priority 排序在单次调用内自洽。
// sortBy 非法时返回错误而不是静默回退——那是调用方的编程错误，不是数据异常。
func HomeworkView(items []models.Homework, completions map[uint]bool, filters HomeworkFilters, sortBy string, now time.Time) ([]models.Homework, error) {
	switch sortBy {
	case SortByDate, SortBySubject, SortByPriority:
	default:
		return nil, fmt.Errorf("invalid sort option: %q", sortBy)
	}

	result := make([]models.Homework, 0, len(items))
	for _, item := range items {
		if !matchFilters(item, completions[item.ID], filters) {
			continue
		}
		result = append(result, item)
	}

	// 稳定排序：同序元素保持原有相对顺序，避免同一天的作业在重渲染时跳动
	switch sortBy {
	case SortByDate:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DueDate.Before(result[j].DueDate)
		})
	case SortBySubject:
		col := newCollator()
		sort.SliceStable(result, func(i, j int) bool {
			return col.CompareString(result[i].Subject, result[j].Subject) < 0
		})
	case SortByPriority:
		sort.SliceStable(result, func(i, j int) bool {
			return DaysUntil(result[i].DueDate, now) < DaysUntil(result[j].DueDate, now)
		})
	}

	return result, nil
}

func matchFilters(item models.Homework, isCompleted bool, f HomeworkFilters) bool {
	if len(f.Tags) > 0 && !lo.Some(item.Tags, f.Tags) {
		return false
	}
	if f.Subject != "" && f.Subject != "all" && f.Subject != item.Subject {
		return false
	}
	switch f.Status {
	case "", StatusAll:
	case StatusActive:
		if isCompleted {
			return false
		}
	case StatusCompleted:
		if !isCompleted {
			return false
		}
	}
	return true
}

// DaysUntil 计算 now 到 due 的自然日差（忽略时分秒），过期为负数
func DaysUntil(due, now time.Time) int {
	ny, nm, nd := now.Date()
	dy, dm, dd := due.Date()
	nowDay := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	dueDay := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	return int(dueDay.Sub(nowDay).Hours() / 24)
}

// TimeLeft 把截止日期换算成展示用的剩余时间类别
func TimeLeft(due, now time.Time) string {
	days := DaysUntil(due, now)
	switch {
	case days < 0:
		return "overdue"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("%d days", days)
	}
}
