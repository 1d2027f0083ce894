package services

import (
	"reflect"
	"testing"
	"time"

	"studyvibe/internal/models"
)

func makeHomework(id uint, subject, due string, tags ...string) models.Homework {
	dueDate, err := time.Parse("2006-01-02", due)
	if err != nil {
		panic(err)
	}
	return models.Homework{
		ID:      id,
		Title:   subject + " homework",
		Subject: subject,
		DueDate: dueDate,
		Tags:    tags,
	}
}

func ids(items []models.Homework) []uint {
	out := make([]uint, len(items))
	for i, hw := range items {
		out[i] = hw.ID
	}
	return out
}

var viewNow = time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC)

func TestHomeworkViewTagFilter(t *testing.T) {
	items := []models.Homework{
		makeHomework(1, "Math", "2025-01-10", "algebra"),
		makeHomework(2, "Lit", "2025-01-05"),
	}

	view, err := HomeworkView(items, nil, HomeworkFilters{Tags: []string{"algebra"}}, SortByDate, viewNow)
	if err != nil {
		t.Fatalf("HomeworkView failed: %v", err)
	}
	if !reflect.DeepEqual(ids(view), []uint{1}) {
		t.Errorf("Expected [1], got %v", ids(view))
	}

	// 标签没有任何作业命中 → 空结果，不报错
	view, err = HomeworkView(items, nil, HomeworkFilters{Tags: []string{"nosuch"}}, SortByDate, viewNow)
	if err != nil {
		t.Fatalf("HomeworkView failed: %v", err)
	}
	if len(view) != 0 {
		t.Errorf("Expected empty result, got %v", ids(view))
	}
}

func TestHomeworkViewSubjectSort(t *testing.T) {
	items := []models.Homework{
		makeHomework(1, "Math", "2025-01-10", "algebra"),
		makeHomework(2, "Lit", "2025-01-05"),
	}

	view, err := HomeworkView(items, nil, HomeworkFilters{Status: StatusAll}, SortBySubject, viewNow)
	if err != nil {
		t.Fatalf("HomeworkView failed: %v", err)
	}
	if !reflect.DeepEqual(ids(view), []uint{2, 1}) {
		t.Errorf("Expected [2 1] (Lit before Math), got %v", ids(view))
	}
}

func TestHomeworkViewStatusFilter(t *testing.T) {
	items := []models.Homework{
		makeHomework(1, "Math", "2025-01-10"),
		makeHomework(2, "Lit", "2025-01-05"),
		makeHomework(3, "Bio", "2025-01-07"),
	}
	// 没有提交记录的默认未完成
	completions := map[uint]bool{1: true}

	active, err := HomeworkView(items, completions, HomeworkFilters{Status: StatusActive}, SortByDate, viewNow)
	if err != nil {
		t.Fatalf("HomeworkView failed: %v", err)
	}
	if !reflect.DeepEqual(ids(active), []uint{2, 3}) {
		t.Errorf("Expected [2 3], got %v", ids(active))
	}

	completed, err := HomeworkView(items, completions, HomeworkFilters{Status: StatusCompleted}, SortByDate, viewNow)
	if err != nil {
		t.Fatalf("HomeworkView failed: %v", err)
	}
	if !reflect.DeepEqual(ids(completed), []uint{1}) {
		t.Errorf("Expected [1], got %v", ids(completed))
	}
}

func TestHomeworkViewFilterIdempotent(t *testing.T) {
	items := []models.Homework{
		makeHomework(1, "Math", "2025-01-10", "algebra"),
		makeHomework(2, "Lit", "2025-01-05", "essay"),
		makeHomework(3, "Math", "2025-01-07"),
	}
	filters := HomeworkFilters{Tags: []string{"algebra"}, Subject: "Math", Status: StatusActive}

	once, err := HomeworkView(items, nil, filters, SortByDate, viewNow)
	if err != nil {
		t.Fatalf("HomeworkView failed: %v", err)
	}
	if len(once) > len(items) {
		t.Fatalf("Filtered result larger than input")
	}

	twice, err := HomeworkView(once, nil, filters, SortByDate, viewNow)
	if err != nil {
		t.Fatalf("HomeworkView failed: %v", err)
	}
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Errorf("Filtering not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestHomeworkViewStableAndDeterministic(t *testing.T) {
	// 三个同一天截止的作业，priority 排序不能打乱原有相对顺序
	items := []models.Homework{
		makeHomework(1, "Math", "2025-01-05"),
		makeHomework(2, "Lit", "2025-01-05"),
		makeHomework(3, "Bio", "2025-01-05"),
		makeHomework(4, "Geo", "2025-01-04"),
	}

	first, err := HomeworkView(items, nil, HomeworkFilters{}, SortByPriority, viewNow)
	if err != nil {
		t.Fatalf("HomeworkView failed: %v", err)
	}
	if !reflect.DeepEqual(ids(first), []uint{4, 1, 2, 3}) {
		t.Errorf("Expected [4 1 2 3], got %v", ids(first))
	}

	second, err := HomeworkView(items, nil, HomeworkFilters{}, SortByPriority, viewNow)
	if err != nil {
		t.Fatalf("HomeworkView failed: %v", err)
	}
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Errorf("Same input and now produced different order: %v vs %v", ids(first), ids(second))
	}
}

func TestHomeworkViewDoesNotMutateInput(t *testing.T) {
	items := []models.Homework{
		makeHomework(1, "Math", "2025-01-10"),
		makeHomework(2, "Lit", "2025-01-05"),
	}
	before := ids(items)

	if _, err := HomeworkView(items, nil, HomeworkFilters{}, SortByDate, viewNow); err != nil {
		t.Fatalf("HomeworkView failed: %v", err)
	}
	if !reflect.DeepEqual(ids(items), before) {
		t.Errorf("Input slice was reordered: %v", ids(items))
	}
}

func TestHomeworkViewInvalidSort(t *testing.T) {
	items := []models.Homework{makeHomework(1, "Math", "2025-01-10")}

	if _, err := HomeworkView(items, nil, HomeworkFilters{}, "score", viewNow); err == nil {
		t.Error("Expected error for unknown sort option, got nil")
	}
}

func TestHomeworkViewEmptyInput(t *testing.T) {
	view, err := HomeworkView(nil, nil, HomeworkFilters{}, SortByDate, viewNow)
	if err != nil {
		t.Fatalf("HomeworkView failed: %v", err)
	}
	if len(view) != 0 {
		t.Errorf("Expected empty result, got %d items", len(view))
	}
}

func TestTimeLeft(t *testing.T) {
	now := time.Date(2025, 1, 3, 23, 30, 0, 0, time.UTC)

	cases := []struct {
		due  string
		want string
	}{
		{"2025-01-02", "overdue"},
		{"2025-01-03", "today"},
		{"2025-01-04", "tomorrow"},
		{"2025-01-08", "5 days"},
	}
	for _, tc := range cases {
		due, _ := time.Parse("2006-01-02", tc.due)
		if got := TimeLeft(due, now); got != tc.want {
			t.Errorf("TimeLeft(%s): expected %q, got %q", tc.due, tc.want, got)
		}
	}
}
