package services

import (
	"testing"
	"time"

	"studyvibe/internal/models"
)

func makeComment(id uint, parentID *uint, userID uint, minute int) models.Comment {
	return models.Comment{
		ID:        id,
		UserID:    userID,
		Content:   "test",
		ParentID:  parentID,
		CreatedAt: time.Date(2025, 1, 1, 10, minute, 0, 0, time.UTC),
	}
}

func uintPtr(v uint) *uint { return &v }

func TestBuildCommentTreeOrphanDropped(t *testing.T) {
	// 评论 3 指向不存在的父评论 99，应被丢弃且不提升为顶层
	comments := []models.Comment{
		makeComment(1, nil, 1, 0),
		makeComment(2, uintPtr(1), 2, 5),
		makeComment(3, uintPtr(99), 3, 6),
	}
	profiles := map[uint]models.Profile{
		1: {FullName: "张三", Avatar: "📚"},
		2: {FullName: "李四", Avatar: "✏️"},
	}

	tree := BuildCommentTree(comments, profiles)

	if len(tree) != 1 {
		t.Fatalf("Expected 1 top-level comment, got %d", len(tree))
	}
	if tree[0].ID != 1 {
		t.Errorf("Expected top-level comment id 1, got %d", tree[0].ID)
	}
	if len(tree[0].Replies) != 1 || tree[0].Replies[0].ID != 2 {
		t.Fatalf("Expected comment 1 to have reply 2, got %+v", tree[0].Replies)
	}
	if CountTreeComments(tree) != 2 {
		t.Errorf("Expected 2 reachable comments, got %d", CountTreeComments(tree))
	}
}

func TestBuildCommentTreeParentLinkage(t *testing.T) {
	comments := []models.Comment{
		makeComment(1, nil, 1, 0),
		makeComment(2, nil, 2, 1),
		makeComment(3, uintPtr(1), 2, 2),
		makeComment(4, uintPtr(2), 1, 3),
		makeComment(5, uintPtr(1), 3, 4),
	}
	tree := BuildCommentTree(comments, nil)

	for _, top := range tree {
		if top.ParentID != nil {
			t.Errorf("Top-level comment %d has non-nil parent", top.ID)
		}
		for _, reply := range top.Replies {
			if reply.ParentID == nil || *reply.ParentID != top.ID {
				t.Errorf("Reply %d is attached to wrong parent %d", reply.ID, top.ID)
			}
		}
	}

	if len(tree) != 2 {
		t.Fatalf("Expected 2 top-level comments, got %d", len(tree))
	}
	if len(tree[0].Replies) != 2 {
		t.Errorf("Expected comment 1 to have 2 replies, got %d", len(tree[0].Replies))
	}
}

func TestBuildCommentTreeSelfParentDropped(t *testing.T) {
	// 自己指向自己：处理到它时自己还没进映射，按孤儿处理
	comments := []models.Comment{
		makeComment(1, uintPtr(1), 1, 0),
		makeComment(2, nil, 1, 1),
	}
	tree := BuildCommentTree(comments, nil)

	if len(tree) != 1 || tree[0].ID != 2 {
		t.Fatalf("Expected only comment 2 in tree, got %d top-level", len(tree))
	}
}

func TestBuildCommentTreeOrderPreserved(t *testing.T) {
	comments := []models.Comment{
		makeComment(1, nil, 1, 0),
		makeComment(2, uintPtr(1), 2, 1),
		makeComment(3, nil, 3, 2),
		makeComment(4, uintPtr(1), 3, 3),
		makeComment(5, uintPtr(3), 1, 4),
	}
	tree := BuildCommentTree(comments, nil)

	// 顶层和回复列表都保持输入（created_at 升序）顺序
	wantTop := []uint{1, 3}
	for i, top := range tree {
		if top.ID != wantTop[i] {
			t.Errorf("Top-level order: expected %d at %d, got %d", wantTop[i], i, top.ID)
		}
	}
	wantReplies := []uint{2, 4}
	for i, reply := range tree[0].Replies {
		if reply.ID != wantReplies[i] {
			t.Errorf("Reply order: expected %d at %d, got %d", wantReplies[i], i, reply.ID)
		}
	}

	// 展开后顺序可逆：每个顶层后紧跟自己的回复
	flat := FlattenCommentTree(tree)
	wantFlat := []uint{1, 2, 4, 3, 5}
	if len(flat) != len(wantFlat) {
		t.Fatalf("Expected %d flattened comments, got %d", len(wantFlat), len(flat))
	}
	for i, node := range flat {
		if node.ID != wantFlat[i] {
			t.Errorf("Flatten order: expected %d at %d, got %d", wantFlat[i], i, node.ID)
		}
	}
}

func TestBuildCommentTreeMissingProfile(t *testing.T) {
	comments := []models.Comment{
		makeComment(1, nil, 42, 0),
	}
	tree := BuildCommentTree(comments, map[uint]models.Profile{})

	if tree[0].Author != UnknownAuthor {
		t.Errorf("Expected placeholder author, got %+v", tree[0].Author)
	}
}

func TestBuildCommentTreeEmptyInput(t *testing.T) {
	tree := BuildCommentTree(nil, nil)
	if len(tree) != 0 {
		t.Errorf("Expected empty tree, got %d nodes", len(tree))
	}
	if tree == nil {
		t.Error("Expected non-nil empty slice")
	}
}

func TestBuildCommentTreeReachableCount(t *testing.T) {
	comments := []models.Comment{
		makeComment(1, nil, 1, 0),
		makeComment(2, uintPtr(1), 2, 1),
		makeComment(3, uintPtr(2), 1, 2),  // 回复的回复，父评论在本批次，仍可达
		makeComment(4, uintPtr(77), 1, 3), // 孤儿
	}
	tree := BuildCommentTree(comments, nil)

	if got := CountTreeComments(tree); got != 3 {
		t.Errorf("Expected 3 reachable comments, got %d", got)
	}
}
