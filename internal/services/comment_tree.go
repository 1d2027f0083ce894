package services

import (
	"studyvibe/internal/models"
)

// UnknownAuthor 作者资料缺失时的占位快照
var UnknownAuthor = models.Profile{FullName: "未知用户", Avatar: "❓"}

// CommentNode 两级回复树中的一个节点
type CommentNode struct {
	models.Comment
	Author  models.Profile `json:"author"`
	Replies []*CommentNode `json:"replies"`
}

// BuildCommentTree 把按 created_at 升序取出的平铺评论组装成两级回复树。
// 规则：
//   - 每条评论附上作者快照，查不到资料时使用 UnknownAuthor；
//   - ParentID 为空的进入顶层；
//   - ParentID 指向本批次中存在的评论的，挂到该父节点的 Replies 下；
//   - 指向不存在评论的（包括指向自己，处理到它时自己还没进映射）直接丢弃，
//     不提升为顶层，也不报错——渲染侧没有展示这类异常的地方。
//
// 输入顺序即输出顺序，顶层和每个 Replies 列表都保持升序。O(n) 时间和空间，无副作用。
func BuildCommentTree(comments []models.Comment, profiles map[uint]models.Profile) []*CommentNode {
	topLevel := make([]*CommentNode, 0, len(comments))
	byID := make(map[uint]*CommentNode, len(comments))

	for _, c := range comments {
		author, ok := profiles[c.UserID]
		if !ok {
			author = UnknownAuthor
		}
		node := &CommentNode{
			Comment: c,
			Author:  author,
			Replies: make([]*CommentNode, 0),
		}

		if c.ParentID == nil {
			topLevel = append(topLevel, node)
			byID[c.ID] = node
			continue
		}

		parent, found := byID[*c.ParentID]
		if !found {
			// 孤儿评论：父评论已删除或不在本批次
			continue
		}
		parent.Replies = append(parent.Replies, node)
		byID[c.ID] = node
	}

	return topLevel
}

// CountTreeComments 统计树中可达的评论数（顶层 + 所有回复）
func CountTreeComments(tree []*CommentNode) int {
	count := 0
	for _, node := range tree {
		count += 1 + CountTreeComments(node.Replies)
	}
	return count
}

// FlattenCommentTree 按展示顺序展开树：每个顶层评论后紧跟它的回复列表
func FlattenCommentTree(tree []*CommentNode) []*CommentNode {
	flat := make([]*CommentNode, 0, len(tree))
	for _, node := range tree {
		flat = append(flat, node)
		flat = append(flat, FlattenCommentTree(node.Replies)...)
	}
	return flat
}
