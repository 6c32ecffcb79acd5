package models

import "sort"

// ThreadSort selects the ordering of root comments
type ThreadSort string

const (
	ThreadSortRecent ThreadSort = "recent" // newest roots first
	ThreadSortLikes  ThreadSort = "likes"  // most liked roots first
)

// ParseThreadSort maps a query-string value to a ThreadSort, defaulting to recent
func ParseThreadSort(s string) ThreadSort {
	if s == string(ThreadSortLikes) {
		return ThreadSortLikes
	}
	return ThreadSortRecent
}

// CommentThread is a root comment together with its ordered replies
type CommentThread struct {
	Comment
	Replies []Comment `json:"replies"`
}

// BuildThread partitions a flat, unordered comment list into root threads.
// Roots are ordered by the requested sort; replies are always oldest first so
// each thread reads chronologically. Replies whose parent is not a root in
// the input are dropped. The input slice is not modified and the result is
// fully determined by the input.
func BuildThread(comments []Comment, sortBy ThreadSort) []CommentThread {
	roots := make([]Comment, 0, len(comments))
	replies := make(map[string][]Comment)

	for _, c := range comments {
		if c.IsRoot() {
			roots = append(roots, c)
		} else {
			replies[c.ParentID] = append(replies[c.ParentID], c)
		}
	}

	switch sortBy {
	case ThreadSortLikes:
		sort.SliceStable(roots, func(i, j int) bool {
			if roots[i].LikeCount != roots[j].LikeCount {
				return roots[i].LikeCount > roots[j].LikeCount
			}
			if !roots[i].CreatedAt.Equal(roots[j].CreatedAt) {
				return roots[i].CreatedAt.After(roots[j].CreatedAt)
			}
			return roots[i].ID.Hex() > roots[j].ID.Hex()
		})
	default:
		sort.SliceStable(roots, func(i, j int) bool {
			if !roots[i].CreatedAt.Equal(roots[j].CreatedAt) {
				return roots[i].CreatedAt.After(roots[j].CreatedAt)
			}
			return roots[i].ID.Hex() > roots[j].ID.Hex()
		})
	}

	threads := make([]CommentThread, 0, len(roots))
	for _, root := range roots {
		children := replies[root.ID.Hex()]
		sort.SliceStable(children, func(i, j int) bool {
			if !children[i].CreatedAt.Equal(children[j].CreatedAt) {
				return children[i].CreatedAt.Before(children[j].CreatedAt)
			}
			return children[i].ID.Hex() < children[j].ID.Hex()
		})
		if children == nil {
			children = []Comment{}
		}
		threads = append(threads, CommentThread{Comment: root, Replies: children})
	}
	return threads
}
