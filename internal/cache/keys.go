package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	PostKeyPrefix = "post:%d:%d"
	FeedKeyPrefix = "feed:%d:%d:%d"
)

const (
	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
	FeedTTL = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// PostKey is scoped per viewer: a cached post carries the viewer's own
// reaction and bookmark state, so two viewers can never share an entry.
func PostKey(postID, viewerID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID, viewerID)
}

func FeedKey(userID uint, limit, offset int) string {
	return fmt.Sprintf(FeedKeyPrefix, userID, limit, offset)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func invalidatePattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidatePost drops the post's cached entries for every viewer.
func InvalidatePost(ctx context.Context, postID uint) {
	invalidatePattern(ctx, fmt.Sprintf("post:%d:*", postID))
}

// InvalidateUserFeeds drops one user's cached feed pages. Follow and unfollow
// change what that user's feed contains, nobody else's.
func InvalidateUserFeeds(ctx context.Context, userID uint) {
	invalidatePattern(ctx, fmt.Sprintf("feed:%d:*", userID))
}

// InvalidatePosts sweeps every cached post entry. Bulk deletions (account
// cascade, orphan purge) remove posts without enumerating their ids.
func InvalidatePosts(ctx context.Context) {
	invalidatePattern(ctx, "post:*")
}

// InvalidateFeeds sweeps every cached feed page. A new or deleted post can
// affect any follower's feed, so a pattern delete is the honest option.
func InvalidateFeeds(ctx context.Context) {
	invalidatePattern(ctx, "feed:*")
}
