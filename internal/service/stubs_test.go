package service

import (
	"context"

	"inkwell/internal/models"
)

type userRepoStub struct {
	getByIDFn     func(context.Context, uint) (*models.User, error)
	getByEmailFn  func(context.Context, string) (*models.User, error)
	getByHandleFn func(context.Context, string) (*models.User, error)
	createFn      func(context.Context, *models.User) error
	updateFn      func(context.Context, *models.User) error
	listFn        func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByHandle(ctx context.Context, handle string) (*models.User, error) {
	return s.getByHandleFn(ctx, handle)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint, uint) (*models.Post, error)
	listFn           func(context.Context, uint, int, int) ([]models.Post, error)
	listByAuthorFn   func(context.Context, uint, uint, int, int) ([]models.Post, error)
	listBookmarkedFn func(context.Context, uint, int, int) ([]models.Post, error)
	feedFn           func(context.Context, uint, int, int) ([]models.Post, error)
	updateFn         func(context.Context, *models.Post) error
	deleteFn         func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *postRepoStub) List(ctx context.Context, viewerID uint, limit, offset int) ([]models.Post, error) {
	return s.listFn(ctx, viewerID, limit, offset)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID, viewerID uint, limit, offset int) ([]models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, viewerID, limit, offset)
}
func (s *postRepoStub) ListBookmarked(ctx context.Context, viewerID uint, limit, offset int) ([]models.Post, error) {
	return s.listBookmarkedFn(ctx, viewerID, limit, offset)
}
func (s *postRepoStub) Feed(ctx context.Context, viewerID uint, limit, offset int) ([]models.Post, error) {
	return s.feedFn(ctx, viewerID, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint, uint, int, int) ([]models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID, viewerID uint, limit, offset int) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID, viewerID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id, postID uint) error {
	return s.deleteFn(ctx, id, postID)
}

type engagementRepoStub struct {
	setPostReactionFn      func(context.Context, uint, uint, models.ReactionKind) error
	clearPostReactionFn    func(context.Context, uint, uint, models.ReactionKind) error
	setCommentReactionFn   func(context.Context, uint, uint, models.ReactionKind) error
	clearCommentReactionFn func(context.Context, uint, uint, models.ReactionKind) error
	addBookmarkFn          func(context.Context, uint, uint) error
	removeBookmarkFn       func(context.Context, uint, uint) error
}

func (s *engagementRepoStub) SetPostReaction(ctx context.Context, userID, postID uint, kind models.ReactionKind) error {
	return s.setPostReactionFn(ctx, userID, postID, kind)
}
func (s *engagementRepoStub) ClearPostReaction(ctx context.Context, userID, postID uint, kind models.ReactionKind) error {
	return s.clearPostReactionFn(ctx, userID, postID, kind)
}
func (s *engagementRepoStub) SetCommentReaction(ctx context.Context, userID, commentID uint, kind models.ReactionKind) error {
	return s.setCommentReactionFn(ctx, userID, commentID, kind)
}
func (s *engagementRepoStub) ClearCommentReaction(ctx context.Context, userID, commentID uint, kind models.ReactionKind) error {
	return s.clearCommentReactionFn(ctx, userID, commentID, kind)
}
func (s *engagementRepoStub) AddBookmark(ctx context.Context, userID, postID uint) error {
	return s.addBookmarkFn(ctx, userID, postID)
}
func (s *engagementRepoStub) RemoveBookmark(ctx context.Context, userID, postID uint) error {
	return s.removeBookmarkFn(ctx, userID, postID)
}

type followRepoStub struct {
	followFn      func(context.Context, uint, uint) error
	unfollowFn    func(context.Context, uint, uint) error
	isFollowingFn func(context.Context, uint, uint) (bool, error)
	followersFn   func(context.Context, uint, int, int) ([]models.User, error)
	followingFn   func(context.Context, uint, int, int) ([]models.User, error)
	reconcileFn   func(context.Context) (int64, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followeeID uint) error {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.unfollowFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.followersFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.followingFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) Reconcile(ctx context.Context) (int64, error) {
	return s.reconcileFn(ctx)
}

type accountRepoStub struct {
	deleteCommentReactionsFn func(context.Context, uint) error
	deletePostReactionsFn    func(context.Context, uint) error
	deleteBookmarksFn        func(context.Context, uint) error
	deleteFollowsFn          func(context.Context, uint) error
	deleteCommentsFn         func(context.Context, uint) error
	deletePostsFn            func(context.Context, uint) error
	deleteUserFn             func(context.Context, uint) error
	purgeOrphansFn           func(context.Context) (int64, error)
}

func (s *accountRepoStub) DeleteCommentReactions(ctx context.Context, userID uint) error {
	return s.deleteCommentReactionsFn(ctx, userID)
}
func (s *accountRepoStub) DeletePostReactions(ctx context.Context, userID uint) error {
	return s.deletePostReactionsFn(ctx, userID)
}
func (s *accountRepoStub) DeleteBookmarks(ctx context.Context, userID uint) error {
	return s.deleteBookmarksFn(ctx, userID)
}
func (s *accountRepoStub) DeleteFollows(ctx context.Context, userID uint) error {
	return s.deleteFollowsFn(ctx, userID)
}
func (s *accountRepoStub) DeleteComments(ctx context.Context, userID uint) error {
	return s.deleteCommentsFn(ctx, userID)
}
func (s *accountRepoStub) DeletePosts(ctx context.Context, userID uint) error {
	return s.deletePostsFn(ctx, userID)
}
func (s *accountRepoStub) DeleteUser(ctx context.Context, userID uint) error {
	return s.deleteUserFn(ctx, userID)
}
func (s *accountRepoStub) PurgeOrphans(ctx context.Context) (int64, error) {
	return s.purgeOrphansFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:     func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:  func(context.Context, string) (*models.User, error) { return nil, nil },
		getByHandleFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:      func(context.Context, *models.User) error { return nil },
		updateFn:      func(context.Context, *models.User) error { return nil },
		listFn:        func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:         func(context.Context, *models.Post) error { return nil },
		getByIDFn:        func(context.Context, uint, uint) (*models.Post, error) { return &models.Post{}, nil },
		listFn:           func(context.Context, uint, int, int) ([]models.Post, error) { return nil, nil },
		listByAuthorFn:   func(context.Context, uint, uint, int, int) ([]models.Post, error) { return nil, nil },
		listBookmarkedFn: func(context.Context, uint, int, int) ([]models.Post, error) { return nil, nil },
		feedFn:           func(context.Context, uint, int, int) ([]models.Post, error) { return nil, nil },
		updateFn:         func(context.Context, *models.Post) error { return nil },
		deleteFn:         func(context.Context, uint) error { return nil },
	}
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(context.Context, *models.Comment) error { return nil },
		getByIDFn:    func(context.Context, uint, uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn: func(context.Context, uint, uint, int, int) ([]models.Comment, error) { return nil, nil },
		updateFn:     func(context.Context, *models.Comment) error { return nil },
		deleteFn:     func(context.Context, uint, uint) error { return nil },
	}
}

func noopEngagementRepo() *engagementRepoStub {
	return &engagementRepoStub{
		setPostReactionFn:      func(context.Context, uint, uint, models.ReactionKind) error { return nil },
		clearPostReactionFn:    func(context.Context, uint, uint, models.ReactionKind) error { return nil },
		setCommentReactionFn:   func(context.Context, uint, uint, models.ReactionKind) error { return nil },
		clearCommentReactionFn: func(context.Context, uint, uint, models.ReactionKind) error { return nil },
		addBookmarkFn:          func(context.Context, uint, uint) error { return nil },
		removeBookmarkFn:       func(context.Context, uint, uint) error { return nil },
	}
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:      func(context.Context, uint, uint) error { return nil },
		unfollowFn:    func(context.Context, uint, uint) error { return nil },
		isFollowingFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		followersFn:   func(context.Context, uint, int, int) ([]models.User, error) { return nil, nil },
		followingFn:   func(context.Context, uint, int, int) ([]models.User, error) { return nil, nil },
		reconcileFn:   func(context.Context) (int64, error) { return 0, nil },
	}
}

func noopAccountRepo() *accountRepoStub {
	return &accountRepoStub{
		deleteCommentReactionsFn: func(context.Context, uint) error { return nil },
		deletePostReactionsFn:    func(context.Context, uint) error { return nil },
		deleteBookmarksFn:        func(context.Context, uint) error { return nil },
		deleteFollowsFn:          func(context.Context, uint) error { return nil },
		deleteCommentsFn:         func(context.Context, uint) error { return nil },
		deletePostsFn:            func(context.Context, uint) error { return nil },
		deleteUserFn:             func(context.Context, uint) error { return nil },
		purgeOrphansFn:           func(context.Context) (int64, error) { return 0, nil },
	}
}

type mailerStub struct {
	sendPasswordResetFn func(context.Context, string, string) error
}

func (s *mailerStub) SendPasswordReset(ctx context.Context, to, code string) error {
	return s.sendPasswordResetFn(ctx, to, code)
}
