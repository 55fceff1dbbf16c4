package service

import (
	"Quizfeed/internal/model"
	"Quizfeed/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFeedService(db *gorm.DB) FeedService {
	followRepo := repository.NewUserFollowRepo(db)
	return NewFeedService(
		repository.NewVideoRepo(db),
		repository.NewLikeRepo(db),
		followRepo,
		NewUserFollowService(followRepo),
	)
}

func TestForYouPagination(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		seedFeedVideo(t, db, author.ID, base.Add(time.Duration(i)*time.Minute))
	}

	page, err := svc.ForYou(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, page.Items, FeedPageSize)
	require.NotNil(t, page.NextSkip)
	require.Equal(t, 4, *page.NextSkip)

	// 创建时间升序
	for i := 1; i < len(page.Items); i++ {
		require.LessOrEqual(t, page.Items[i-1].CreatedAt, page.Items[i].CreatedAt)
	}

	page, err = svc.ForYou(ctx, "", *page.NextSkip)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, 8, *page.NextSkip)

	// 空页不再给 nextSkip
	page, err = svc.ForYou(ctx, "", *page.NextSkip)
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Nil(t, page.NextSkip)
}

func TestForYouAnonymousFlags(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)

	author := seedUser(t, db, "alice")
	seedFeedVideo(t, db, author.ID, time.Now())

	page, err := svc.ForYou(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.False(t, page.Items[0].LikedByMe)
	require.False(t, page.Items[0].FollowedByMe)
	require.Equal(t, "alice", *page.Items[0].User.Name)
	require.Equal(t, "caption", page.Items[0].Post.Caption)
}

func TestForYouEnrichmentFlags(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)
	ctx := context.Background()

	viewer := seedUser(t, db, "viewer")
	followed := seedUser(t, db, "followed")
	stranger := seedUser(t, db, "stranger")

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	liked := seedFeedVideo(t, db, followed.ID, base)
	seedFeedVideo(t, db, stranger.ID, base.Add(time.Minute))

	require.NoError(t, db.Create(&model.Follow{FollowerID: viewer.ID, FollowingID: followed.ID}).Error)
	require.NoError(t, db.Create(&model.Like{UserID: viewer.ID, VideoID: liked.ID}).Error)

	page, err := svc.ForYou(ctx, viewer.ID, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	require.True(t, page.Items[0].LikedByMe)
	require.True(t, page.Items[0].FollowedByMe)
	require.False(t, page.Items[1].LikedByMe)
	require.False(t, page.Items[1].FollowedByMe)
}

func TestFollowingRequiresLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)

	_, err := svc.Following(context.Background(), "", 0)
	require.ErrorIs(t, err, UnauthorizedError)
}

func TestFollowingFiltersByFollowSet(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)
	ctx := context.Background()

	viewer := seedUser(t, db, "viewer")
	followed := seedUser(t, db, "followed")
	stranger := seedUser(t, db, "stranger")

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedFeedVideo(t, db, followed.ID, base)
	seedFeedVideo(t, db, stranger.ID, base.Add(time.Minute))
	require.NoError(t, db.Create(&model.Follow{FollowerID: viewer.ID, FollowingID: followed.ID}).Error)

	page, err := svc.Following(ctx, viewer.ID, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, followed.ID, page.Items[0].UserID)
	require.True(t, page.Items[0].FollowedByMe)
}

func TestFollowingEmptyWithoutFollows(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)

	viewer := seedUser(t, db, "viewer")
	other := seedUser(t, db, "other")
	seedFeedVideo(t, db, other.ID, time.Now())

	page, err := svc.Following(context.Background(), viewer.ID, 0)
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Nil(t, page.NextSkip)
}

func TestFeedItemQuestionIncluded(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	video := seedFeedVideo(t, db, author.ID, time.Now())

	question := &model.Question{ID: "q-1", Caption: "What was the key point?"}
	require.NoError(t, db.Create(question).Error)
	require.NoError(t, db.Model(&model.Video{}).
		Where("id = ?", video.ID).
		Updates(map[string]interface{}{"done": true, "question_id": question.ID}).Error)

	page, err := svc.ForYou(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.True(t, page.Items[0].Done)
	require.NotNil(t, page.Items[0].Question)
	require.Equal(t, "What was the key point?", page.Items[0].Question.Caption)
}
