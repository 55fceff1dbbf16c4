package service

import (
	"Quizfeed/internal/model"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Question{},
		&model.Video{},
		&model.Follow{},
		&model.Like{},
	)
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{ID: uuid.NewString(), Name: &name}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedFeedVideo 造一条帖子加对应 Video，createdAt 控制排序
func seedFeedVideo(t *testing.T, db *gorm.DB, userID string, createdAt time.Time) *model.Video {
	t.Helper()
	post := &model.Post{
		ID:          uuid.NewString(),
		Caption:     "caption",
		VideoURL:    "https://cdn.example.com/v.mp4",
		CoverURL:    "https://cdn.example.com/c.jpg",
		VideoWidth:  1080,
		VideoHeight: 1920,
	}
	require.NoError(t, db.Create(post).Error)

	video := &model.Video{
		ID:        uuid.NewString(),
		UserID:    userID,
		PostID:    post.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(video).Error)
	return video
}
