package repositories

import (
	"errors"

	"socialapp/models"
	"socialapp/pagination"

	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) FindPageByAuthor(authorID uint, req pagination.Request) ([]models.Post, int64, error) {
	return r.findPage(r.db.Model(&models.Post{}).Where("author_id = ?", authorID), req)
}

func (r *postRepository) FindPageByAuthorIn(authorIDs []uint, req pagination.Request) ([]models.Post, int64, error) {
	return r.findPage(r.db.Model(&models.Post{}).Where("author_id IN ?", authorIDs), req)
}

// findPage counts the filtered set, then loads one window ordered newest
// first. The post_id tiebreak keeps pagination deterministic when two posts
// share a timestamp.
func (r *postRepository) findPage(query *gorm.DB, req pagination.Request) ([]models.Post, int64, error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := query.
		Order("created_at DESC, post_id DESC").
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
