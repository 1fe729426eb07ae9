// Package comment provides HTTP handlers for article comment endpoints:
// listing a post's comments and creating, updating and deleting comments.
package comment

import (
	"time"

	"project-board/internal/repository"
)

// DTO represents the JSON structure for comment data transfer.
type DTO struct {
	ID         int64     `json:"id" example:"1"`
	ArticleID  int64     `json:"article_id" example:"1"`
	UserID     string    `json:"user_id" example:"uno"`
	Nickname   string    `json:"nickname" example:"Uno"`
	Content    string    `json:"content" example:"Nice post"`
	CreatedAt  time.Time `json:"created_at" example:"2025-10-26T12:05:00Z"`
	ModifiedAt time.Time `json:"modified_at" example:"2025-10-26T12:05:00Z"`
}

func toDTO(item repository.CommentWithAuthor) DTO {
	dto := DTO{
		ID:         item.Comment.ID,
		ArticleID:  item.Comment.ArticleID,
		UserID:     item.Comment.UserID,
		Content:    item.Comment.Content,
		CreatedAt:  item.Comment.CreatedAt,
		ModifiedAt: item.Comment.ModifiedAt,
	}
	if item.Author != nil {
		dto.Nickname = item.Author.Nickname
	}
	return dto
}
