// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, searching, creating, updating and
// deleting articles, plus the hashtag listing endpoint.
package article

import (
	"time"

	"project-board/internal/repository"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID         int64     `json:"id" example:"1"`
	UserID     string    `json:"user_id" example:"uno"`
	Nickname   string    `json:"nickname" example:"Uno"`
	Title      string    `json:"title" example:"First post"`
	Content    string    `json:"content" example:"Hello board #intro"`
	Hashtags   []string  `json:"hashtags" example:"#intro"`
	CreatedAt  time.Time `json:"created_at" example:"2025-10-26T12:00:00Z"`
	ModifiedAt time.Time `json:"modified_at" example:"2025-10-26T12:00:00Z"`
}

// CommentDTO represents the JSON structure for a comment nested in an
// article detail response.
type CommentDTO struct {
	ID         int64     `json:"id" example:"1"`
	ArticleID  int64     `json:"article_id" example:"1"`
	UserID     string    `json:"user_id" example:"uno"`
	Nickname   string    `json:"nickname" example:"Uno"`
	Content    string    `json:"content" example:"Nice post"`
	CreatedAt  time.Time `json:"created_at" example:"2025-10-26T12:05:00Z"`
	ModifiedAt time.Time `json:"modified_at" example:"2025-10-26T12:05:00Z"`
}

// DetailDTO is the article detail response: the article plus its comments
// oldest-first, the comment count, and the board-wide article count shown in
// the detail view.
type DetailDTO struct {
	DTO
	Comments     []CommentDTO `json:"comments"`
	CommentCount int          `json:"comment_count" example:"2"`
	ArticleCount int64        `json:"article_count" example:"42"`
}

func toDTO(item repository.ArticleWithAuthor) DTO {
	dto := DTO{
		ID:         item.Article.ID,
		UserID:     item.Article.UserID,
		Title:      item.Article.Title,
		Content:    item.Article.Content,
		Hashtags:   item.Article.Hashtags,
		CreatedAt:  item.Article.CreatedAt,
		ModifiedAt: item.Article.ModifiedAt,
	}
	if dto.Hashtags == nil {
		dto.Hashtags = []string{}
	}
	if item.Author != nil {
		dto.Nickname = item.Author.Nickname
	}
	return dto
}

func toCommentDTO(item repository.CommentWithAuthor) CommentDTO {
	dto := CommentDTO{
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
