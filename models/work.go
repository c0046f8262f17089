package models

import (
	"strings"
	"time"
)

// WorkRecord 作品记录，由内容库（外部系统）提供，本服务只读
type WorkRecord struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"userId"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	Summary         string    `db:"summary" json:"summary"`
	Tags            []string  `json:"tags"`
	AITags          []string  `json:"aiTags"`
	ViewCount       int       `db:"view_count" json:"viewCount"`
	LikesCount      int       `db:"likes_count" json:"likesCount"`
	ClientName      string    `db:"client_name" json:"clientName"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	BannerImageURL  string    `db:"banner_image_url" json:"bannerImageUrl"`
	ThumbnailURL    string    `db:"thumbnail_url" json:"thumbnailUrl"`
	PreviewImageURL string    `db:"preview_image_url" json:"previewImageUrl"`
	ContentLength   int       `db:"content_length" json:"contentLength"`
}

// DisplayThumbnail 展示缩略图的取值优先级：横幅图 → 缩略图 → 预览图，均为空时返回空字符串
func (w *WorkRecord) DisplayThumbnail() string {
	if w.BannerImageURL != "" {
		return w.BannerImageURL
	}
	if w.ThumbnailURL != "" {
		return w.ThumbnailURL
	}
	if w.PreviewImageURL != "" {
		return w.PreviewImageURL
	}
	return ""
}

// ClassifiableText 拼接用于行业分类的文本（标题 + 描述 + 客户名 + 标签）
func (w *WorkRecord) ClassifiableText() string {
	parts := make([]string, 0, 4+len(w.Tags))
	if w.Title != "" {
		parts = append(parts, w.Title)
	}
	if w.Description != "" {
		parts = append(parts, w.Description)
	}
	if w.Summary != "" {
		parts = append(parts, w.Summary)
	}
	if w.ClientName != "" {
		parts = append(parts, w.ClientName)
	}
	parts = append(parts, w.Tags...)
	return strings.Join(parts, " ")
}

// WorkFilter 作品查询过滤条件，nil 字段表示不限制
type WorkFilter struct {
	CreatedAtGte *time.Time
	ViewCountGt  *int
	UserIDIn     []string
}

// WorkOrderKey 多键排序项，NullsLast 控制 NULL 值的排序位置
type WorkOrderKey struct {
	Column    string
	Desc      bool
	NullsLast bool
}
