package models

// FeedAuthor 热门作品条目中的作者信息。资料缺失时 DisplayName 取 "User"，
// 头像留空
type FeedAuthor struct {
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// TrendingFeedItem 热门作品条目：作品记录 + 作者资料 + 实时互动状态
type TrendingFeedItem struct {
	WorkRecord
	Author       FeedAuthor `json:"author"`
	LikeCount    int        `json:"likeCount"`
	CommentCount int        `json:"commentCount"`
	ViewerLiked  bool       `json:"viewerLiked"`
}

// TagCount 标签热度统计条目
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// DiscoveryData /discovery/trending 的数据体，按type参数选择返回的字段
type DiscoveryData struct {
	Featured []TrendingFeedItem `json:"featured,omitempty"`
	Tags     []TagCount         `json:"tags,omitempty"`
}
