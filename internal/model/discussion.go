package model

type DiscussionPost struct {
	UUIDBase
	UserID       uint              `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Author       User              `gorm:"foreignKey:UserID" json:"author"`
	Title        string            `gorm:"size:255" json:"title"`
	Content      string            `gorm:"type:text;not null" json:"content"`
	LikesCount   int               `gorm:"default:0" json:"likesCount"`
	RepliesCount int               `gorm:"default:0" json:"repliesCount"`
	IsPinned     bool              `gorm:"default:false" json:"isPinned"`
	Replies      []DiscussionReply `gorm:"foreignKey:PostID" json:"replies,omitempty"`
}

func (DiscussionPost) TableName() string {
	return "discussion_posts"
}

type DiscussionReply struct {
	UUIDBase
	PostID     string `gorm:"index;type:varchar(36);not null" json:"postId"`
	UserID     uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Author     User   `gorm:"foreignKey:UserID" json:"author"`
	Content    string `gorm:"type:text;not null" json:"content"`
	LikesCount int    `gorm:"default:0" json:"likesCount"`
}

func (DiscussionReply) TableName() string {
	return "discussion_replies"
}

// PostLike dedupes likes: one row per (user, content type, content id).
type PostLike struct {
	BaseModel
	UserID      uint   `gorm:"uniqueIndex:idx_user_content;type:bigint unsigned" json:"userId"`
	ContentType string `gorm:"uniqueIndex:idx_user_content;size:20" json:"contentType"` // post, reply
	ContentID   string `gorm:"uniqueIndex:idx_user_content;size:36" json:"contentId"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
