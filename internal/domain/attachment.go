package domain

import (
	"time"
)

// Attachment 只记录附件的元数据，文件本体由对象存储服务负责
type Attachment struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}
