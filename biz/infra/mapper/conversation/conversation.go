package conversation

import (
	"encoding/json"
	"time"
)

// Conversation 对话记录, 消息内嵌, 整体序列化后存于 conversation:{userId}:{conversationId}
type Conversation struct {
	Id        string     `json:"id"`
	UserId    string     `json:"userId"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Messages  []*Message `json:"messages"`
}

// Message 消息只增不删不改, 仅feedback字段允许覆盖
type Message struct {
	Id        string    `json:"id"`
	Role      string    `json:"role"` // user / bot
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	// References 答案引用的法规文档, 由问答管线生成, 存储侧当作不透明数据
	References []json.RawMessage `json:"references,omitempty"`
	Feedback   *Feedback         `json:"feedback,omitempty"`
}

// Feedback 消息评价, 重复提交时后写覆盖
type Feedback struct {
	Rating    string    `json:"rating"` // positive / negative
	CreatedAt time.Time `json:"createdAt"`
}
