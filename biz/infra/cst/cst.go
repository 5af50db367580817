package cst

// 消息角色
const (
	// RoleUser 用户消息
	RoleUser = "user"
	// RoleBot AI回复消息
	RoleBot = "bot"
)

// 反馈评分
const (
	RatingPositive = "positive"
	RatingNegative = "negative"
)

// KV键格式, 与线上已有数据兼容, 不可改动
const (
	// KeyConversation -> conversation:{userId}:{conversationId}
	KeyConversation = "conversation:%s:%s"
	// KeyConversationIndex -> conversations:{userId}, 对话id列表, 新建的在最前
	KeyConversationIndex = "conversations:%s"
	// KeyQuickQuestions -> quickQuestions:{userId}, 快速问答整表
	KeyQuickQuestions = "quickQuestions:%s"
	// KeyFeedback -> feedback:{feedbackId}
	KeyFeedback = "feedback:%s"
	// KeyFeedbackIndex 全量反馈id列表, 新提交的在最前
	KeyFeedbackIndex = "feedbacks:all"
)

const (
	// DefaultTitle 未命名对话的默认标题
	DefaultTitle = "새로운 대화"
	// DefaultFeedbackType 未指定类型的通用反馈
	DefaultFeedbackType = "general"
	// MaxConversations 单用户同时存在的对话上限
	MaxConversations = 3
)
