package feedback

import "time"

// GeneralFeedback 与对话无关的独立反馈记录, 存于 feedback:{feedbackId}
type GeneralFeedback struct {
	Id        string    `json:"id"`
	UserId    string    `json:"userId"`
	UserEmail string    `json:"userEmail"`
	Content   string    `json:"content"`
	Type      string    `json:"type"` // general / quick_question_feedback / ...
	CreatedAt time.Time `json:"createdAt"`
}
