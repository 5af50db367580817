package quickquestion

import "time"

// QuickQuestion 对话模型之外的一问一答记录
// 用户的全部记录作为一个列表整体存于 quickQuestions:{userId}
type QuickQuestion struct {
	Id        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
	// Feedback 评分, 未评价时为null
	Feedback *string `json:"feedback"`
}
