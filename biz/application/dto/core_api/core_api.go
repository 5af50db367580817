package core_api

import (
	"time"

	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/dto/basic"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/identity"
	mc "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/conversation"
	mf "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/feedback"
	mq "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/quickquestion"
)

// Conversation 对话概要, 列表接口不带消息
type Conversation struct {
	Id        string    `json:"id"`
	UserId    string    `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateConversationReq struct {
	Title string `json:"title"`
}

type CreateConversationResp struct {
	Resp         *basic.Response
	Conversation *mc.Conversation `json:"conversation,omitempty"`
}

type ListConversationReq struct{}

type ListConversationResp struct {
	Resp          *basic.Response
	Conversations []*Conversation `json:"conversations"`
}

type DeleteConversationReq struct {
	ConversationId string `path:"id"`
}

type DeleteConversationResp struct {
	Resp    *basic.Response
	Success bool `json:"success,omitempty"`
}

type AppendMessageReq struct {
	ConversationId string      `json:"conversationId"`
	Message        *mc.Message `json:"message"`
}

type AppendMessageResp struct {
	Resp    *basic.Response
	Success bool        `json:"success,omitempty"`
	Message *mc.Message `json:"message,omitempty"`
}

type ListMessagesReq struct {
	ConversationId string `path:"conversationId"`
}

type ListMessagesResp struct {
	Resp     *basic.Response
	Messages []*mc.Message `json:"messages"`
}

type AttachFeedbackReq struct {
	ConversationId string `json:"conversationId"`
	MessageId      string `json:"messageId"`
	Rating         string `json:"rating"` // positive / negative
}

type AttachFeedbackResp struct {
	Resp     *basic.Response
	Success  bool         `json:"success,omitempty"`
	Feedback *mc.Feedback `json:"feedback,omitempty"`
}

type LookupFeedbackReq struct {
	MessageId string `path:"messageId"`
}

type LookupFeedbackResp struct {
	Resp *basic.Response
	// Feedback 未找到时为null
	Feedback *mc.Feedback `json:"feedback"`
}

type SubmitGeneralFeedbackReq struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

type SubmitGeneralFeedbackResp struct {
	Resp     *basic.Response
	Success  bool                `json:"success,omitempty"`
	Feedback *mf.GeneralFeedback `json:"feedback,omitempty"`
}

type ListAllFeedbackReq struct{}

type ListAllFeedbackResp struct {
	Resp      *basic.Response
	Feedbacks []*mf.GeneralFeedback `json:"feedbacks"`
}

type AppendQuickQuestionReq struct {
	QuestionId string    `json:"questionId"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Timestamp  time.Time `json:"timestamp"`
}

type AppendQuickQuestionResp struct {
	Resp    *basic.Response
	Success bool `json:"success,omitempty"`
}

type ListQuickQuestionReq struct{}

type ListQuickQuestionResp struct {
	Resp      *basic.Response
	Questions []*mq.QuickQuestion `json:"questions"`
}

type QuickQuestionFeedbackReq struct {
	QuestionId string `json:"questionId"`
	Rating     string `json:"rating"`
}

type QuickQuestionFeedbackResp struct {
	Resp    *basic.Response
	Success bool `json:"success,omitempty"`
}

type SignUpReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type SignUpResp struct {
	Resp *basic.Response
	User *identity.Principal `json:"user,omitempty"`
}

type EraseAccountReq struct{}

type EraseAccountResp struct {
	Resp    *basic.Response
	Success bool `json:"success,omitempty"`
}
