package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/adaptor/controller/core_api"
)

// register 注册全部路由
func register(h *server.Hertz) {
	h.GET("/health", core_api.Health)
	h.POST("/signup", core_api.SignUp)

	h.POST("/conversations", core_api.CreateConversation)
	h.GET("/conversations", core_api.ListConversation)
	h.DELETE("/conversations/:id", core_api.DeleteConversation)

	h.POST("/messages", core_api.AppendMessage)
	h.GET("/messages/:conversationId", core_api.ListMessages)

	h.POST("/feedback", core_api.AttachFeedback)
	h.GET("/feedback/:messageId", core_api.LookupFeedback)
	h.POST("/general-feedback", core_api.SubmitGeneralFeedback)
	h.GET("/admin/feedbacks", core_api.ListAllFeedback)

	h.POST("/quick-question", core_api.AppendQuickQuestion)
	h.GET("/quick-questions", core_api.ListQuickQuestion)
	h.POST("/quick-question-feedback", core_api.QuickQuestionFeedback)

	h.DELETE("/user/delete", core_api.EraseAccount)
}
