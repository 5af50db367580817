package provider

import (
	"github.com/google/wire"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/service"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/config"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/identity"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/kv"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/conversation"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/feedback"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/quickquestion"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config               *config.Config
	ConversationService  service.IConversationService
	MessageService       service.IMessageService
	FeedbackService      service.IFeedbackService
	QuickQuestionService service.IQuickQuestionService
	UserService          service.IUserService
}

func Get() *Provider {
	return provider
}

// AdminEmails 从配置取管理员白名单
func AdminEmails(c *config.Config) []string {
	return c.Admin.Emails
}

var ApplicationSet = wire.NewSet(
	service.ConversationServiceSet,
	service.MessageServiceSet,
	service.FeedbackServiceSet,
	service.QuickQuestionServiceSet,
	service.UserServiceSet,
)

var InfraSet = wire.NewSet(
	config.NewConfig,
	AdminEmails,
	kv.NewRedisStore,
	identity.NewHTTPProvider,
	conversation.NewConversationKVMapper,
	quickquestion.NewQuickQuestionKVMapper,
	feedback.NewFeedbackKVMapper,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfraSet,
)
