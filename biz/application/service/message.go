package service

import (
	"context"
	"errors"

	"github.com/google/wire"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/adaptor"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/dto/core_api"
	mc "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/conversation"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/util"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/logs"
	"github.com/Hongbi-Kim/wavespace-core-api/types/errno"
)

type IMessageService interface {
	AppendMessage(ctx context.Context, req *core_api.AppendMessageReq) (*core_api.AppendMessageResp, error)
	ListMessages(ctx context.Context, req *core_api.ListMessagesReq) (*core_api.ListMessagesResp, error)
}

type MessageService struct {
	ConversationMapper mc.KVMapper
}

var MessageServiceSet = wire.NewSet(
	wire.Struct(new(MessageService), "*"),
	wire.Bind(new(IMessageService), new(*MessageService)),
)

func (s *MessageService) AppendMessage(ctx context.Context, req *core_api.AppendMessageReq) (*core_api.AppendMessageResp, error) {
	// 鉴权
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}
	if req.Message == nil {
		return nil, errorx.New(errno.MessageAppendErrCode, errorx.KV("reason", "empty message"))
	}

	msg, err := s.ConversationMapper.AppendMessage(ctx, p.Id, req.ConversationId, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, mc.ErrNotFound):
			return nil, errorx.WrapByCode(err, errno.ConversationNotFoundErrCode)
		case errors.Is(err, mc.ErrForbidden):
			return nil, errorx.WrapByCode(err, errno.ConversationForbiddenErrCode)
		}
		logs.CtxErrorf(ctx, "append message error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.MessageAppendErrCode)
	}
	return &core_api.AppendMessageResp{Resp: util.Success(), Success: true, Message: msg}, nil
}

func (s *MessageService) ListMessages(ctx context.Context, req *core_api.ListMessagesReq) (*core_api.ListMessagesResp, error) {
	// 鉴权
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	c, err := s.ConversationMapper.FindConversation(ctx, p.Id, req.ConversationId)
	if err != nil {
		switch {
		case errors.Is(err, mc.ErrNotFound):
			return nil, errorx.WrapByCode(err, errno.ConversationNotFoundErrCode)
		case errors.Is(err, mc.ErrForbidden):
			// 对话存在但属于其他用户
			return nil, errorx.WrapByCode(err, errno.ConversationForbiddenErrCode)
		}
		logs.CtxErrorf(ctx, "list messages error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.MessageListErrCode)
	}
	msgs := c.Messages
	if msgs == nil {
		msgs = []*mc.Message{}
	}
	return &core_api.ListMessagesResp{Resp: util.Success(), Messages: msgs}, nil
}
