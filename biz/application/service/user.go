package service

import (
	"context"

	"github.com/google/wire"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/adaptor"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/dto/core_api"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/identity"
	mc "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/conversation"
	mq "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/quickquestion"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/util"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/logs"
	"github.com/Hongbi-Kim/wavespace-core-api/types/errno"
)

type IUserService interface {
	SignUp(ctx context.Context, req *core_api.SignUpReq) (*core_api.SignUpResp, error)
	EraseAccount(ctx context.Context, req *core_api.EraseAccountReq) (*core_api.EraseAccountResp, error)
}

type UserService struct {
	Identity            identity.Provider
	ConversationMapper  mc.KVMapper
	QuickQuestionMapper mq.KVMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// SignUp 注册直接委托给身份提供方, 本服务不保存账号数据
func (u *UserService) SignUp(ctx context.Context, req *core_api.SignUpReq) (*core_api.SignUpResp, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errorx.New(errno.ErrSignUp, errorx.KV("reason", "email and password required"))
	}

	p, err := u.Identity.CreateUser(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		logs.CtxErrorf(ctx, "sign up error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ErrSignUp)
	}
	return &core_api.SignUpResp{Resp: util.Success(), User: p}, nil
}

// EraseAccount 级联删除用户数据
// 先清KV侧(对话记录 -> 对话索引 -> 快速问答), 最后删身份记录
// 身份提供方删除失败时KV侧已清空, 整体返回失败; KV清理是幂等的, 调用方重试即可
func (u *UserService) EraseAccount(ctx context.Context, req *core_api.EraseAccountReq) (*core_api.EraseAccountResp, error) {
	// 鉴权
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	if err = u.ConversationMapper.DeleteAllConversations(ctx, p.Id); err != nil {
		logs.CtxErrorf(ctx, "erase conversations error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ErrEraseAccount)
	}
	if err = u.QuickQuestionMapper.DeleteAll(ctx, p.Id); err != nil {
		logs.CtxErrorf(ctx, "erase quick questions error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ErrEraseAccount)
	}
	if err = u.Identity.DeleteUser(ctx, p.Id); err != nil {
		logs.CtxErrorf(ctx, "delete identity error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ErrEraseAccount)
	}
	return &core_api.EraseAccountResp{Resp: util.Success(), Success: true}, nil
}
