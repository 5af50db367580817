package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/adaptor"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/dto/core_api"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/cst"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/identity"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/kv"
	mc "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/conversation"
	mf "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/feedback"
	mq "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/quickquestion"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx"
	"github.com/Hongbi-Kim/wavespace-core-api/types/errno"
)

// stubIdentity 测试用身份提供方, 凭证一律映射到固定Principal
type stubIdentity struct {
	principal *identity.Principal
	created   []string
	deleted   []string
	fail      bool
}

func (s *stubIdentity) VerifyToken(_ context.Context, _ string) (*identity.Principal, error) {
	if s.principal == nil {
		return nil, errors.New("invalid token")
	}
	return s.principal, nil
}

func (s *stubIdentity) CreateUser(_ context.Context, email, _, _ string) (*identity.Principal, error) {
	if s.fail {
		return nil, errors.New("identity provider unavailable")
	}
	s.created = append(s.created, email)
	return &identity.Principal{Id: "uid-" + email, Email: email}, nil
}

func (s *stubIdentity) DeleteUser(_ context.Context, uid string) error {
	if s.fail {
		return errors.New("identity provider unavailable")
	}
	s.deleted = append(s.deleted, uid)
	return nil
}

// authedCtx 构造带Bearer头的请求上下文并注册stub身份提供方
func authedCtx(p *identity.Principal) context.Context {
	identity.Set(&stubIdentity{principal: p})
	c := app.NewContext(0)
	c.Request.Header.Set("Authorization", "Bearer test-token")
	return adaptor.InjectContext(context.Background(), c)
}

// anonCtx 无凭证的请求上下文
func anonCtx() context.Context {
	identity.Set(&stubIdentity{})
	return adaptor.InjectContext(context.Background(), app.NewContext(0))
}

func assertErrCode(t *testing.T, err error, wantCode int32, wantStatus int) {
	t.Helper()
	var se errorx.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, wantCode, se.Code())
	assert.Equal(t, wantStatus, se.HTTPStatus())
}

func newConversationService() (*ConversationService, *MessageService, *FeedbackService) {
	store := kv.NewMemStore()
	cm := mc.NewConversationKVMapper(store)
	return &ConversationService{ConversationMapper: cm},
		&MessageService{ConversationMapper: cm},
		&FeedbackService{
			ConversationMapper: cm,
			FeedbackMapper:     mf.NewFeedbackKVMapper(store),
			AdminEmails:        []string{"admin@wavespace.kr"},
		}
}

func TestConversationLifecycle(t *testing.T) {
	cs, ms, fs := newConversationService()
	ctx := authedCtx(&identity.Principal{Id: "u1", Email: "u1@example.com"})

	// 建满3个
	var first *core_api.CreateConversationResp
	for i := 0; i < cst.MaxConversations; i++ {
		resp, err := cs.CreateConversation(ctx, &core_api.CreateConversationReq{Title: "상담"})
		require.NoError(t, err)
		if first == nil {
			first = resp
		}
	}

	// 第4个触发配额
	_, err := cs.CreateConversation(ctx, &core_api.CreateConversationReq{})
	assertErrCode(t, err, errno.ConversationQuotaErrCode, http.StatusBadRequest)

	list, err := cs.ListConversation(ctx, &core_api.ListConversationReq{})
	require.NoError(t, err)
	require.Len(t, list.Conversations, 3)
	// 最新的排最前
	assert.Equal(t, first.Conversation.Id, list.Conversations[2].Id)

	// 删一个后可以再建
	del, err := cs.DeleteConversation(ctx, &core_api.DeleteConversationReq{ConversationId: list.Conversations[1].Id})
	require.NoError(t, err)
	assert.True(t, del.Success)
	_, err = cs.CreateConversation(ctx, &core_api.CreateConversationReq{Title: "새 상담"})
	require.NoError(t, err)

	// 对话消息往返
	cid := first.Conversation.Id
	appendResp, err := ms.AppendMessage(ctx, &core_api.AppendMessageReq{
		ConversationId: cid,
		Message:        &mc.Message{Id: "m1", Role: cst.RoleUser, Content: "건폐율이 뭔가요?", Timestamp: time.Now()},
	})
	require.NoError(t, err)
	assert.True(t, appendResp.Success)

	msgs, err := ms.ListMessages(ctx, &core_api.ListMessagesReq{ConversationId: cid})
	require.NoError(t, err)
	require.Len(t, msgs.Messages, 1)
	assert.Equal(t, "m1", msgs.Messages[0].Id)

	// 评价覆盖: positive -> negative
	_, err = fs.AttachFeedback(ctx, &core_api.AttachFeedbackReq{ConversationId: cid, MessageId: "m1", Rating: cst.RatingPositive})
	require.NoError(t, err)
	lookup, err := fs.LookupFeedback(ctx, &core_api.LookupFeedbackReq{MessageId: "m1"})
	require.NoError(t, err)
	require.NotNil(t, lookup.Feedback)
	assert.Equal(t, cst.RatingPositive, lookup.Feedback.Rating)

	_, err = fs.AttachFeedback(ctx, &core_api.AttachFeedbackReq{ConversationId: cid, MessageId: "m1", Rating: cst.RatingNegative})
	require.NoError(t, err)
	lookup, err = fs.LookupFeedback(ctx, &core_api.LookupFeedbackReq{MessageId: "m1"})
	require.NoError(t, err)
	assert.Equal(t, cst.RatingNegative, lookup.Feedback.Rating)
}

func TestConversationUnauthorized(t *testing.T) {
	cs, ms, _ := newConversationService()
	ctx := anonCtx()

	_, err := cs.CreateConversation(ctx, &core_api.CreateConversationReq{})
	assertErrCode(t, err, errno.UnAuthErrCode, http.StatusUnauthorized)
	_, err = cs.ListConversation(ctx, &core_api.ListConversationReq{})
	assertErrCode(t, err, errno.UnAuthErrCode, http.StatusUnauthorized)
	_, err = ms.ListMessages(ctx, &core_api.ListMessagesReq{ConversationId: "x"})
	assertErrCode(t, err, errno.UnAuthErrCode, http.StatusUnauthorized)
}

func TestListMessagesNotFound(t *testing.T) {
	cs, ms, _ := newConversationService()

	owner := authedCtx(&identity.Principal{Id: "u1"})
	created, err := cs.CreateConversation(owner, &core_api.CreateConversationReq{})
	require.NoError(t, err)

	_, err = ms.ListMessages(owner, &core_api.ListMessagesReq{ConversationId: "no-such-id"})
	assertErrCode(t, err, errno.ConversationNotFoundErrCode, http.StatusNotFound)

	// 其他用户不可见
	other := authedCtx(&identity.Principal{Id: "u2"})
	_, err = ms.ListMessages(other, &core_api.ListMessagesReq{ConversationId: created.Conversation.Id})
	assertErrCode(t, err, errno.ConversationNotFoundErrCode, http.StatusNotFound)
}

func TestAppendMessageValidation(t *testing.T) {
	_, ms, _ := newConversationService()
	ctx := authedCtx(&identity.Principal{Id: "u1"})

	_, err := ms.AppendMessage(ctx, &core_api.AppendMessageReq{ConversationId: "c1"})
	assertErrCode(t, err, errno.MessageAppendErrCode, http.StatusInternalServerError)
}

func TestAttachFeedbackMessageNotFound(t *testing.T) {
	cs, _, fs := newConversationService()
	ctx := authedCtx(&identity.Principal{Id: "u1"})

	created, err := cs.CreateConversation(ctx, &core_api.CreateConversationReq{})
	require.NoError(t, err)

	_, err = fs.AttachFeedback(ctx, &core_api.AttachFeedbackReq{ConversationId: created.Conversation.Id, MessageId: "nope", Rating: cst.RatingPositive})
	assertErrCode(t, err, errno.MessageNotFoundErrCode, http.StatusNotFound)

	_, err = fs.AttachFeedback(ctx, &core_api.AttachFeedbackReq{ConversationId: "nope", MessageId: "m", Rating: cst.RatingPositive})
	assertErrCode(t, err, errno.ConversationNotFoundErrCode, http.StatusNotFound)
}

func TestLookupFeedbackNull(t *testing.T) {
	_, _, fs := newConversationService()
	ctx := authedCtx(&identity.Principal{Id: "u1"})

	// 无评价时不报错, feedback为null
	lookup, err := fs.LookupFeedback(ctx, &core_api.LookupFeedbackReq{MessageId: "never-rated"})
	require.NoError(t, err)
	assert.Nil(t, lookup.Feedback)
}

func TestGeneralFeedbackAndAdminGate(t *testing.T) {
	_, _, fs := newConversationService()

	user := authedCtx(&identity.Principal{Id: "u1", Email: "u1@example.com"})
	submitted, err := fs.SubmitGeneralFeedback(user, &core_api.SubmitGeneralFeedbackReq{Content: "답변 속도가 느려요"})
	require.NoError(t, err)
	// 未指定类型时落默认值
	assert.Equal(t, cst.DefaultFeedbackType, submitted.Feedback.Type)
	assert.Equal(t, "u1@example.com", submitted.Feedback.UserEmail)

	// 白名单外403
	_, err = fs.ListAllFeedback(user, &core_api.ListAllFeedbackReq{})
	assertErrCode(t, err, errno.FeedbackAdminOnlyErrCode, http.StatusForbidden)

	admin := authedCtx(&identity.Principal{Id: "a1", Email: "admin@wavespace.kr"})
	all, err := fs.ListAllFeedback(admin, &core_api.ListAllFeedbackReq{})
	require.NoError(t, err)
	require.Len(t, all.Feedbacks, 1)
	assert.Equal(t, "답변 속도가 느려요", all.Feedbacks[0].Content)
}

func TestQuickQuestionFlow(t *testing.T) {
	qs := &QuickQuestionService{QuickQuestionMapper: mq.NewQuickQuestionKVMapper(kv.NewMemStore())}
	ctx := authedCtx(&identity.Principal{Id: "u1"})

	_, err := qs.AppendQuickQuestion(ctx, &core_api.AppendQuickQuestionReq{
		QuestionId: "q1", Question: "전세권이란?", Answer: "전세권은...", Timestamp: time.Now(),
	})
	require.NoError(t, err)

	list, err := qs.ListQuickQuestion(ctx, &core_api.ListQuickQuestionReq{})
	require.NoError(t, err)
	require.Len(t, list.Questions, 1)
	assert.Nil(t, list.Questions[0].Feedback)

	_, err = qs.QuickQuestionFeedback(ctx, &core_api.QuickQuestionFeedbackReq{QuestionId: "q1", Rating: cst.RatingPositive})
	require.NoError(t, err)
	list, _ = qs.ListQuickQuestion(ctx, &core_api.ListQuickQuestionReq{})
	require.NotNil(t, list.Questions[0].Feedback)
	assert.Equal(t, cst.RatingPositive, *list.Questions[0].Feedback)

	_, err = qs.QuickQuestionFeedback(ctx, &core_api.QuickQuestionFeedbackReq{QuestionId: "missing", Rating: cst.RatingPositive})
	assertErrCode(t, err, errno.QuickQuestionNotFoundErrCode, http.StatusNotFound)
}

func TestSignUp(t *testing.T) {
	stub := &stubIdentity{}
	us := &UserService{Identity: stub}

	_, err := us.SignUp(context.Background(), &core_api.SignUpReq{Email: "a@example.com"})
	assertErrCode(t, err, errno.ErrSignUp, http.StatusBadRequest)

	resp, err := us.SignUp(context.Background(), &core_api.SignUpReq{Email: "a@example.com", Password: "pw", Name: "김하나"})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", resp.User.Email)
	assert.Equal(t, []string{"a@example.com"}, stub.created)

	stub.fail = true
	_, err = us.SignUp(context.Background(), &core_api.SignUpReq{Email: "b@example.com", Password: "pw"})
	assertErrCode(t, err, errno.ErrSignUp, http.StatusBadRequest)
}

func TestEraseAccount(t *testing.T) {
	store := kv.NewMemStore()
	cm := mc.NewConversationKVMapper(store)
	qm := mq.NewQuickQuestionKVMapper(store)

	p := &identity.Principal{Id: "u1", Email: "u1@example.com"}
	stub := &stubIdentity{principal: p}
	identity.Set(stub)
	c := app.NewContext(0)
	c.Request.Header.Set("Authorization", "Bearer test-token")
	ctx := adaptor.InjectContext(context.Background(), c)

	us := &UserService{Identity: stub, ConversationMapper: cm, QuickQuestionMapper: qm}

	conv, err := cm.CreateNewConversation(ctx, "u1", "t")
	require.NoError(t, err)
	require.NoError(t, qm.Append(ctx, "u1", &mq.QuickQuestion{Id: "q1"}))

	resp, err := us.EraseAccount(ctx, &core_api.EraseAccountReq{})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"u1"}, stub.deleted)
	assert.Equal(t, 0, store.Len())

	_, err = cm.FindConversation(ctx, "u1", conv.Id)
	assert.ErrorIs(t, err, mc.ErrNotFound)
}

func TestEraseAccountIdentityFailure(t *testing.T) {
	store := kv.NewMemStore()
	cm := mc.NewConversationKVMapper(store)
	qm := mq.NewQuickQuestionKVMapper(store)

	p := &identity.Principal{Id: "u1"}
	stub := &stubIdentity{principal: p, fail: true}
	identity.Set(stub)
	c := app.NewContext(0)
	c.Request.Header.Set("Authorization", "Bearer test-token")
	ctx := adaptor.InjectContext(context.Background(), c)

	us := &UserService{Identity: stub, ConversationMapper: cm, QuickQuestionMapper: qm}

	_, err := us.EraseAccount(ctx, &core_api.EraseAccountReq{})
	// KV已清空但身份删除失败, 整体按失败返回
	assertErrCode(t, err, errno.ErrEraseAccount, http.StatusInternalServerError)
}
