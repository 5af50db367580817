package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/cst"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/kv"
)

func newMapper() (KVMapper, *kv.MemStore) {
	s := kv.NewMemStore()
	return NewConversationKVMapper(s), s
}

func TestCreateNewConversation(t *testing.T) {
	ctx := context.Background()
	m, _ := newMapper()

	c, err := m.CreateNewConversation(ctx, "u1", "임대차 상담")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Id)
	assert.Equal(t, "u1", c.UserId)
	assert.Equal(t, "임대차 상담", c.Title)
	assert.Empty(t, c.Messages)

	// 空标题回落到默认标题
	c2, err := m.CreateNewConversation(ctx, "u1", "")
	require.NoError(t, err)
	assert.Equal(t, cst.DefaultTitle, c2.Title)
}

func TestCreateConversationQuota(t *testing.T) {
	ctx := context.Background()
	m, s := newMapper()

	for i := 0; i < cst.MaxConversations; i++ {
		_, err := m.CreateNewConversation(ctx, "u1", "t")
		require.NoError(t, err)
	}
	before := s.Len()

	_, err := m.CreateNewConversation(ctx, "u1", "t")
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	// 拒绝时不应产生任何写入
	assert.Equal(t, before, s.Len())

	// 上限按用户隔离
	_, err = m.CreateNewConversation(ctx, "u2", "t")
	assert.NoError(t, err)
}

func TestListConversationsNewestFirst(t *testing.T) {
	ctx := context.Background()
	m, _ := newMapper()

	c1, _ := m.CreateNewConversation(ctx, "u1", "first")
	c2, _ := m.CreateNewConversation(ctx, "u1", "second")

	cs, err := m.ListConversations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, c2.Id, cs[0].Id)
	assert.Equal(t, c1.Id, cs[1].Id)
	// 概要不带消息
	assert.Nil(t, cs[0].Messages)
}

func TestListConversationsEmpty(t *testing.T) {
	ctx := context.Background()
	m, _ := newMapper()

	cs, err := m.ListConversations(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, cs)
	assert.Empty(t, cs)
}

func TestFindConversationOwnership(t *testing.T) {
	ctx := context.Background()
	m, _ := newMapper()

	c, _ := m.CreateNewConversation(ctx, "u1", "t")

	_, err := m.FindConversation(ctx, "u1", "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)

	// 其他用户的键空间里不存在该记录
	_, err = m.FindConversation(ctx, "u2", c.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteConversation(t *testing.T) {
	ctx := context.Background()
	m, _ := newMapper()

	c1, _ := m.CreateNewConversation(ctx, "u1", "a")
	c2, _ := m.CreateNewConversation(ctx, "u1", "b")

	require.NoError(t, m.DeleteConversation(ctx, "u1", c1.Id))

	_, err := m.FindConversation(ctx, "u1", c1.Id)
	assert.ErrorIs(t, err, ErrNotFound)

	cs, err := m.ListConversations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, c2.Id, cs[0].Id)

	// 删除后配额立即释放
	_, err = m.CreateNewConversation(ctx, "u1", "c")
	assert.NoError(t, err)

	assert.ErrorIs(t, m.DeleteConversation(ctx, "u1", c1.Id), ErrNotFound)
}

func TestAppendMessage(t *testing.T) {
	ctx := context.Background()
	m, _ := newMapper()

	c, _ := m.CreateNewConversation(ctx, "u1", "t")
	before := c.UpdatedAt

	_, err := m.AppendMessage(ctx, "u1", c.Id, &Message{Id: "m1", Role: cst.RoleUser, Content: "건폐율이 뭔가요?", Timestamp: time.Now()})
	require.NoError(t, err)
	_, err = m.AppendMessage(ctx, "u1", c.Id, &Message{Id: "m2", Role: cst.RoleBot, Content: "건폐율은...", Timestamp: time.Now()})
	require.NoError(t, err)

	got, err := m.FindConversation(ctx, "u1", c.Id)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "m1", got.Messages[0].Id)
	assert.Equal(t, "m2", got.Messages[1].Id)
	assert.False(t, got.UpdatedAt.Before(before))

	_, err = m.AppendMessage(ctx, "u1", "no-such-id", &Message{Id: "m3"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttachFeedbackOverwrite(t *testing.T) {
	ctx := context.Background()
	m, _ := newMapper()

	c, _ := m.CreateNewConversation(ctx, "u1", "t")
	_, err := m.AppendMessage(ctx, "u1", c.Id, &Message{Id: "m1", Role: cst.RoleBot, Content: "답변"})
	require.NoError(t, err)

	fb, err := m.AttachFeedback(ctx, "u1", c.Id, "m1", cst.RatingPositive)
	require.NoError(t, err)
	assert.Equal(t, cst.RatingPositive, fb.Rating)

	// 再次评价覆盖旧值
	fb, err = m.AttachFeedback(ctx, "u1", c.Id, "m1", cst.RatingNegative)
	require.NoError(t, err)
	assert.Equal(t, cst.RatingNegative, fb.Rating)

	got, err := m.LookupFeedback(ctx, "u1", "m1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cst.RatingNegative, got.Rating)

	_, err = m.AttachFeedback(ctx, "u1", c.Id, "no-such-message", cst.RatingPositive)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestLookupFeedbackAbsent(t *testing.T) {
	ctx := context.Background()
	m, _ := newMapper()

	c, _ := m.CreateNewConversation(ctx, "u1", "t")
	_, err := m.AppendMessage(ctx, "u1", c.Id, &Message{Id: "m1"})
	require.NoError(t, err)

	// 消息存在但尚未评价, 视作未找到而非错误
	fb, err := m.LookupFeedback(ctx, "u1", "m1")
	require.NoError(t, err)
	assert.Nil(t, fb)

	fb, err = m.LookupFeedback(ctx, "u1", "no-such-message")
	require.NoError(t, err)
	assert.Nil(t, fb)
}

func TestDeleteAllConversations(t *testing.T) {
	ctx := context.Background()
	m, s := newMapper()

	_, _ = m.CreateNewConversation(ctx, "u1", "a")
	_, _ = m.CreateNewConversation(ctx, "u1", "b")
	keep, _ := m.CreateNewConversation(ctx, "u2", "other")

	require.NoError(t, m.DeleteAllConversations(ctx, "u1"))

	cs, err := m.ListConversations(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cs)

	// 其他用户不受影响
	_, err = m.FindConversation(ctx, "u2", keep.Id)
	assert.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	// 空账号清理也成功
	assert.NoError(t, m.DeleteAllConversations(ctx, "u3"))
}
