package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/cst"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/kv"
)

var _ KVMapper = (*kvMapper)(nil)

var (
	ErrNotFound        = errors.New("conversation not found")
	ErrForbidden       = errors.New("unauthorized access to conversation")
	ErrQuotaExceeded   = errors.New("conversation quota exceeded")
	ErrMessageNotFound = errors.New("message not found")
)

type KVMapper interface {
	CreateNewConversation(ctx context.Context, uid, title string) (*Conversation, error)
	ListConversations(ctx context.Context, uid string) ([]*Conversation, error)
	FindConversation(ctx context.Context, uid, cid string) (*Conversation, error)
	DeleteConversation(ctx context.Context, uid, cid string) error
	AppendMessage(ctx context.Context, uid, cid string, msg *Message) (*Message, error)
	AttachFeedback(ctx context.Context, uid, cid, mid, rating string) (*Feedback, error)
	LookupFeedback(ctx context.Context, uid, mid string) (*Feedback, error)
	DeleteAllConversations(ctx context.Context, uid string) error
}

type kvMapper struct {
	store kv.Store
}

func NewConversationKVMapper(store kv.Store) KVMapper {
	return &kvMapper{store: store}
}

func recordKey(uid, cid string) string {
	return fmt.Sprintf(cst.KeyConversation, uid, cid)
}

func indexKey(uid string) string {
	return fmt.Sprintf(cst.KeyConversationIndex, uid)
}

// CreateNewConversation 创建一个新对话并写入用户索引
// 读索引和写记录之间没有锁, 并发创建可能短暂超出上限, 单用户低并发下可接受
func (m *kvMapper) CreateNewConversation(ctx context.Context, uid, title string) (*Conversation, error) {
	ids, err := kv.GetList(ctx, m.store, indexKey(uid))
	if err != nil {
		return nil, err
	}
	if len(ids) >= cst.MaxConversations {
		return nil, ErrQuotaExceeded
	}

	if title == "" {
		title = cst.DefaultTitle
	}
	now := time.Now()
	c := &Conversation{
		Id:        uuid.NewString(),
		UserId:    uid,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  []*Message{},
	}
	if err = kv.SetAs(ctx, m.store, recordKey(uid, c.Id), c); err != nil {
		return nil, err
	}
	// 新建的排最前
	if err = kv.SetAs(ctx, m.store, indexKey(uid), append([]string{c.Id}, ids...)); err != nil {
		return nil, err
	}
	return c, nil
}

// ListConversations 返回用户的对话概要, 一次批量读取, 索引里已失效的id直接跳过
func (m *kvMapper) ListConversations(ctx context.Context, uid string) ([]*Conversation, error) {
	ids, err := kv.GetList(ctx, m.store, indexKey(uid))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*Conversation{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = recordKey(uid, id)
	}
	cs, err := kv.MGetAs[Conversation](ctx, m.store, keys...)
	if err != nil {
		return nil, err
	}
	// 概要不带消息
	for _, c := range cs {
		c.Messages = nil
	}
	return cs, nil
}

func (m *kvMapper) FindConversation(ctx context.Context, uid, cid string) (*Conversation, error) {
	c, err := kv.GetAs[Conversation](ctx, m.store, recordKey(uid, cid))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if c.UserId != uid {
		return nil, ErrForbidden
	}
	return c, nil
}

// DeleteConversation 删除记录并重写索引, 索引重写对已缺失的id是幂等的
func (m *kvMapper) DeleteConversation(ctx context.Context, uid, cid string) error {
	if _, err := m.FindConversation(ctx, uid, cid); err != nil {
		return err
	}
	if err := m.store.Del(ctx, recordKey(uid, cid)); err != nil {
		return err
	}

	ids, err := kv.GetList(ctx, m.store, indexKey(uid))
	if err != nil {
		return err
	}
	remain := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != cid {
			remain = append(remain, id)
		}
	}
	return kv.SetAs(ctx, m.store, indexKey(uid), remain)
}

// AppendMessage 追加消息并回写整条对话
// 两个并发Append各自读改写同一个键, 后写会覆盖先写追加的消息; 与线上行为一致, 不在存储层加锁
func (m *kvMapper) AppendMessage(ctx context.Context, uid, cid string, msg *Message) (*Message, error) {
	c, err := m.FindConversation(ctx, uid, cid)
	if err != nil {
		return nil, err
	}
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
	if err = kv.SetAs(ctx, m.store, recordKey(uid, cid), c); err != nil {
		return nil, err
	}
	return msg, nil
}

// AttachFeedback 覆盖写指定消息的反馈
func (m *kvMapper) AttachFeedback(ctx context.Context, uid, cid, mid, rating string) (*Feedback, error) {
	c, err := m.FindConversation(ctx, uid, cid)
	if err != nil {
		return nil, err
	}
	fb := &Feedback{Rating: rating, CreatedAt: time.Now()}
	for _, msg := range c.Messages {
		if msg.Id == mid {
			msg.Feedback = fb
			if err = kv.SetAs(ctx, m.store, recordKey(uid, cid), c); err != nil {
				return nil, err
			}
			return fb, nil
		}
	}
	return nil, ErrMessageNotFound
}

// LookupFeedback 在用户全部对话中查找消息反馈, 无命中时返回nil
// 单用户最多3个对话, 线性扫描即可
func (m *kvMapper) LookupFeedback(ctx context.Context, uid, mid string) (*Feedback, error) {
	ids, err := kv.GetList(ctx, m.store, indexKey(uid))
	if err != nil {
		return nil, err
	}
	for _, cid := range ids {
		c, err := kv.GetAs[Conversation](ctx, m.store, recordKey(uid, cid))
		if err != nil {
			continue
		}
		for _, msg := range c.Messages {
			if msg.Id == mid && msg.Feedback != nil {
				return msg.Feedback, nil
			}
		}
	}
	return nil, nil
}

// DeleteAllConversations 批量删除用户全部对话记录及其索引
func (m *kvMapper) DeleteAllConversations(ctx context.Context, uid string) error {
	ids, err := kv.GetList(ctx, m.store, indexKey(uid))
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = recordKey(uid, id)
		}
		if err = m.store.Del(ctx, keys...); err != nil {
			return err
		}
	}
	return m.store.Del(ctx, indexKey(uid))
}
