package quickquestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/cst"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/kv"
)

var _ KVMapper = (*kvMapper)(nil)

var ErrNotFound = errors.New("quick question not found")

type KVMapper interface {
	Append(ctx context.Context, uid string, q *QuickQuestion) error
	List(ctx context.Context, uid string) ([]*QuickQuestion, error)
	SetFeedback(ctx context.Context, uid, qid, rating string) error
	DeleteAll(ctx context.Context, uid string) error
}

type kvMapper struct {
	store kv.Store
}

func NewQuickQuestionKVMapper(store kv.Store) KVMapper {
	return &kvMapper{store: store}
}

func listKey(uid string) string {
	return fmt.Sprintf(cst.KeyQuickQuestions, uid)
}

func (m *kvMapper) load(ctx context.Context, uid string) ([]*QuickQuestion, error) {
	qs, err := kv.GetAs[[]*QuickQuestion](ctx, m.store, listKey(uid))
	if errors.Is(err, kv.ErrNotFound) {
		return []*QuickQuestion{}, nil
	}
	if err != nil {
		return nil, err
	}
	return *qs, nil
}

// Append 追加一条记录并整表回写, 追加的在最后
func (m *kvMapper) Append(ctx context.Context, uid string, q *QuickQuestion) error {
	qs, err := m.load(ctx, uid)
	if err != nil {
		return err
	}
	q.Feedback = nil
	return kv.SetAs(ctx, m.store, listKey(uid), append(qs, q))
}

// List 列表顺序即写入顺序
func (m *kvMapper) List(ctx context.Context, uid string) ([]*QuickQuestion, error) {
	return m.load(ctx, uid)
}

// SetFeedback 设置指定记录的评分并整表回写
func (m *kvMapper) SetFeedback(ctx context.Context, uid, qid, rating string) error {
	qs, err := m.load(ctx, uid)
	if err != nil {
		return err
	}
	for _, q := range qs {
		if q.Id == qid {
			q.Feedback = &rating
			return kv.SetAs(ctx, m.store, listKey(uid), qs)
		}
	}
	return ErrNotFound
}

// DeleteAll 删除用户的整表, 不存在时也成功
func (m *kvMapper) DeleteAll(ctx context.Context, uid string) error {
	return m.store.Del(ctx, listKey(uid))
}
