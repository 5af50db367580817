package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/cst"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/kv"
)

var _ KVMapper = (*kvMapper)(nil)

type KVMapper interface {
	Insert(ctx context.Context, uid, email, content, typ string) (*GeneralFeedback, error)
	ListAll(ctx context.Context) ([]*GeneralFeedback, error)
}

type kvMapper struct {
	store kv.Store
}

func NewFeedbackKVMapper(store kv.Store) KVMapper {
	return &kvMapper{store: store}
}

// Insert 写入反馈记录并把id插到全局索引最前
func (m *kvMapper) Insert(ctx context.Context, uid, email, content, typ string) (*GeneralFeedback, error) {
	fb := &GeneralFeedback{
		Id:        uuid.NewString(),
		UserId:    uid,
		UserEmail: email,
		Content:   content,
		Type:      typ,
		CreatedAt: time.Now(),
	}
	if err := kv.SetAs(ctx, m.store, fmt.Sprintf(cst.KeyFeedback, fb.Id), fb); err != nil {
		return nil, err
	}
	ids, err := kv.GetList(ctx, m.store, cst.KeyFeedbackIndex)
	if err != nil {
		return nil, err
	}
	if err = kv.SetAs(ctx, m.store, cst.KeyFeedbackIndex, append([]string{fb.Id}, ids...)); err != nil {
		return nil, err
	}
	return fb, nil
}

// ListAll 全量读取, 一次批量get, 索引里已失效的id直接跳过
func (m *kvMapper) ListAll(ctx context.Context) ([]*GeneralFeedback, error) {
	ids, err := kv.GetList(ctx, m.store, cst.KeyFeedbackIndex)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*GeneralFeedback{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = fmt.Sprintf(cst.KeyFeedback, id)
	}
	return kv.MGetAs[GeneralFeedback](ctx, m.store, keys...)
}
