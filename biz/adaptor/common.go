package adaptor

import (
	"context"
	"errors"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/identity"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/logs"
	"go.opentelemetry.io/otel/propagation"
)

const hertzContext = "hertz_context"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// ExtractPrincipal 从请求头取Bearer凭证并向身份提供方校验
// 凭证缺失/格式错误/被拒绝/提供方异常统一视作鉴权失败, 不重试
func ExtractPrincipal(ctx context.Context) (p *identity.Principal, err error) {
	defer func() {
		if err != nil {
			logs.CtxInfof(ctx, "extract principal fail, err=%v", err)
		}
	}()
	c, err := ExtractContext(ctx)
	if err != nil {
		return nil, err
	}
	auth := string(c.GetHeader("Authorization"))
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil, errors.New("missing bearer token")
	}
	return identity.Get().VerifyToken(ctx, strings.TrimPrefix(auth, "Bearer "))
}

var _ propagation.TextMapCarrier = &headerProvider{}

type headerProvider struct {
	headers *protocol.ResponseHeader
}

// Get a value from metadata by key
func (m *headerProvider) Get(key string) string {
	return m.headers.Get(key)
}

// Set a value to metadata by k/v
func (m *headerProvider) Set(key, value string) {
	m.headers.Set(key, value)
}

// Keys Iteratively get all keys of metadata
func (m *headerProvider) Keys() []string {
	out := make([]string, 0)
	m.headers.VisitAll(func(key, value []byte) {
		out = append(out, string(key))
	})
	return out
}
