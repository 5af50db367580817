package identity

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/config"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/util/httpx"
)

// identity 封装外部身份提供方: 校验Bearer凭证, 创建/删除身份记录
// 账号体系本身不归本服务管

// Principal 鉴权通过后的用户身份, 请求生命周期内不变
type Principal struct {
	Id    string `json:"id"`
	Email string `json:"email"`
}

type Provider interface {
	// VerifyToken 校验凭证并返回Principal, 凭证无效或提供方异常时返回错误, 不重试
	VerifyToken(ctx context.Context, token string) (*Principal, error)
	// CreateUser 创建身份记录, 邮箱直接置为已确认
	CreateUser(ctx context.Context, email, password, name string) (*Principal, error)
	// DeleteUser 删除身份记录
	DeleteUser(ctx context.Context, uid string) error
}

var provider Provider

// Set 注册全局Provider, 这里依赖provider的初始化来创建一个全局变量, 不是很好
func Set(p Provider) {
	provider = p
}

func Get() Provider {
	return provider
}

var _ Provider = (*httpProvider)(nil)

type httpProvider struct {
	c *config.Config
}

func NewHTTPProvider(c *config.Config) Provider {
	p := &httpProvider{c: c}
	Set(p)
	return p
}

type userPayload struct {
	Id           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

func (p *httpProvider) VerifyToken(ctx context.Context, token string) (*Principal, error) {
	if pk := p.c.Auth.PublicKey; pk != "" {
		return verifyLocal(token, pk)
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	header.Set("apikey", p.c.Identity.APIKey)
	u, err := httpx.Get[userPayload](ctx, p.c.Identity.BaseURL+"/auth/v1/user", header, nil)
	if err != nil {
		return nil, err
	}
	if u.Id == "" {
		return nil, errors.New("identity provider rejected token")
	}
	return &Principal{Id: u.Id, Email: u.Email}, nil
}

// verifyLocal 本地校验JWT, 省一次身份提供方往返
func verifyLocal(token, publicKey string) (*Principal, error) {
	t, err := jwt.Parse(token, func(_ *jwt.Token) (interface{}, error) {
		return jwt.ParseECPublicKeyFromPEM([]byte(publicKey))
	})
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, errors.New("token is not valid")
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("token missing subject")
	}
	email, _ := claims["email"].(string)
	return &Principal{Id: sub, Email: email}, nil
}

func (p *httpProvider) CreateUser(ctx context.Context, email, password, name string) (*Principal, error) {
	header := p.adminHeader()
	body := map[string]any{
		"email":         email,
		"password":      password,
		"user_metadata": map[string]any{"name": name},
		// 未配置邮件服务, 创建时直接确认邮箱
		"email_confirm": true,
	}
	u, err := httpx.Post[userPayload](ctx, p.c.Identity.BaseURL+"/auth/v1/admin/users", header, body)
	if err != nil {
		return nil, err
	}
	if u.Id == "" {
		return nil, errors.New("identity provider refused to create user")
	}
	return &Principal{Id: u.Id, Email: u.Email}, nil
}

func (p *httpProvider) DeleteUser(ctx context.Context, uid string) error {
	return httpx.Delete(ctx, p.c.Identity.BaseURL+"/auth/v1/admin/users/"+uid, p.adminHeader())
}

func (p *httpProvider) adminHeader() http.Header {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+p.c.Identity.ServiceKey)
	header.Set("apikey", p.c.Identity.ServiceKey)
	header.Set("content-type", "application/json")
	return header
}
