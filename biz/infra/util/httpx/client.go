package httpx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/logs"
)

// httpx 是一个简单的非流式http客户端, 身份提供方调用使用

var (
	client *HttpClient
	once   sync.Once
)

const (
	GET    = "GET"
	POST   = "POST"
	DELETE = "DELETE"
)

type HttpClient struct {
	Client *http.Client
}

// NewHttpClient 单例模式维护一个client
func NewHttpClient() *HttpClient {
	once.Do(func() {
		client = &HttpClient{
			Client: http.DefaultClient,
		}
	})
	return client
}

func GetHttpClient() *HttpClient {
	return NewHttpClient()
}

// do 发送请求
func (c *HttpClient) do(ctx context.Context, method, url string, headers http.Header, body any) (resp *http.Response, err error) {
	var bodyBytes []byte
	var req *http.Request
	if body != nil {
		if bodyBytes, err = sonic.Marshal(body); err != nil {
			return nil, fmt.Errorf("[httpx] 请求体序列化失败: %w", err)
		}
	}
	if req, err = http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes)); err != nil {
		return nil, fmt.Errorf("[httpx] 创建请求失败: %w", err)
	}
	for k, vv := range headers {
		req.Header[k] = vv
	}
	return c.Client.Do(req)
}

func checkStatusCode(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_resp, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, _resp)
	}
	return nil
}

func (c *HttpClient) getResp(ctx context.Context, method, url string, headers http.Header, body any) (resp []byte, err error) {
	var response *http.Response
	if response, err = c.do(ctx, method, url, headers, body); err != nil {
		return nil, fmt.Errorf("[httpx] 发送请求失败: %w", err)
	}
	defer func() {
		if closeErr := response.Body.Close(); closeErr != nil {
			logs.Errorf("[httpx] 关闭响应失败: %s", errorx.ErrorWithoutStack(closeErr))
		}
	}()
	if err = checkStatusCode(response); err != nil {
		return nil, err
	}
	if resp, err = io.ReadAll(response.Body); err != nil {
		return nil, fmt.Errorf("[httpx] 读取响应失败: %w", err)
	}
	return resp, nil
}

// Req 发送请求并把响应体反序列化为T
func Req[T any](ctx context.Context, method, url string, headers http.Header, body any) (resp T, err error) {
	var raw []byte
	if raw, err = GetHttpClient().getResp(ctx, method, url, headers, body); err != nil {
		return
	}
	if err = sonic.Unmarshal(raw, &resp); err != nil {
		return resp, fmt.Errorf("[httpx] 反序列化响应失败: %w", err)
	}
	return resp, nil
}

func Get[T any](ctx context.Context, url string, headers http.Header, body any) (resp T, err error) {
	return Req[T](ctx, GET, url, headers, body)
}

func Post[T any](ctx context.Context, url string, headers http.Header, body any) (resp T, err error) {
	return Req[T](ctx, POST, url, headers, body)
}

// Delete 发送DELETE请求, 丢弃响应体
func Delete(ctx context.Context, url string, headers http.Header) error {
	_, err := GetHttpClient().getResp(ctx, DELETE, url, headers, nil)
	return err
}
