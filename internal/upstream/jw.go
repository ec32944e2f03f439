package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// JWClient 教务系统（jw.ustc.edu.cn）排课接口客户端
//
// 接口在登录态后可用，cookie 由调用方提供（浏览器复制的
// key=value; key2=value2 形式原样下发）
type JWClient struct {
	client  *Client
	baseURL string
	cookie  string
}

// NewJWClient 创建 JWClient
func NewJWClient(client *Client, baseURL, cookie string) *JWClient {
	return &JWClient{client: client, baseURL: baseURL, cookie: cookie}
}

type datumRequest struct {
	LessonIDs []int64 `json:"lessonIds"`
}

type datumResponse struct {
	Result DatumResult `json:"result"`
}

// FetchScheduleDatum 按开课教务 ID 批量拉取排课数据
func (c *JWClient) FetchScheduleDatum(ctx context.Context, lessonIDs []int64) (*DatumResult, error) {
	url := c.baseURL + "/ws/schedule-table/datum"
	body, err := json.Marshal(datumRequest{LessonIDs: lessonIDs})
	if err != nil {
		return nil, fmt.Errorf("编码排课请求失败: %w", err)
	}

	headers := map[string]string{
		"Content-Type":     "application/json",
		"Accept":           "*/*",
		"X-Requested-With": "XMLHttpRequest",
	}
	if c.cookie != "" {
		headers["Cookie"] = c.cookie
	}

	data, err := c.client.do(ctx, http.MethodPost, url, body, headers)
	if err != nil {
		return nil, err
	}
	var resp datumResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("解析排课响应失败: %w", err)
	}
	return &resp.Result, nil
}
