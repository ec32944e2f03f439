package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CatalogClient 教务目录（catalog.ustc.edu.cn）只读接口客户端
type CatalogClient struct {
	client  *Client
	baseURL string
}

// NewCatalogClient 创建 CatalogClient
func NewCatalogClient(client *Client, baseURL string) *CatalogClient {
	return &CatalogClient{client: client, baseURL: baseURL}
}

// FetchSemesters 拉取全部学期列表
func (c *CatalogClient) FetchSemesters(ctx context.Context) ([]SemesterJSON, error) {
	url := c.baseURL + "/api/teach/semester/list"
	data, err := c.client.do(ctx, http.MethodGet, url, nil, nil)
	if err != nil {
		return nil, err
	}
	var semesters []SemesterJSON
	if err := json.Unmarshal(data, &semesters); err != nil {
		return nil, fmt.Errorf("解析学期列表失败: %w", err)
	}
	return semesters, nil
}

// FetchLessons 拉取指定学期（教务 ID）的全部开课
func (c *CatalogClient) FetchLessons(ctx context.Context, semesterJwID int64) ([]LessonJSON, error) {
	url := fmt.Sprintf("%s/api/teach/lesson/list-for-teach/%d", c.baseURL, semesterJwID)
	data, err := c.client.do(ctx, http.MethodGet, url, nil, nil)
	if err != nil {
		return nil, err
	}
	var lessons []LessonJSON
	if err := json.Unmarshal(data, &lessons); err != nil {
		return nil, fmt.Errorf("解析开课列表失败: %w", err)
	}
	return lessons, nil
}
