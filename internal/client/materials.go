package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/hanstar/webfront/internal/failure"
	"github.com/hanstar/webfront/internal/models"
)

// Materials — публичный список активных материалов,
// опционально отфильтрованный по категории.
func (c *Client) Materials(ctx context.Context, category string) ([]models.Material, error) {
	path := "/api/materials"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var resp struct {
		Materials []models.Material `json:"materials"`
	}

	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	if resp.Materials == nil {
		resp.Materials = []models.Material{}
	}

	return resp.Materials, nil
}

// DownloadMaterial запрашивает скачивание материала; POST увеличивает
// счётчик скачиваний на бэкенде.
func (c *Client) DownloadMaterial(ctx context.Context, id int64) (models.DownloadInfo, error) {
	var resp models.DownloadInfo
	path := fmt.Sprintf("/api/materials/%d/download", id)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return models.DownloadInfo{}, err
	}

	return resp, nil
}

// AdminMaterials — полный список материалов (включая неактивные).
// Бэкенд отдаёт список целиком; пагинацию по нему делает вызывающий.
func (c *Client) AdminMaterials(ctx context.Context) ([]models.Material, error) {
	var resp struct {
		Materials []models.Material `json:"materials"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/materials", nil, &resp); err != nil {
		return nil, err
	}

	if resp.Materials == nil {
		resp.Materials = []models.Material{}
	}

	return resp.Materials, nil
}

// CreateMaterial регистрирует новый материал с файлом (multipart).
func (c *Client) CreateMaterial(ctx context.Context, adminPassword string, in models.MaterialInput) (models.MutationResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"admin_password": adminPassword,
		"title":          in.Title,
		"description":    in.Description,
		"category":       in.Category,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return models.MutationResult{}, failure.Networkf(err, "")
		}
	}

	part, err := mw.CreateFormFile("file", in.FileName)
	if err != nil {
		return models.MutationResult{}, failure.Networkf(err, "")
	}

	if _, err := io.Copy(part, in.File); err != nil {
		return models.MutationResult{}, failure.Networkf(err, "")
	}

	if err := mw.Close(); err != nil {
		return models.MutationResult{}, failure.Networkf(err, "")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/admin/materials", &buf)
	if err != nil {
		return models.MutationResult{}, failure.Networkf(err, "")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp models.MutationResult
	if err := c.do(req, &resp); err != nil {
		return models.MutationResult{}, err
	}

	return resp, nil
}

// UpdateMaterial правит метаданные материала (без файла).
func (c *Client) UpdateMaterial(ctx context.Context, adminPassword string, id int64, upd models.MaterialUpdate) (models.MutationResult, error) {
	req := struct {
		AdminPassword string `json:"admin_password"`
		Title         string `json:"title"`
		Description   string `json:"description"`
		Category      string `json:"category"`
	}{AdminPassword: adminPassword, Title: upd.Title, Description: upd.Description, Category: upd.Category}

	var resp models.MutationResult
	path := fmt.Sprintf("/api/admin/materials/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, req, &resp); err != nil {
		return models.MutationResult{}, err
	}

	return resp, nil
}

// SetMaterialActive включает или выключает материал в публичном списке.
// Передаётся только признак активности: метаданные не трогаются.
func (c *Client) SetMaterialActive(ctx context.Context, adminPassword string, id int64, active bool) (models.MutationResult, error) {
	req := struct {
		AdminPassword string `json:"admin_password"`
		IsActive      bool   `json:"is_active"`
	}{AdminPassword: adminPassword, IsActive: active}

	var resp models.MutationResult
	path := fmt.Sprintf("/api/admin/materials/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, req, &resp); err != nil {
		return models.MutationResult{}, err
	}

	return resp, nil
}

// DeleteMaterial удаляет материал безвозвратно.
func (c *Client) DeleteMaterial(ctx context.Context, adminPassword string, id int64) (models.MutationResult, error) {
	req := struct {
		AdminPassword string `json:"admin_password"`
	}{AdminPassword: adminPassword}

	var resp models.MutationResult
	path := fmt.Sprintf("/api/admin/materials/%d", id)
	if err := c.doJSON(ctx, http.MethodDelete, path, req, &resp); err != nil {
		return models.MutationResult{}, err
	}

	return resp, nil
}
