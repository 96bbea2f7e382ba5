package client

import (
	"context"
	"net/http"

	"github.com/hanstar/webfront/internal/models"
)

// Menu возвращает структуру навигации сайта.
func (c *Client) Menu(ctx context.Context) ([]models.MenuSection, error) {
	var resp struct {
		Menu []models.MenuSection `json:"menu"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/api/menu", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Menu, nil
}

// CompanyIntro — текст раздела «회사소개».
func (c *Client) CompanyIntro(ctx context.Context) (string, error) {
	var resp struct {
		CompanyIntro string `json:"company_intro"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/api/company-intro", nil, &resp); err != nil {
		return "", err
	}

	return resp.CompanyIntro, nil
}

// CompanyHistory — строки раздела «회사연혁».
func (c *Client) CompanyHistory(ctx context.Context) ([]string, error) {
	var resp struct {
		CompanyHistory []string `json:"company_history"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/api/company-history", nil, &resp); err != nil {
		return nil, err
	}

	return resp.CompanyHistory, nil
}

// Contact — строки раздела «연락처».
func (c *Client) Contact(ctx context.Context) ([]string, error) {
	var resp struct {
		Contact []string `json:"contact"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/api/contact", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Contact, nil
}

// ProgramFiles — список программных материалов для скачивания.
func (c *Client) ProgramFiles(ctx context.Context) ([]models.ProgramFile, error) {
	var resp struct {
		Files []models.ProgramFile `json:"files"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/api/program-files", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Files, nil
}
