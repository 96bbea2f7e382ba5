package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hanstar/webfront/internal/failure"
	"github.com/hanstar/webfront/internal/models"
)

// InquiryList — страница публичного списка обращений.
// Отсутствующее поле inquiries в ответе превращается в пустой срез,
// nil до рендерера не доходит.
func (c *Client) InquiryList(ctx context.Context, page int) (models.ListPage[models.InquirySummary], error) {
	var resp struct {
		Inquiries  []models.InquirySummary `json:"inquiries"`
		Pagination models.PageInfo         `json:"pagination"`
	}

	path := fmt.Sprintf("/api/inquiry-list?page=%d", page)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return models.ListPage[models.InquirySummary]{}, err
	}

	if resp.Inquiries == nil {
		resp.Inquiries = []models.InquirySummary{}
	}

	return models.ListPage[models.InquirySummary]{
		Items:      resp.Inquiries,
		Pagination: resp.Pagination,
	}, nil
}

// SubmitInquiry регистрирует новое обращение.
func (c *Client) SubmitInquiry(ctx context.Context, in models.InquiryInput) (models.MutationResult, error) {
	var resp models.MutationResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/inquiry", in, &resp); err != nil {
		return models.MutationResult{}, err
	}

	return resp, nil
}

// VerifyInquiry проверяет пароль обращения и возвращает полную карточку.
// Несовпадение пароля и отсутствующий идентификатор неразличимы для
// вызывающего: оба случая дают Auth-ошибку с одним сообщением, чтобы
// не позволять перебор действительных идентификаторов.
func (c *Client) VerifyInquiry(ctx context.Context, rowID int64, password string) (*models.InquiryDetail, error) {
	req := struct {
		RowID    int64  `json:"row_id"`
		Password string `json:"password"`
	}{RowID: rowID, Password: password}

	var resp struct {
		Success bool                  `json:"success"`
		Inquiry *models.InquiryDetail `json:"inquiry"`
	}

	err := c.doJSON(ctx, http.MethodPost, "/api/verify-inquiry", req, &resp)
	if err != nil {
		if k, ok := failure.KindOf(err); ok && (k == failure.Auth || k == failure.API) {
			if f, isf := err.(*failure.Failure); isf && (f.Status == http.StatusUnauthorized || f.Status == http.StatusNotFound) {
				return nil, &failure.Failure{
					Kind:    failure.Auth,
					Message: "비밀번호가 일치하지 않습니다.",
					Status:  f.Status,
				}
			}
		}

		return nil, err
	}

	if !resp.Success || resp.Inquiry == nil {
		return nil, failure.New(failure.Auth, "비밀번호가 일치하지 않습니다.")
	}

	return resp.Inquiry, nil
}

// AdminInquiryList — страница административного списка обращений.
func (c *Client) AdminInquiryList(ctx context.Context, adminPassword string, page int) (models.ListPage[models.AdminInquiry], error) {
	req := struct {
		AdminPassword string `json:"admin_password"`
		Page          int    `json:"page"`
	}{AdminPassword: adminPassword, Page: page}

	var resp struct {
		Inquiries  []models.AdminInquiry `json:"inquiries"`
		Pagination models.PageInfo       `json:"pagination"`
	}

	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/inquiry-list", req, &resp); err != nil {
		return models.ListPage[models.AdminInquiry]{}, err
	}

	if resp.Inquiries == nil {
		resp.Inquiries = []models.AdminInquiry{}
	}

	return models.ListPage[models.AdminInquiry]{
		Items:      resp.Inquiries,
		Pagination: resp.Pagination,
	}, nil
}

// AddAnswer регистрирует или заменяет ответ администратора.
func (c *Client) AddAnswer(ctx context.Context, adminPassword string, inquiryID int64, answer string) (models.MutationResult, error) {
	req := struct {
		AdminPassword string `json:"admin_password"`
		InquiryID     int64  `json:"inquiry_id"`
		AnswerContent string `json:"answer_content"`
	}{AdminPassword: adminPassword, InquiryID: inquiryID, AnswerContent: answer}

	var resp models.MutationResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/add-answer", req, &resp); err != nil {
		return models.MutationResult{}, err
	}

	return resp, nil
}
