package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabari1933/hrconsole/internal/config"
	"github.com/sabari1933/hrconsole/internal/domain/company"
	"github.com/sabari1933/hrconsole/internal/http/middlewares"
)

type CompanyEditor interface {
	GetCompany(ctx context.Context, token string) (company.Company, error)
	UpdateCompany(ctx context.Context, token string, req company.UpdateCompanyRequest) (company.Company, error)
}

type CompanyHandler struct {
	api      CompanyEditor
	renderer *Renderer
	policy   *ErrorPolicy
}

func NewCompanyHandler(api CompanyEditor, renderer *Renderer, policy *ErrorPolicy) *CompanyHandler {
	return &CompanyHandler{api: api, renderer: renderer, policy: policy}
}

type companyView struct {
	Company company.Company
	Fields  map[string]string
}

func (h *CompanyHandler) Page(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	comp, err := h.api.GetCompany(cctx, sess.Token)

	if h.policy.Handle(c, err) {
		return
	}

	h.renderer.Page(c, http.StatusOK, "company", "Company", companyView{Company: comp})
}

func (h *CompanyHandler) Update(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	var form company.UpdateCompanyRequest

	fields, ok := BindForm(c, &form)

	if !ok {
		h.renderer.Page(c, http.StatusBadRequest, "company", "Company", companyView{
			Company: company.Company{
				Name:     form.Name,
				Industry: form.Industry,
				Email:    form.Email,
				Phone:    form.Phone,
				Address:  form.Address,
				Website:  form.Website,
				Founded:  form.Founded,
				About:    form.About,
			},
			Fields: fields,
		})
		return
	}

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	_, err := h.api.UpdateCompany(cctx, sess.Token, form)

	if h.policy.Handle(c, err) {
		return
	}

	c.Redirect(http.StatusFound, "/company?message="+url.QueryEscape("Company profile saved"))
}
