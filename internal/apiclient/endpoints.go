package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/magabrotheeeer/payroll-admin-console/internal/models"
)

// LoginResult data ответа POST /auth/login.
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Ack подтверждение мутации с текстом для администратора.
type Ack struct {
	Message string
}

// Login POST /auth/login. Токен в сессию не записывается, это делает слой состояния.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (LoginResult, error) {
	var res LoginResult
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		route:  "/auth/login",
		path:   "/auth/login",
		body:   creds,
	}, &res)
	if err != nil {
		return LoginResult{}, err
	}
	if res.Token == "" {
		return LoginResult{}, &APIError{StatusCode: http.StatusOK, Message: "Login response has no token"}
	}
	return res, nil
}

// Me GET /admin/auth/me.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	_, err := c.do(ctx, request{method: http.MethodGet, route: "/admin/auth/me", path: "/admin/auth/me"}, &user)
	return user, err
}

// DashboardSummary GET /admin/dashboard/summary.
func (c *Client) DashboardSummary(ctx context.Context) (models.Dashboard, error) {
	var d models.Dashboard
	_, err := c.do(ctx, request{
		method: http.MethodGet,
		route:  "/admin/dashboard/summary",
		path:   "/admin/dashboard/summary",
	}, &d)
	return d, err
}

func pageQuery(p models.ListParams) url.Values {
	p = p.WithDefaults()
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	return q
}

// ListUsers GET /admin/users?page=&limit=.
func (c *Client) ListUsers(ctx context.Context, p models.ListParams) (models.UserPage, error) {
	var page models.UserPage
	_, err := c.do(ctx, request{
		method: http.MethodGet,
		route:  "/admin/users",
		path:   "/admin/users",
		query:  pageQuery(p),
	}, &page)
	return page, err
}

// GetUser GET /admin/users/:id.
func (c *Client) GetUser(ctx context.Context, id string) (models.UserDetails, error) {
	var u models.UserDetails
	_, err := c.do(ctx, request{
		method: http.MethodGet,
		route:  "/admin/users/:id",
		path:   "/admin/users/" + url.PathEscape(id),
	}, &u)
	return u, err
}

// ListCompanies GET /admin/companies?page=&limit=&search=.
func (c *Client) ListCompanies(ctx context.Context, p models.ListParams) (models.CompanyPage, error) {
	q := pageQuery(p)
	q.Set("search", p.Search)
	var page models.CompanyPage
	_, err := c.do(ctx, request{
		method: http.MethodGet,
		route:  "/admin/companies",
		path:   "/admin/companies",
		query:  q,
	}, &page)
	return page, err
}

// planRecord тарифный план в том виде, в каком его отдаёт бэкенд.
type planRecord struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	EmployeePrice   *float64 `json:"employeePrice"`
	PriceLabel      string   `json:"priceLabel"`
	RegistrationFee float64  `json:"registrationFee"`
	MaxEmployees    int      `json:"maxEmployees"`
	MaxCompanies    int      `json:"maxCompanies"`
	Description     string   `json:"description"`
}

// toModel нормализует план: цена за сотрудника берётся из employeePrice,
// если он есть, иначе из price.
func (p planRecord) toModel() models.SubscriptionPlan {
	plan := models.SubscriptionPlan{
		ID:              p.ID,
		Name:            p.Name,
		PriceLabel:      p.PriceLabel,
		RegistrationFee: p.RegistrationFee,
		MaxEmployees:    p.MaxEmployees,
		MaxCompanies:    p.MaxCompanies,
		Description:     p.Description,
		Features:        models.DeriveFeatures(p.Name, p.MaxEmployees),
	}
	switch {
	case p.EmployeePrice != nil:
		plan.Price = *p.EmployeePrice
	case p.Price != nil:
		plan.Price = *p.Price
	}
	if plan.PriceLabel == "" {
		plan.PriceLabel = models.PriceLabelPerEmployee
	}
	return plan
}

// ListPlans GET /admin/plans. data бывает массивом или объектом {plans: [...]}.
func (c *Client) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	const op = "apiclient.ListPlans"
	var raw json.RawMessage
	_, err := c.do(ctx, request{method: http.MethodGet, route: "/admin/plans", path: "/admin/plans"}, &raw)
	if err != nil {
		return nil, err
	}

	var records []planRecord
	if len(raw) > 0 && raw[0] == '{' {
		var wrapped struct {
			Plans []planRecord `json:"plans"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, &APIError{StatusCode: http.StatusOK, Err: fmt.Errorf("%s: %w", op, err)}
		}
		records = wrapped.Plans
	} else if len(raw) > 0 {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, &APIError{StatusCode: http.StatusOK, Err: fmt.Errorf("%s: %w", op, err)}
		}
	}

	plans := make([]models.SubscriptionPlan, 0, len(records))
	for _, r := range records {
		plans = append(plans, r.toModel())
	}
	return plans, nil
}

// UpdatePlan PUT /admin/plans/:id, возвращает обновлённый план.
func (c *Client) UpdatePlan(ctx context.Context, id string, upd models.PlanUpdate) (models.SubscriptionPlan, error) {
	var rec planRecord
	_, err := c.do(ctx, request{
		method: http.MethodPut,
		route:  "/admin/plans/:id",
		path:   "/admin/plans/" + url.PathEscape(id),
		body:   upd,
	}, &rec)
	if err != nil {
		return models.SubscriptionPlan{}, err
	}
	if rec.ID == "" {
		rec.ID = id
	}
	return rec.toModel(), nil
}

// UpdateProfile PATCH /admin/profile/update.
func (c *Client) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (Ack, error) {
	return c.ack(ctx, request{
		method: http.MethodPatch,
		route:  "/admin/profile/update",
		path:   "/admin/profile/update",
		body:   upd,
	})
}

// ChangePassword POST /admin/profile/change-password. Подтверждение пароля не отправляется.
func (c *Client) ChangePassword(ctx context.Context, pc models.PasswordChange) (Ack, error) {
	return c.ack(ctx, request{
		method: http.MethodPost,
		route:  "/admin/profile/change-password",
		path:   "/admin/profile/change-password",
		body: struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
		}{pc.CurrentPassword, pc.NewPassword},
	})
}

// SendNotification POST /admin/notifications/send.
func (c *Client) SendNotification(ctx context.Context, n models.Notification) (Ack, error) {
	return c.ack(ctx, request{
		method: http.MethodPost,
		route:  "/admin/notifications/send",
		path:   "/admin/notifications/send",
		body:   n,
	})
}

func (c *Client) ack(ctx context.Context, r request) (Ack, error) {
	env, err := c.do(ctx, r, nil)
	if err != nil {
		return Ack{}, err
	}
	return Ack{Message: env.Message}, nil
}
