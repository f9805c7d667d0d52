package store

import (
	"strings"

	"github.com/magabrotheeeer/payroll-admin-console/internal/models"
)

// FilterUsers фильтрует уже загруженную страницу по имени или email без учёта регистра.
func FilterUsers(users []models.User, term string) []models.User {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]models.User(nil), users...)
	}
	var out []models.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FullName), term) || strings.Contains(strings.ToLower(u.Email), term) {
			out = append(out, u)
		}
	}
	return out
}

// FilterCompanies фильтрует уже загруженную страницу по названию.
func FilterCompanies(companies []models.Company, term string) []models.Company {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]models.Company(nil), companies...)
	}
	var out []models.Company
	for _, c := range companies {
		if strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, c)
		}
	}
	return out
}

// PageCount число страниц для total записей по limit на страницу.
func PageCount(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
