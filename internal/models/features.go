package models

import (
	"fmt"
	"strings"
)

// PriceLabelPerEmployee подпись цены на карточке тарифа.
const PriceLabelPerEmployee = "Per employee"

var commonFeatures = []string{
	"Automatic salary & deduction calculations",
	"Monthly payslip generation (PDF / CSV / Excel)",
	"Employee profile management",
	"Manage multiple company",
	"Payroll report generations",
	"Secure dashboard for administrators",
}

// employeeRange возвращает диапазон сотрудников по соглашению об именах планов.
// PROFRSSIONAL встречается в старых записях бэкенда.
func employeeRange(name string, maxEmployees int) string {
	upper := strings.ToUpper(name)
	switch {
	case strings.Contains(upper, "BASIC"):
		return "0 - 29 employees"
	case strings.Contains(upper, "PROFESSIONAL"), strings.Contains(upper, "PROFRSSIONAL"):
		return "30 - 99 employees"
	case strings.Contains(upper, "ENTERPRISE"):
		return "100 or more employees"
	case maxEmployees > 0:
		return fmt.Sprintf("up to %d employees", maxEmployees)
	}
	return ""
}

// DeriveFeatures строит список возможностей тарифа из его имени.
func DeriveFeatures(name string, maxEmployees int) []PlanFeature {
	features := make([]PlanFeature, 0, len(commonFeatures)+1)
	if r := employeeRange(name, maxEmployees); r != "" {
		features = append(features, PlanFeature{Text: "Payroll processing for " + r, Included: true})
	}
	for _, text := range commonFeatures {
		features = append(features, PlanFeature{Text: text, Included: true})
	}
	return features
}
