package store

import (
	"context"

	"github.com/magabrotheeeer/payroll-admin-console/internal/apiclient"
	"github.com/magabrotheeeer/payroll-admin-console/internal/models"
)

// DefaultAdditionalSlotPrice цена дополнительного слота сотрудника по умолчанию.
const DefaultAdditionalSlotPrice = 150

// SubscriptionState тарифные планы.
type SubscriptionState struct {
	Plans               []models.SubscriptionPlan `json:"plans"`
	AdditionalSlotPrice float64                   `json:"additionalSlotPrice"`
	SuccessMessage      string                    `json:"successMessage"`
	AsyncState
}

func initialSubscription() SubscriptionState {
	return SubscriptionState{
		Plans:               []models.SubscriptionPlan{},
		AdditionalSlotPrice: DefaultAdditionalSlotPrice,
		AsyncState:          idle(),
	}
}

func (s SubscriptionState) clone() SubscriptionState {
	plans := make([]models.SubscriptionPlan, len(s.Plans))
	for i, p := range s.Plans {
		p.Features = append([]models.PlanFeature(nil), p.Features...)
		plans[i] = p
	}
	s.Plans = plans
	return s
}

func subscriptionAsync(st *Snapshot) *AsyncState { return &st.Subscription.AsyncState }

func (s *Store) fetchPlans(ctx context.Context) error {
	return run(ctx, s, operation[[]models.SubscriptionPlan]{
		action: TypeFetchPlans,
		async:  subscriptionAsync,
		call:   s.api.ListPlans,
		fulfilled: func(st *Snapshot, plans []models.SubscriptionPlan) {
			st.Subscription.Plans = nonNil(plans)
		},
		message: func(err error) string { return apiclient.ErrorMessage(err, "Failed to fetch plans") },
	})
}

// updatePlanData заменяет план с тем же id подтверждённой бэкендом записью.
// Если плана нет в загруженном списке, список не меняется.
func (s *Store) updatePlanData(ctx context.Context, a UpdatePlanData) error {
	return run(ctx, s, operation[models.SubscriptionPlan]{
		action:  a.Type(),
		key:     targetKey(a.Type(), a.ID),
		async:   subscriptionAsync,
		pending: func(st *Snapshot) { st.Subscription.SuccessMessage = "" },
		call: func(ctx context.Context) (models.SubscriptionPlan, error) {
			return s.api.UpdatePlan(ctx, a.ID, a.Data)
		},
		fulfilled: func(st *Snapshot, plan models.SubscriptionPlan) {
			for i := range st.Subscription.Plans {
				if st.Subscription.Plans[i].ID == plan.ID {
					st.Subscription.Plans[i] = plan
					break
				}
			}
			st.Subscription.SuccessMessage = "Plan updated successfully"
		},
		message: func(err error) string { return apiclient.ErrorMessage(err, "Failed to update plan") },
	})
}
