// Package store корневой контейнер состояния админ-консоли.
//
// Состояние разбито на слайсы под фиксированными ключами: auth, users,
// companies, dashboard, subscription, settings. Читается целиком через State,
// меняется только через Dispatch именованной операции. Все изменения
// сериализуются одним мьютексом; сетевые вызовы идут без него, поэтому
// запросы разных слайсов выполняются параллельно и пишут каждый в своё поддерево.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/payroll-admin-console/internal/apiclient"
	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/sl"
	"github.com/magabrotheeeer/payroll-admin-console/internal/models"
	"github.com/magabrotheeeer/payroll-admin-console/internal/session"
)

// Ключи слайсов в снимке.
const (
	KeyAuth         = "auth"
	KeyUsers        = "users"
	KeyCompanies    = "companies"
	KeyDashboard    = "dashboard"
	KeySubscription = "subscription"
	KeySettings     = "settings"
)

// Keys все ключи слайсов в порядке снимка.
var Keys = []string{KeyAuth, KeyUsers, KeyCompanies, KeyDashboard, KeySubscription, KeySettings}

// API вызовы бэкенда, которые нужны слайсам. Реализуется *apiclient.Client.
type API interface {
	Login(ctx context.Context, creds models.Credentials) (apiclient.LoginResult, error)
	Me(ctx context.Context) (models.User, error)
	DashboardSummary(ctx context.Context) (models.Dashboard, error)
	ListUsers(ctx context.Context, p models.ListParams) (models.UserPage, error)
	GetUser(ctx context.Context, id string) (models.UserDetails, error)
	ListCompanies(ctx context.Context, p models.ListParams) (models.CompanyPage, error)
	ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, id string, upd models.PlanUpdate) (models.SubscriptionPlan, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (apiclient.Ack, error)
	ChangePassword(ctx context.Context, pc models.PasswordChange) (apiclient.Ack, error)
	SendNotification(ctx context.Context, n models.Notification) (apiclient.Ack, error)
}

// Snapshot снимок всего состояния. Version растёт с каждым изменением,
// по нему подписчик отбрасывает снимки, доставленные не по порядку.
type Snapshot struct {
	Version      uint64            `json:"version"`
	Location     string            `json:"location"`
	Auth         AuthState         `json:"auth"`
	Users        UsersState        `json:"users"`
	Companies    CompaniesState    `json:"companies"`
	Dashboard    DashboardState    `json:"dashboard"`
	Subscription SubscriptionState `json:"subscription"`
	Settings     SettingsState     `json:"settings"`
}

func (s Snapshot) clone() Snapshot {
	s.Auth = s.Auth.clone()
	s.Users = s.Users.clone()
	s.Companies = s.Companies.clone()
	s.Dashboard = s.Dashboard.clone()
	s.Subscription = s.Subscription.clone()
	return s
}

// Slice возвращает состояние слайса по ключу.
func (s Snapshot) Slice(key string) (any, error) {
	switch key {
	case KeyAuth:
		return s.Auth, nil
	case KeyUsers:
		return s.Users, nil
	case KeyCompanies:
		return s.Companies, nil
	case KeyDashboard:
		return s.Dashboard, nil
	case KeySubscription:
		return s.Subscription, nil
	case KeySettings:
		return s.Settings, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSlice, key)
}

// Listener получает снимок после каждого изменения.
type Listener func(Snapshot)

// Store корневой контейнер.
type Store struct {
	mu        sync.Mutex
	state     Snapshot
	tracker   *tracker
	listeners map[uint64]Listener
	nextID    uint64

	api      API
	session  *session.Session
	validate *validator.Validate
	log      *slog.Logger
}

// New собирает стор. Слайс auth поднимается из сессии, поэтому
// session.Rehydrate нужно вызвать до New.
func New(api API, sess *session.Session, log *slog.Logger) *Store {
	s := &Store{
		tracker:   newTracker(),
		listeners: map[uint64]Listener{},
		api:       api,
		session:   sess,
		validate:  validator.New(),
		log:       log,
	}
	s.state = Snapshot{
		Location:     apiclient.RootPath,
		Auth:         initialAuth(sess.Token()),
		Users:        initialUsers(),
		Companies:    initialCompanies(),
		Dashboard:    initialDashboard(),
		Subscription: initialSubscription(),
		Settings:     initialSettings(),
	}
	return s
}

// State возвращает копию текущего состояния.
func (s *Store) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe регистрирует слушателя. Слушатели вызываются вне мьютекса,
// возвращённая функция снимает подписку.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) commit(fn func(*Snapshot)) {
	s.update(func(st *Snapshot) bool {
		fn(st)
		return true
	})
}

// update применяет fn под мьютексом и оповещает слушателей, если fn вернула true.
func (s *Store) update(fn func(*Snapshot) bool) {
	s.mu.Lock()
	if !fn(&s.state) {
		s.mu.Unlock()
		return
	}
	s.state.Version++
	snap := s.state.clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

// Navigate реализует apiclient.Navigator. Переход на корень равносилен
// перезагрузке страницы: слайс auth заново поднимается из сессии.
func (s *Store) Navigate(path string) {
	s.log.Info("navigate", sl.Op("store.Navigate"), slog.String("path", path))
	token := s.session.Token()
	s.commit(func(st *Snapshot) {
		st.Location = path
		if path == apiclient.RootPath && st.Auth.Token != token {
			st.Auth.Token = token
			st.Auth.User = nil
		}
	})
}

// Dispatch выполняет операцию. Полезная нагрузка проверяется до любых
// изменений состояния; невалидная возвращает *ValidationError. Отклонённая
// бэкендом операция возвращает *OperationError, устаревший ответ ErrSuperseded.
func (s *Store) Dispatch(ctx context.Context, action Action) error {
	if d, ok := action.(defaulter); ok {
		action = d.withDefaults()
	}
	if err := s.validate.Struct(action); err != nil {
		verr := &ValidationError{Action: action.Type(), err: err}
		if errs, ok := err.(validator.ValidationErrors); ok {
			verr.Errs = errs
		}
		return verr
	}

	switch a := action.(type) {
	case LoginUser:
		return s.loginUser(ctx, a)
	case Logout:
		s.logout(ctx)
		return nil
	case ClearAuthError:
		s.commit(func(st *Snapshot) { st.Auth.Error = "" })
		return nil
	case FetchProfile:
		return s.fetchProfile(ctx)
	case FetchUsers:
		return s.fetchUsers(ctx, a)
	case FetchUserDetails:
		return s.fetchUserDetails(ctx, a)
	case SendUserNotification:
		return s.sendUserNotification(ctx, a)
	case ClearUserError:
		s.commit(func(st *Snapshot) {
			st.Users.Error = ""
			st.Users.SuccessMessage = ""
		})
		return nil
	case ClearSelectedUser:
		s.commit(func(st *Snapshot) { st.Users.SelectedUser = nil })
		return nil
	case FetchCompanies:
		return s.fetchCompanies(ctx, a)
	case ClearCompanyError:
		s.commit(func(st *Snapshot) { st.Companies.Error = "" })
		return nil
	case FetchDashboard:
		return s.fetchDashboard(ctx)
	case FetchPlans:
		return s.fetchPlans(ctx)
	case UpdatePlanData:
		return s.updatePlanData(ctx, a)
	case UpdateAdditionalSlotPrice:
		s.commit(func(st *Snapshot) { st.Subscription.AdditionalSlotPrice = a.Price })
		return nil
	case ClearSubscriptionStatus:
		s.commit(func(st *Snapshot) {
			st.Subscription.Error = ""
			st.Subscription.SuccessMessage = ""
		})
		return nil
	case UpdateProfile:
		return s.updateProfile(ctx, a)
	case ChangePassword:
		return s.changePassword(ctx, a)
	case ClearSettingsStatus:
		s.commit(func(st *Snapshot) {
			st.Settings.Error = ""
			st.Settings.SuccessMessage = ""
		})
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownAction, action.Type())
}
