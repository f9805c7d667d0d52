package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		actionType string
		body       string
		want       Action
		wantErr    bool
	}{
		{name: "login", actionType: TypeLoginUser, body: `{"email":"a@x.io","password":"p"}`, want: func() Action {
			a := LoginUser{}
			a.Email, a.Password = "a@x.io", "p"
			return a
		}()},
		{name: "empty body", actionType: TypeFetchPlans, body: ``, want: FetchPlans{}},
		{name: "users page", actionType: TypeFetchUsers, body: `{"page":3,"limit":20}`, want: FetchUsers{Page: 3, Limit: 20}},
		{name: "plan update", actionType: TypeUpdatePlanData, body: `{"id":"p1","data":{"employeePrice":120}}`, want: func() Action {
			price := 120.0
			a := UpdatePlanData{ID: "p1"}
			a.Data.EmployeePrice = &price
			return a
		}()},
		{name: "unknown type", actionType: "billing/charge", body: `{}`, wantErr: true},
		{name: "malformed body", actionType: TypeFetchUsers, body: `{"page":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.actionType, json.RawMessage(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.actionType, got.Type())
		})
	}
}

func TestDecode_UnknownTypeIsErrUnknownAction(t *testing.T) {
	_, err := Decode("billing/charge", nil)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestActionTypes(t *testing.T) {
	types := ActionTypes()

	assert.Len(t, types, len(registry))
	assert.IsIncreasing(t, types)
	for _, typ := range types {
		assert.Contains(t, Keys, sliceOf(typ), typ)
	}
}
