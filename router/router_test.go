// file: router/router_test.go

package router_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bank-ledger/app"
	"go-bank-ledger/config"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
)

func TestMain(m *testing.M) {
	logger.Init()
	config.LoadConfig("../")
	os.Exit(m.Run())
}

// --- Test Helper Functions ---

func doJSON(t *testing.T, a *app.TestApp, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func createAccountForTest(t *testing.T, a *app.TestApp, owner, kind string, initial float64) model.Account {
	t.Helper()
	account, err := a.Service.CreateAccount(owner, kind, initial)
	require.NoError(t, err)
	return *account
}

// --- Test Suites ---

func TestHealthCheck_Integration(t *testing.T) {
	a := app.NewTestApp()
	rr := doJSON(t, a, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	expectedBody := `{"status":"API is healthy and running"}`
	assert.JSONEq(t, expectedBody, rr.Body.String())
}

func TestCreateAccount_Integration(t *testing.T) {
	a := app.NewTestApp()

	t.Run("success", func(t *testing.T) {
		rr := doJSON(t, a, "POST", "/api/accounts",
			`{"owner":"Alice","kind":"SAVINGS","initial_balance":1000}`)
		assert.Equal(t, http.StatusCreated, rr.Code)

		var account model.Account
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &account))
		assert.Equal(t, "Alice", account.Owner)
		assert.Equal(t, model.KindSavings, account.Kind)
		assert.Equal(t, "1000", account.Balance.String())
	})

	t.Run("invalid kind rejected by validation", func(t *testing.T) {
		rr := doJSON(t, a, "POST", "/api/accounts",
			`{"owner":"Bob","kind":"OFFSHORE","initial_balance":10}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing owner rejected by validation", func(t *testing.T) {
		rr := doJSON(t, a, "POST", "/api/accounts", `{"kind":"CHECKING"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDepositAndWithdraw_Integration(t *testing.T) {
	a := app.NewTestApp()
	account := createAccountForTest(t, a, "Alice", "CHECKING", 100)

	t.Run("deposit", func(t *testing.T) {
		rr := doJSON(t, a, "POST", fmt.Sprintf("/api/accounts/%d/deposits", account.ID),
			`{"amount":50}`)
		assert.Equal(t, http.StatusOK, rr.Code)

		var updated model.Account
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
		assert.Equal(t, "150", updated.Balance.String())
	})

	t.Run("withdrawal", func(t *testing.T) {
		rr := doJSON(t, a, "POST", fmt.Sprintf("/api/accounts/%d/withdrawals", account.ID),
			`{"amount":30}`)
		assert.Equal(t, http.StatusOK, rr.Code)

		var updated model.Account
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
		assert.Equal(t, "120", updated.Balance.String())
	})

	t.Run("overdraft rejected", func(t *testing.T) {
		rr := doJSON(t, a, "POST", fmt.Sprintf("/api/accounts/%d/withdrawals", account.ID),
			`{"amount":100000}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown account", func(t *testing.T) {
		rr := doJSON(t, a, "POST", "/api/accounts/424242/deposits", `{"amount":5}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("balance endpoint", func(t *testing.T) {
		rr := doJSON(t, a, "GET", fmt.Sprintf("/api/accounts/%d/balance", account.ID), "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"balance":"120"`)
	})
}

func TestListAccounts_Integration(t *testing.T) {
	a := app.NewTestApp()
	first := createAccountForTest(t, a, "Alice", "CHECKING", 100)
	second := createAccountForTest(t, a, "Bob", "SAVINGS", 200)

	rr := doJSON(t, a, "GET", "/api/accounts", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var accounts []model.Account
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &accounts))
	require.Len(t, accounts, 2)
	assert.Equal(t, first.ID, accounts[0].ID)
	assert.Equal(t, second.ID, accounts[1].ID)
}

func TestTransfer_Integration(t *testing.T) {
	a := app.NewTestApp()
	from := createAccountForTest(t, a, "Alice", "CHECKING", 500)
	to := createAccountForTest(t, a, "Bob", "CHECKING", 0)

	t.Run("success", func(t *testing.T) {
		rr := doJSON(t, a, "POST", "/api/transfers",
			fmt.Sprintf(`{"from_account_id":%d,"to_account_id":%d,"amount":200}`, from.ID, to.ID))
		assert.Equal(t, http.StatusCreated, rr.Code)

		fromBal, err := a.Service.Balance(from.ID)
		require.NoError(t, err)
		toBal, err := a.Service.Balance(to.ID)
		require.NoError(t, err)
		assert.Equal(t, "300", fromBal.String())
		assert.Equal(t, "200", toBal.String())
	})

	t.Run("insufficient funds", func(t *testing.T) {
		rr := doJSON(t, a, "POST", "/api/transfers",
			fmt.Sprintf(`{"from_account_id":%d,"to_account_id":%d,"amount":100000}`, from.ID, to.ID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown destination", func(t *testing.T) {
		rr := doJSON(t, a, "POST", "/api/transfers",
			fmt.Sprintf(`{"from_account_id":%d,"to_account_id":424242,"amount":1}`, from.ID))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("self transfer", func(t *testing.T) {
		rr := doJSON(t, a, "POST", "/api/transfers",
			fmt.Sprintf(`{"from_account_id":%d,"to_account_id":%d,"amount":1}`, from.ID, from.ID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("history shows both generic and transfer entries", func(t *testing.T) {
		rr := doJSON(t, a, "GET", fmt.Sprintf("/api/accounts/%d/transactions", to.ID), "")
		assert.Equal(t, http.StatusOK, rr.Code)

		var history []model.Transaction
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &history))
		require.Len(t, history, 3)
		assert.Equal(t, model.TxDeposit, history[1].Kind)
		assert.Equal(t, model.TxTransferIn, history[2].Kind)
	})
}

func TestInterestAndFees_Integration(t *testing.T) {
	a := app.NewTestApp()
	saver := createAccountForTest(t, a, "Saver", "SAVINGS", 1000)
	createAccountForTest(t, a, "Broke", "CHECKING", 1)

	t.Run("explicit parameters", func(t *testing.T) {
		rr := doJSON(t, a, "POST", "/api/maintenance/interest-and-fees",
			`{"savings_rate":0.05,"monthly_fee":5}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"applied":1`)
		assert.Contains(t, rr.Body.String(), `"failures"`)

		balance, err := a.Service.Balance(saver.ID)
		require.NoError(t, err)
		assert.Equal(t, "1050", balance.String())
	})

	t.Run("defaults from configuration", func(t *testing.T) {
		rr := doJSON(t, a, "POST", "/api/maintenance/interest-and-fees", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		rr := doJSON(t, a, "POST", "/api/maintenance/interest-and-fees",
			`{"savings_rate":-1,"monthly_fee":5}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
