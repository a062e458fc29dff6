//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/signance/backend/internal/application/usecase/auth"
	"github.com/signance/backend/internal/application/usecase/budget"
	"github.com/signance/backend/internal/application/usecase/report"
	"github.com/signance/backend/internal/application/usecase/saving"
	"github.com/signance/backend/internal/application/usecase/transaction"
	"github.com/signance/backend/internal/infra/server/router"
	"github.com/signance/backend/internal/integration/adapters"
	"github.com/signance/backend/internal/integration/entrypoint/controller"
	"github.com/signance/backend/internal/integration/entrypoint/middleware"
	"github.com/signance/backend/internal/integration/persistence"
	"github.com/signance/backend/internal/integration/persistence/model"
	"github.com/signance/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var serverInit sync.Once
var testServer *httptest.Server
var testDB *mock.Db

type response struct {
	status int
	body   any
	raw    []byte
}

type testContext struct {
	client        *http.Client
	headers       map[string]string
	response      *response
	db            *mock.Db
	accessToken   string
	refreshToken  string
	currentUserID uint
	lastID        uint
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb([]any{
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.TransactionModel{},
			&model.BudgetModel{},
			&model.SavingGoalModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Setup steps
	ctx.Given(`^a user exists with username "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithUsernameAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAsWithPassword)
	ctx.Given(`^the user has a "([^"]*)" transaction of "([^"]*)" in category "([^"]*)" on "([^"]*)"$`, test.theUserHasATransaction)
	ctx.Given(`^the user has a budget for category "([^"]*)" of "([^"]*)" from "([^"]*)" to "([^"]*)"$`, test.theUserHasABudget)
	ctx.Given(`^the user has a saving goal "([^"]*)" with target "([^"]*)" and current "([^"]*)"$`, test.theUserHasASavingGoal)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = 0
	t.lastID = 0

	if t.db != nil {
		if err := t.db.ClearDB(); err != nil {
			panic(fmt.Sprintf("failed to clear database: %v", err))
		}
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		panic(fmt.Sprintf("failed to clear redis: %v", err))
	}
}

// startServer wires the full application against the shared in-memory
// database and starts an httptest server, once for the whole suite.
func (t *testContext) startServer() {
	serverInit.Do(func() {
		gin.SetMode(gin.TestMode)

		userRepo := persistence.NewUserRepository(testDB.DbConn)
		tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
		transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
		budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
		savingRepo := persistence.NewSavingRepository(testDB.DbConn)
		ledgerRepo := persistence.NewLedgerRepository(testDB.DbConn)

		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour, tokenRepo)

		authController := controller.NewAuthController(
			auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
			auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
			auth.NewRefreshTokenUseCase(tokenService),
			auth.NewLogoutUserUseCase(tokenService),
		)
		transactionController := controller.NewTransactionController(
			transaction.NewCreateTransactionUseCase(transactionRepo),
			transaction.NewGetTransactionUseCase(transactionRepo),
			transaction.NewListTransactionsUseCase(transactionRepo),
			transaction.NewUpdateTransactionUseCase(transactionRepo),
			transaction.NewDeleteTransactionUseCase(transactionRepo),
		)
		budgetController := controller.NewBudgetController(
			budget.NewCreateBudgetUseCase(budgetRepo),
			budget.NewListBudgetsUseCase(budgetRepo),
			budget.NewUpdateBudgetUseCase(budgetRepo),
			budget.NewDeleteBudgetUseCase(budgetRepo),
		)
		savingController := controller.NewSavingController(
			saving.NewCreateSavingUseCase(savingRepo),
			saving.NewListSavingsUseCase(savingRepo),
			saving.NewUpdateSavingUseCase(savingRepo),
			saving.NewSetSavingAmountUseCase(savingRepo),
			saving.NewDeleteSavingUseCase(savingRepo),
		)
		dashboardController := controller.NewDashboardController(
			report.NewGetMonthlySpendingUseCase(ledgerRepo),
			report.NewGetCategorySpendingUseCase(ledgerRepo),
			report.NewGetTrailingSeriesUseCase(ledgerRepo),
			report.NewGetBudgetOverviewUseCase(budgetRepo, ledgerRepo),
			report.NewGetSavingsOverviewUseCase(savingRepo),
		)
		healthController := controller.NewHealthController(func() bool {
			return testDB != nil && testDB.DbConn != nil
		})

		loginRateLimiter := middleware.NewRateLimiterWithConfig(
			middleware.NewRedisAttemptStore(mock.NewRedis()),
			100, // generous so login-heavy scenarios never throttle
			time.Minute,
		)
		authMiddleware := middleware.NewAuthMiddleware(tokenService)

		r := router.NewRouter(
			healthController,
			authController,
			transactionController,
			budgetController,
			savingController,
			dashboardController,
			loginRateLimiter,
			authMiddleware,
		)
		testServer = httptest.NewServer(r.Setup("test"))
	})
}

// Step implementations

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	if testServer == nil {
		return errors.New("test server is not running")
	}
	return nil
}

func (t *testContext) aUserExistsWithUsernameAndPassword(username, password string) error {
	now := time.Now().UTC()
	user := &model.UserModel{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := t.db.DbConn.Create(user).Error; err != nil {
		return err
	}
	t.currentUserID = user.ID
	return nil
}

func (t *testContext) iAmLoggedInAsWithPassword(username, password string) error {
	if err := t.theAPIServerIsRunning(); err != nil {
		return err
	}

	body := fmt.Sprintf(`{"login": %q, "password": %q}`, username, password)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %v", t.response.status, t.response.body)
	}

	data, ok := t.response.body.(map[string]any)
	if !ok {
		return errors.New("login response is not a JSON object")
	}
	t.accessToken, _ = data["access_token"].(string)
	t.refreshToken, _ = data["refresh_token"].(string)
	if t.accessToken == "" {
		return errors.New("login response did not include an access token")
	}
	return nil
}

func (t *testContext) theUserHasATransaction(txType, amount, category, date string) error {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	now := time.Now().UTC()
	txn := &model.TransactionModel{
		UserID:    t.currentUserID,
		Amount:    decimal.RequireFromString(amount),
		Category:  category,
		Type:      txType,
		Date:      parsedDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(txn).Error; err != nil {
		return err
	}
	t.lastID = txn.ID
	return nil
}

func (t *testContext) theUserHasABudget(category, amount, startDate, endDate string) error {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	now := time.Now().UTC()
	b := &model.BudgetModel{
		UserID:    t.currentUserID,
		Category:  category,
		Amount:    decimal.RequireFromString(amount),
		StartDate: start,
		EndDate:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(b).Error; err != nil {
		return err
	}
	t.lastID = b.ID
	return nil
}

func (t *testContext) theUserHasASavingGoal(name, target, current string) error {
	now := time.Now().UTC()
	goal := &model.SavingGoalModel{
		UserID:        t.currentUserID,
		Name:          name,
		TargetAmount:  decimal.RequireFromString(target),
		CurrentAmount: decimal.RequireFromString(current),
		Deadline:      now.AddDate(1, 0, 0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := t.db.DbConn.Create(goal).Error; err != nil {
		return err
	}
	t.lastID = goal.ID
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{id}}", fmt.Sprintf("%d", t.lastID))
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := testServer.URL + path
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, raw: raw}

	var responseBody map[string]any
	if err := json.Unmarshal(raw, &responseBody); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = responseBody

	// Capture the created resource ID for later path placeholders.
	if id, ok := responseBody["id"].(float64); ok {
		t.lastID = uint(id)
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookupField(field)
	return err
}

// lookupField resolves a dot-separated path, with numeric segments indexing
// into arrays.
func (t *testContext) lookupField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	var current any = t.response.body
	for _, segment := range strings.Split(field, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", field, string(t.response.raw))
			}
			current = value
		case []any:
			var index int
			if _, err := fmt.Sscanf(segment, "%d", &index); err != nil {
				return nil, fmt.Errorf("field %q: %q is not an array index", field, segment)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q: index %d out of range", field, index)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q: cannot descend into %T", field, node)
		}
	}
	return current, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(expected int, table string) error {
	var count int64
	if err := t.db.DbConn.Table(table).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %q, got %d", expected, table, count)
	}
	return nil
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}
