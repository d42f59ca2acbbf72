package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"finch/internal/database"
	"finch/internal/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubClassifier stands in for the trained model so handler behaviour does
// not depend on artifact files.
type stubClassifier struct {
	label         int
	probabilities []float64
	err           error
}

func (s *stubClassifier) Predict(features []float64) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.label, nil
}

func (s *stubClassifier) PredictProba(features []float64) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.probabilities, nil
}

func setupServerTest(t *testing.T) (*http.ServeMux, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.Exec("PRAGMA busy_timeout = 5000").Error; err != nil {
		t.Fatalf("set busy timeout: %v", err)
	}

	if err := db.AutoMigrate(&domain.Application{}, &domain.DailyStat{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	database.DB = db
	t.Cleanup(func() {
		database.DB = nil
	})

	handlers, err := NewHandlers(&stubClassifier{label: 2, probabilities: []float64{0.1, 0.2, 0.7}})
	if err != nil {
		t.Fatalf("NewHandlers returned error: %v", err)
	}

	return Routes(handlers), db
}

func predictForm() url.Values {
	return url.Values{
		"name":              {"Jamie"},
		"age":               {"30"},
		"occupation":        {"2"},
		"annual_income":     {"50000"},
		"monthly_salary":    {"4000"},
		"num_bank_accounts": {"3"},
		"num_credit_card":   {"2"},
		"interest_rate":     {"12"},
		"outstanding_debt":  {"10000"},
		"monthly_balance":   {"500"},
	}
}

func postForm(mux *http.ServeMux, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func countApplications(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&domain.Application{}).Count(&count).Error; err != nil {
		t.Fatalf("count applications: %v", err)
	}
	return count
}

func TestHomeServesIntakeForm(t *testing.T) {
	mux, _ := setupServerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET / returned %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<form") {
		t.Fatal("home page does not contain the intake form")
	}
}

func TestPredictPersistsAndRenders(t *testing.T) {
	mux, db := setupServerTest(t)

	w := postForm(mux, predictForm())

	if w.Code != http.StatusOK {
		t.Fatalf("POST /predict returned %d, want 200. Body: %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	for _, want := range []string{"Jamie", "796", "Good", "Approved", "Low Risk", "70"} {
		if !strings.Contains(body, want) {
			t.Fatalf("result view missing %q. Body: %s", want, body)
		}
	}

	if got := countApplications(t, db); got != 1 {
		t.Fatalf("applications table has %d rows, want 1", got)
	}

	var stored domain.Application
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("load stored application: %v", err)
	}
	if stored.CreditScore != 796 || stored.CreditCategory != "Good" || stored.Decision != domain.DecisionApproved {
		t.Fatalf("stored row does not match rendered values: %+v", stored)
	}
	if stored.PredictionProbability != 0.7 {
		t.Fatalf("stored probability = %v, want 0.7", stored.PredictionProbability)
	}
	if stored.InterestRate != 12 || stored.OutstandingDebt != 10000 {
		t.Fatalf("stored inputs do not match submission: %+v", stored)
	}
}

func TestPredictMissingRequiredField(t *testing.T) {
	mux, db := setupServerTest(t)

	form := predictForm()
	form.Del("annual_income")

	w := postForm(mux, form)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("POST /predict without annual_income returned %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "annual_income") {
		t.Fatalf("error view does not name the missing field. Body: %s", w.Body.String())
	}
	if got := countApplications(t, db); got != 0 {
		t.Fatalf("failed predict persisted %d rows, want 0", got)
	}
}

func TestPredictNonNumericInput(t *testing.T) {
	mux, db := setupServerTest(t)

	form := predictForm()
	form.Set("age", "thirty")

	w := postForm(mux, form)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("POST /predict with bad age returned %d, want 400", w.Code)
	}
	if got := countApplications(t, db); got != 0 {
		t.Fatalf("failed predict persisted %d rows, want 0", got)
	}
}

func TestPredictClassifierFailure(t *testing.T) {
	_, db := setupServerTest(t)

	handlers, err := NewHandlers(&stubClassifier{err: fmt.Errorf("artifact gone sideways")})
	if err != nil {
		t.Fatalf("NewHandlers returned error: %v", err)
	}
	mux := Routes(handlers)

	w := postForm(mux, predictForm())

	if w.Code != http.StatusBadRequest {
		t.Fatalf("POST /predict with failing model returned %d, want 400", w.Code)
	}
	if got := countApplications(t, db); got != 0 {
		t.Fatalf("failed predict persisted %d rows, want 0", got)
	}
}

func TestHealth(t *testing.T) {
	mux, _ := setupServerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Fatalf("GET /health returned %d %q", w.Code, w.Body.String())
	}
}
