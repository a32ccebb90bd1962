package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campus-mis/attendance-backend-go/internal/domain/exemption"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExemptionService struct {
	applyErr error
	listed   []exemption.ExemptionResponse
}

func (f *fakeExemptionService) Apply(_ context.Context, req exemption.ApplyExemptionRequest) ([]exemption.ExemptionResponse, error) {
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	out := make([]exemption.ExemptionResponse, 0, len(req.Sessions))
	for i, session := range req.Sessions {
		out = append(out, exemption.ExemptionResponse{
			ID:      fmt.Sprintf("ex-%d", i+1),
			StaffID: req.StaffID,
			Type:    req.Type,
			Session: session,
			Date:    req.Date,
			Reason:  req.Reason,
			Status:  exemption.StatusPending,
		})
	}
	return out, nil
}

func (f *fakeExemptionService) Approve(_ context.Context, _ exemption.ReviewExemptionRequest) error {
	return nil
}

func (f *fakeExemptionService) Reject(_ context.Context, _ exemption.ReviewExemptionRequest) error {
	return nil
}

func (f *fakeExemptionService) GetByID(_ context.Context, _ string) (exemption.ExemptionResponse, error) {
	return exemption.ExemptionResponse{}, exemption.ErrExemptionNotFound
}

func (f *fakeExemptionService) List(_ context.Context, _ exemption.ExemptionFilter) ([]exemption.ExemptionResponse, error) {
	return f.listed, nil
}

// envelope mirrors the response wrapper for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		TotalItems int64 `json:"total_items"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func applyRequest(t *testing.T, body interface{}) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/exemptions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func validApplyBody() exemption.ApplyExemptionRequest {
	return exemption.ApplyExemptionRequest{
		StaffID:  "1042",
		Type:     "official_duty",
		Sessions: []string{exemption.SessionMorning},
		Date:     "2026-08-03",
		Reason:   "Medical camp duty",
	}
}

func TestExemptionHandler_Apply_Success(t *testing.T) {
	t.Parallel()
	handler := NewExemptionHandler(&fakeExemptionService{})

	rec := httptest.NewRecorder()
	handler.Apply(rec, applyRequest(t, validApplyBody()))

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Exemption request submitted", env.Message)

	var created []exemption.ExemptionResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Len(t, created, 1)
	assert.Equal(t, exemption.StatusPending, created[0].Status)
}

func TestExemptionHandler_Apply_DuplicateConflict(t *testing.T) {
	t.Parallel()
	handler := NewExemptionHandler(&fakeExemptionService{
		applyErr: exemption.ErrDuplicateExemption,
	})

	rec := httptest.NewRecorder()
	handler.Apply(rec, applyRequest(t, validApplyBody()))

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestExemptionHandler_Apply_ValidationFailure(t *testing.T) {
	t.Parallel()
	handler := NewExemptionHandler(&fakeExemptionService{})

	body := validApplyBody()
	body.Reason = ""
	body.Type = "vacation"

	rec := httptest.NewRecorder()
	handler.Apply(rec, applyRequest(t, body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "reason")
	assert.Contains(t, env.Error.Details, "type")
}

func TestExemptionHandler_Apply_MalformedBody(t *testing.T) {
	t.Parallel()
	handler := NewExemptionHandler(&fakeExemptionService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/exemptions", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Apply(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestExemptionHandler_List_ReportsTotal(t *testing.T) {
	t.Parallel()
	handler := NewExemptionHandler(&fakeExemptionService{
		listed: []exemption.ExemptionResponse{
			{ID: "ex-1", StaffID: "1042", Status: exemption.StatusPending},
			{ID: "ex-2", StaffID: "1042", Status: exemption.StatusApproved},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exemptions?staff_id=1042", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(2), env.Meta.TotalItems)
}
