package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/prediction"
)

func predictionRouter(svc prediction.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/fights/{fightID}/predictions", HandleSubmitPrediction(svc))
	r.Get("/fights/{fightID}/predictions", HandleListFightPredictions(svc))
	r.Get("/fights/{fightID}/predictions/{userID}", HandleGetPrediction(svc))
	r.Get("/users/{userID}/predictions", HandleListUserPredictions(svc))
	return r
}

func TestHandleSubmitPrediction(t *testing.T) {
	fightID := uuid.New()
	userID := uuid.New()

	t.Run("submits pick with method call", func(t *testing.T) {
		mockSvc := &MockPredictionService{}
		mockSvc.On("Submit", mock.Anything, mock.MatchedBy(func(in prediction.SubmitInput) bool {
			return in.UserID == userID &&
				in.FightID == fightID &&
				in.PickedWinner == "Jamahal Hill" &&
				in.PickedFinishType != nil && *in.PickedFinishType == domain.FinishTypeFinish &&
				in.PickedMethod != nil && *in.PickedMethod == domain.MethodTKOKO
		})).Return(&domain.Prediction{
			UserID:       userID,
			FightID:      fightID,
			PickedWinner: "Jamahal Hill",
		}, nil)

		body, _ := json.Marshal(SubmitPredictionRequest{
			UserID:       userID.String(),
			Username:     "fightfan",
			PickedWinner: "Jamahal Hill",
			FinishType:   "finish",
			Method:       "tko_ko",
		})

		req := httptest.NewRequest("POST", "/fights/"+fightID.String()+"/predictions", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		predictionRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Jamahal Hill")
		mockSvc.AssertExpectations(t)
	})

	t.Run("rejects malformed user id via validation", func(t *testing.T) {
		mockSvc := &MockPredictionService{}

		body, _ := json.Marshal(SubmitPredictionRequest{
			UserID:       "not-a-uuid",
			Username:     "fightfan",
			PickedWinner: "Jamahal Hill",
		})

		req := httptest.NewRequest("POST", "/fights/"+fightID.String()+"/predictions", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		predictionRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "userid")
		mockSvc.AssertNotCalled(t, "Submit")
	})

	t.Run("maps locked predictions to 409", func(t *testing.T) {
		mockSvc := &MockPredictionService{}
		mockSvc.On("Submit", mock.Anything, mock.Anything).Return(nil, domain.ErrPredictionsLocked)

		body, _ := json.Marshal(SubmitPredictionRequest{
			UserID:       userID.String(),
			Username:     "fightfan",
			PickedWinner: "Jamahal Hill",
		})

		req := httptest.NewRequest("POST", "/fights/"+fightID.String()+"/predictions", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		predictionRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgPredictionsLocked)
	})

	t.Run("maps unknown fighter pick to 400", func(t *testing.T) {
		mockSvc := &MockPredictionService{}
		mockSvc.On("Submit", mock.Anything, mock.Anything).Return(nil, domain.ErrUnknownFighterPick)

		body, _ := json.Marshal(SubmitPredictionRequest{
			UserID:       userID.String(),
			Username:     "fightfan",
			PickedWinner: "Jon Jones",
		})

		req := httptest.NewRequest("POST", "/fights/"+fightID.String()+"/predictions", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		predictionRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgUnknownFighter)
	})
}

func TestHandleGetPrediction(t *testing.T) {
	fightID := uuid.New()
	userID := uuid.New()

	t.Run("returns prediction", func(t *testing.T) {
		mockSvc := &MockPredictionService{}
		mockSvc.On("GetByUserAndFight", mock.Anything, userID, fightID).
			Return(&domain.Prediction{UserID: userID, FightID: fightID, PickedWinner: "Alex Pereira"}, nil)

		req := httptest.NewRequest("GET", "/fights/"+fightID.String()+"/predictions/"+userID.String(), nil)
		rec := httptest.NewRecorder()
		predictionRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Alex Pereira")
	})

	t.Run("maps missing prediction to 404", func(t *testing.T) {
		mockSvc := &MockPredictionService{}
		mockSvc.On("GetByUserAndFight", mock.Anything, userID, fightID).
			Return(nil, domain.ErrPredictionNotFound)

		req := httptest.NewRequest("GET", "/fights/"+fightID.String()+"/predictions/"+userID.String(), nil)
		rec := httptest.NewRecorder()
		predictionRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgPredictionNotFound)
	})
}

func TestHandleListUserPredictions(t *testing.T) {
	userID := uuid.New()

	mockSvc := &MockPredictionService{}
	mockSvc.On("ListByUser", mock.Anything, userID, 0).Return([]domain.Prediction{
		{UserID: userID, PickedWinner: "Alex Pereira"},
	}, nil)

	req := httptest.NewRequest("GET", "/users/"+userID.String()+"/predictions", nil)
	rec := httptest.NewRecorder()
	predictionRouter(mockSvc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alex Pereira")
	mockSvc.AssertExpectations(t)
}
