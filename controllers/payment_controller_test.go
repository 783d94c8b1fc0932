package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-management/dto"
	"hotel-management/models"
)

type paymentStoreStub struct {
	payments   map[uint]*models.Payment
	bookingIDs map[uint]bool
	nextID     uint
	lastFilter dto.PaymentFilter
}

func newPaymentStoreStub(bookingIDs ...uint) *paymentStoreStub {
	s := &paymentStoreStub{
		payments:   map[uint]*models.Payment{},
		bookingIDs: map[uint]bool{},
		nextID:     1,
	}
	for _, id := range bookingIDs {
		s.bookingIDs[id] = true
	}
	return s
}

func (s *paymentStoreStub) GetPayment(id uint) (*models.Payment, error) {
	payment, ok := s.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *payment
	return &cp, nil
}

func (s *paymentStoreStub) ListPayments(f dto.PaymentFilter) ([]models.Payment, error) {
	s.lastFilter = f
	out := []models.Payment{}
	for _, payment := range s.payments {
		if f.Method != "" && payment.Method != f.Method {
			continue
		}
		out = append(out, *payment)
	}
	return out, nil
}

func (s *paymentStoreStub) BookingExists(bookingID uint) (bool, error) {
	return s.bookingIDs[bookingID], nil
}

func (s *paymentStoreStub) CreatePayment(payment *models.Payment) error {
	payment.ID = s.nextID
	s.nextID++
	cp := *payment
	s.payments[payment.ID] = &cp
	return nil
}

func (s *paymentStoreStub) UpdatePayment(id uint, updates map[string]interface{}) (*models.Payment, error) {
	payment, ok := s.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for col, v := range updates {
		switch col {
		case "amount":
			payment.Amount = v.(float64)
		case "method":
			payment.Method = v.(string)
		case "booking_id":
			payment.BookingID = v.(uint)
		case "transaction_id":
			if v == nil {
				payment.TransactionID = nil
			} else {
				txn := v.(string)
				payment.TransactionID = &txn
			}
		}
	}
	cp := *payment
	return &cp, nil
}

func (s *paymentStoreStub) DeletePayment(id uint) error {
	delete(s.payments, id)
	return nil
}

func paymentRouter(store PaymentStore) *gin.Engine {
	pc := NewPaymentController(store)
	r := gin.New()
	r.GET("/api/payments", pc.GetPayments)
	r.POST("/api/payments", pc.CreatePayment)
	r.PUT("/api/payments", pc.UpdatePayment)
	r.DELETE("/api/payments", pc.DeletePayment)
	return r
}

func TestCreatePayment(t *testing.T) {
	r := paymentRouter(newPaymentStoreStub(5))
	w := perform(r, http.MethodPost, "/api/payments", gin.H{
		"amount": 160, "method": "CARD", "bookingId": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, 160.0, body["amount"])
	assert.NotEmpty(t, body["paymentDate"])
}

func TestCreatePaymentUnknownBooking(t *testing.T) {
	r := paymentRouter(newPaymentStoreStub())
	w := perform(r, http.MethodPost, "/api/payments", gin.H{
		"amount": 160, "method": "CARD", "bookingId": 5,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "BOOKING_NOT_FOUND", errCode(t, w))
}

func TestCreatePaymentInvalidMethod(t *testing.T) {
	r := paymentRouter(newPaymentStoreStub(5))
	w := perform(r, http.MethodPost, "/api/payments", gin.H{
		"amount": 160, "method": "CHEQUE", "bookingId": 5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_METHOD", errCode(t, w))
}

func TestUpdatePaymentRebindsBooking(t *testing.T) {
	store := newPaymentStoreStub(5, 6)
	store.CreatePayment(&models.Payment{BookingID: 5, Amount: 160, Method: "CARD"})
	r := paymentRouter(store)

	ok := perform(r, http.MethodPut, "/api/payments?id=1", gin.H{"bookingId": 6})
	require.Equal(t, http.StatusOK, ok.Code)
	assert.Equal(t, 6.0, decode(t, ok)["bookingId"])

	missing := perform(r, http.MethodPut, "/api/payments?id=1", gin.H{"bookingId": 99})
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "BOOKING_NOT_FOUND", errCode(t, missing))
}

func TestUpdatePaymentNotFound(t *testing.T) {
	r := paymentRouter(newPaymentStoreStub())
	w := perform(r, http.MethodPut, "/api/payments?id=3", gin.H{"amount": 10})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PAYMENT_NOT_FOUND", errCode(t, w))
}

func TestListPaymentsInvalidMethodFilter(t *testing.T) {
	r := paymentRouter(newPaymentStoreStub())
	w := perform(r, http.MethodGet, "/api/payments?method=BARTER", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_METHOD", errCode(t, w))
}

func TestDeletePayment(t *testing.T) {
	store := newPaymentStoreStub(5)
	store.CreatePayment(&models.Payment{BookingID: 5, Amount: 160, Method: "CASH"})
	r := paymentRouter(store)

	w := perform(r, http.MethodDelete, "/api/payments?id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Payment deleted successfully", decode(t, w)["message"])
	assert.Empty(t, store.payments)
}
