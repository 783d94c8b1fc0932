package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management/apperrors"
	"hotel-management/dto"
	"hotel-management/models"
	"hotel-management/utils"
	"hotel-management/validation"
)

type PaymentStore interface {
	GetPayment(id uint) (*models.Payment, error)
	ListPayments(f dto.PaymentFilter) ([]models.Payment, error)
	BookingExists(bookingID uint) (bool, error)
	CreatePayment(payment *models.Payment) error
	UpdatePayment(id uint, updates map[string]interface{}) (*models.Payment, error)
	DeletePayment(id uint) error
}

type PaymentController struct {
	store PaymentStore
}

func NewPaymentController(store PaymentStore) *PaymentController {
	return &PaymentController{store: store}
}

func paymentNotFound() *apperrors.APIError {
	return apperrors.NotFound("PAYMENT_NOT_FOUND", "Payment not found")
}

func (pc *PaymentController) GetPayments(c *gin.Context) {
	if id, present, ok := utils.ParseID(c, "id"); present {
		if !ok {
			utils.Fail(c, apperrors.InvalidID())
			return
		}
		payment, err := pc.store.GetPayment(id)
		if err != nil {
			failLookup(c, "fetch payment", err, paymentNotFound())
			return
		}
		c.JSON(http.StatusOK, payment)
		return
	}

	f := dto.PaymentFilter{}
	f.Limit, f.Offset = utils.ParsePage(c)
	if method := c.Query("method"); method != "" {
		if !models.IsValidPaymentMethod(method) {
			utils.Fail(c, apperrors.BadRequest("INVALID_METHOD", "Invalid payment method"))
			return
		}
		f.Method = method
	}
	if bookingID, present, ok := utils.ParseID(c, "bookingId"); present {
		if !ok {
			utils.Fail(c, apperrors.BadRequest("INVALID_BOOKING_ID", "Valid bookingId is required"))
			return
		}
		f.BookingID = &bookingID
	}
	if raw := c.Query("fromDate"); raw != "" {
		if t, ok := utils.ParseDate(raw); ok {
			f.FromDate = &t
		}
	}
	if raw := c.Query("toDate"); raw != "" {
		if t, ok := utils.ParseDate(raw); ok {
			f.ToDate = &t
		}
	}

	payments, err := pc.store.ListPayments(f)
	if err != nil {
		utils.FailInternal(c, "list payments", err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req dto.PaymentCreate
	if !bindJSON(c, &req) {
		return
	}
	payment, apiErr := validation.PaymentCreate(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}

	exists, err := pc.store.BookingExists(payment.BookingID)
	if err != nil {
		utils.FailInternal(c, "check booking", err)
		return
	}
	if !exists {
		utils.Fail(c, apperrors.NotFound("BOOKING_NOT_FOUND", "Booking not found"))
		return
	}

	if err := pc.store.CreatePayment(payment); err != nil {
		utils.FailInternal(c, "create payment", err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (pc *PaymentController) UpdatePayment(c *gin.Context) {
	id, present, ok := utils.ParseID(c, "id")
	if !present || !ok {
		utils.Fail(c, apperrors.InvalidID())
		return
	}
	if _, err := pc.store.GetPayment(id); err != nil {
		failLookup(c, "fetch payment", err, paymentNotFound())
		return
	}

	var req dto.PaymentUpdate
	if !bindJSON(c, &req) {
		return
	}
	updates, apiErr := validation.PaymentUpdate(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}

	if bookingID, changed := updates["booking_id"].(uint); changed {
		exists, err := pc.store.BookingExists(bookingID)
		if err != nil {
			utils.FailInternal(c, "check booking", err)
			return
		}
		if !exists {
			utils.Fail(c, apperrors.NotFound("BOOKING_NOT_FOUND", "Booking not found"))
			return
		}
	}

	payment, err := pc.store.UpdatePayment(id, updates)
	if err != nil {
		utils.FailInternal(c, "update payment", err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (pc *PaymentController) DeletePayment(c *gin.Context) {
	id, present, ok := utils.ParseID(c, "id")
	if !present || !ok {
		utils.Fail(c, apperrors.InvalidID())
		return
	}
	payment, err := pc.store.GetPayment(id)
	if err != nil {
		failLookup(c, "fetch payment", err, paymentNotFound())
		return
	}
	if err := pc.store.DeletePayment(id); err != nil {
		utils.FailInternal(c, "delete payment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully", "payment": payment})
}
