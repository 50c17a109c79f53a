package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	analyticsUC "github.com/oaksmart/pos-ledger/internal/analytics/usecase"
	"github.com/oaksmart/pos-ledger/internal/auth"
	productdto "github.com/oaksmart/pos-ledger/internal/product/dto"
	productUC "github.com/oaksmart/pos-ledger/internal/product/usecase"
	saledto "github.com/oaksmart/pos-ledger/internal/sale/dto"
	saleUC "github.com/oaksmart/pos-ledger/internal/sale/usecase"
	userdto "github.com/oaksmart/pos-ledger/internal/user/dto"
	userUC "github.com/oaksmart/pos-ledger/internal/user/usecase"
)

func ok(c echo.Context, body map[string]interface{}) error {
	body["ok"] = true
	return c.JSON(http.StatusOK, body)
}

func fail(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]interface{}{"ok": false, "error": err.Error()})
}

func (s *Server) health(c echo.Context) error {
	return ok(c, map[string]interface{}{"app": "pos-ledger"})
}

func (s *Server) login(c echo.Context) error {
	var payload struct {
		Name string `json:"name"`
		Pin  string `json:"pin"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	u, err := s.users.Login(c.Request().Context(), payload.Name, payload.Pin)
	if err != nil {
		switch {
		case errors.Is(err, userUC.ErrNameAndPinRequired):
			return fail(c, http.StatusBadRequest, err)
		case errors.Is(err, userUC.ErrInvalidCredentials):
			return fail(c, http.StatusUnauthorized, err)
		default:
			return fail(c, http.StatusInternalServerError, err)
		}
	}
	return ok(c, map[string]interface{}{"user": u})
}

func (s *Server) createUser(c echo.Context) error {
	var payload struct {
		Name      string `json:"name"`
		Pin       string `json:"pin"`
		IsAdmin   bool   `json:"is_admin"`
		AdminName string `json:"admin_name"`
		AdminPin  string `json:"admin_pin"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	u, err := s.users.CreateUser(c.Request().Context(), &userdto.CreateUserInput{
		Name:      payload.Name,
		Pin:       payload.Pin,
		IsAdmin:   payload.IsAdmin,
		AdminName: payload.AdminName,
		AdminPin:  payload.AdminPin,
	})
	if err != nil {
		switch {
		case errors.Is(err, userUC.ErrAdminRequired):
			return fail(c, http.StatusForbidden, err)
		case errors.Is(err, userUC.ErrUserExists), errors.Is(err, userUC.ErrNameAndPinRequired):
			return fail(c, http.StatusBadRequest, err)
		default:
			return fail(c, http.StatusInternalServerError, err)
		}
	}
	return ok(c, map[string]interface{}{"user": u})
}

func (s *Server) changePin(c echo.Context) error {
	var payload struct {
		TargetName string `json:"target_name"`
		NewPin     string `json:"new_pin"`
		AdminName  string `json:"admin_name"`
		AdminPin   string `json:"admin_pin"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	err := s.users.ChangePin(c.Request().Context(), &userdto.ChangePinInput{
		TargetName: payload.TargetName,
		NewPin:     payload.NewPin,
		AdminName:  payload.AdminName,
		AdminPin:   payload.AdminPin,
	})
	if err != nil {
		switch {
		case errors.Is(err, userUC.ErrAdminRequired):
			return fail(c, http.StatusForbidden, err)
		case errors.Is(err, userUC.ErrUserNotFound):
			return fail(c, http.StatusNotFound, err)
		case errors.Is(err, userUC.ErrNameAndPinRequired):
			return fail(c, http.StatusBadRequest, err)
		default:
			return fail(c, http.StatusInternalServerError, err)
		}
	}
	return ok(c, map[string]interface{}{})
}

func (s *Server) listUsers(c echo.Context) error {
	users, err := s.users.ListUsers(c.Request().Context(), c.QueryParam("admin_name"), c.QueryParam("admin_pin"))
	if err != nil {
		if errors.Is(err, userUC.ErrAdminRequired) {
			return fail(c, http.StatusForbidden, err)
		}
		return fail(c, http.StatusInternalServerError, err)
	}
	return ok(c, map[string]interface{}{"users": users})
}

func (s *Server) listProducts(c echo.Context) error {
	products, err := s.products.ListProducts(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, err)
	}
	return ok(c, map[string]interface{}{"products": products})
}

func (s *Server) upsertProduct(c echo.Context) error {
	var payload struct {
		Barcode string   `json:"barcode"`
		Name    *string  `json:"name"`
		Price   *float64 `json:"price"`
		Cost    *float64 `json:"cost"`
		Qty     *int     `json:"qty"`
		IsNew   *bool    `json:"is_new"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	p, err := s.products.UpsertProduct(c.Request().Context(), &productdto.UpsertProductInput{
		Barcode: payload.Barcode,
		Name:    payload.Name,
		Price:   payload.Price,
		Cost:    payload.Cost,
		Qty:     payload.Qty,
		IsNew:   payload.IsNew,
	})
	if err != nil {
		if errors.Is(err, productUC.ErrBarcodeRequired) {
			return fail(c, http.StatusBadRequest, err)
		}
		return fail(c, http.StatusInternalServerError, err)
	}
	return ok(c, map[string]interface{}{"product": p})
}

func (s *Server) listMovements(c echo.Context) error {
	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	movements, err := s.products.ListMovements(c.Request().Context(), c.Param("barcode"), limit)
	if err != nil {
		return fail(c, http.StatusInternalServerError, err)
	}
	return ok(c, map[string]interface{}{"movements": movements})
}

func (s *Server) recordSale(c echo.Context) error {
	var payload struct {
		Cashier     string             `json:"cashier"`
		PaymentType string             `json:"payment_type"`
		Lines       []saledto.CartLine `json:"lines"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	ctx := auth.WithCashier(c.Request().Context(), payload.Cashier)
	t, err := s.sales.RecordSale(ctx, &saledto.RecordSaleInput{
		Lines:       payload.Lines,
		PaymentType: payload.PaymentType,
	})
	if err != nil {
		if errors.Is(err, saleUC.ErrEmptyCart) || errors.Is(err, saleUC.ErrBadLine) {
			return fail(c, http.StatusBadRequest, err)
		}
		s.logger.Error("record sale failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, err)
	}
	return ok(c, map[string]interface{}{"transaction": t})
}

func (s *Server) sync(c echo.Context) error {
	result, err := s.syncUC.Sync(c.Request().Context())
	if err != nil {
		s.logger.Error("sync failed on storage", zap.Error(err))
		return fail(c, http.StatusInternalServerError, err)
	}
	return ok(c, map[string]interface{}{"result": result})
}

func (s *Server) analyticsSummary(c echo.Context) error {
	summary, err := s.analytics.Summary(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, err)
	}
	return ok(c, map[string]interface{}{"summary": summary})
}

func (s *Server) suggestReorder(c echo.Context) error {
	var payload struct {
		Barcode      string `json:"barcode"`
		LookbackDays int    `json:"lookback_days"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, err)
	}
	if payload.LookbackDays == 0 {
		payload.LookbackDays = 14
	}

	suggestion, err := s.analytics.SuggestReorder(c.Request().Context(), payload.Barcode, payload.LookbackDays)
	if err != nil {
		if errors.Is(err, analyticsUC.ErrProductNotFound) {
			return fail(c, http.StatusNotFound, err)
		}
		return fail(c, http.StatusInternalServerError, err)
	}
	return ok(c, map[string]interface{}{"suggestion": suggestion})
}
