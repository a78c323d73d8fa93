package console

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MarkoPoloResearchLab/reservation/pkg/hotel"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Run boots the HTTP facade over the reservation service using the supplied
// configuration. It blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg Config, service *hotel.Service) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("zap init: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	handler := &httpHandler{
		logger:  logger,
		service: service,
		tokens:  newTokenManager(cfg),
	}
	router := setupRouter(cfg, handler)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("console listening", zap.String("addr", cfg.ListenAddr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("server shutdown error", zap.Error(shutdownErr))
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func setupRouter(cfg Config, handler *httpHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Origin", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := router.Group("/api/auth")
	auth.POST("/signin", handler.handleSignIn)
	auth.POST("/signup", handler.handleSignUp)

	api := router.Group("/api")
	api.Use(requireAuth(handler.tokens))

	api.GET("/session", handler.handleSession)
	api.GET("/rooms", handler.handleListRooms)
	api.GET("/bookings", handler.handleListBookings)
	api.POST("/bookings", handler.handleCreateBooking)
	api.POST("/bookings/:id/cancel", handler.handleCancelBooking)
	api.POST("/payments", handler.handleAddPayment)

	admin := api.Group("")
	admin.Use(requireRole(hotel.AccountRoleAdmin))
	admin.POST("/rooms", handler.handleAddRoom)
	admin.PATCH("/rooms/:id/status", handler.handleSetRoomStatus)
	admin.DELETE("/rooms/:id", handler.handleDeleteRoom)
	admin.GET("/customers", handler.handleListCustomers)
	admin.POST("/bookings/:id/checkin", handler.handleCheckInBooking)
	admin.POST("/bookings/:id/checkout", handler.handleCheckOutBooking)
	admin.GET("/payments", handler.handleListPayments)
	admin.GET("/dashboard", handler.handleDashboard)

	return router
}

type httpHandler struct {
	logger  *zap.Logger
	service *hotel.Service
	tokens  *tokenManager
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type createRoomRequest struct {
	Number        string `json:"number"`
	Type          string `json:"type"`
	PriceCents    int64  `json:"price_cents"`
	InitialStatus string `json:"status"`
}

type roomStatusRequest struct {
	Status string `json:"status"`
}

type createBookingRequest struct {
	CustomerID string `json:"customer_id"`
	RoomID     string `json:"room_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	TotalCents int64  `json:"total_cents"`
}

type addPaymentRequest struct {
	BookingID   string         `json:"booking_id"`
	AmountCents int64          `json:"amount_cents"`
	Method      string         `json:"method"`
	Metadata    map[string]any `json:"metadata"`
}

func (handler *httpHandler) handleSignIn(ctx *gin.Context) {
	var request signInRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	email, err := hotel.NewEmailAddress(request.Email)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_email", "a valid email is required"))
		return
	}
	account, err := handler.service.AccountByEmail(ctx.Request.Context(), email)
	if err != nil || !verifyPassword(account.PasswordHash(), request.Password) {
		ctx.JSON(http.StatusUnauthorized, errorResponse("invalid_credentials", "email or password is incorrect"))
		return
	}
	handler.respondWithSession(ctx, account)
}

func (handler *httpHandler) handleSignUp(ctx *gin.Context) {
	var request signUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	email, err := hotel.NewEmailAddress(request.Email)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_email", "a valid email is required"))
		return
	}
	fullName, err := hotel.NewFullName(request.FullName)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_name", "full name is required"))
		return
	}
	if len(request.Password) < 8 {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_password", "password must be at least 8 characters"))
		return
	}
	passwordHash, err := hashPassword(request.Password)
	if err != nil {
		handler.logger.Error("password hash failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, errorResponse("internal_error", "sign-up failed"))
		return
	}
	account, _, err := handler.service.SignUp(ctx.Request.Context(), email, passwordHash, fullName, request.Phone)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	handler.respondWithSession(ctx, account)
}

func (handler *httpHandler) handleSession(ctx *gin.Context) {
	claims := getClaims(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse("unauthorized", "missing session"))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"account_id":  claims.Subject,
		"email":       claims.Email,
		"role":        claims.Role,
		"customer_id": claims.CustomerID,
		"expires":     claims.ExpiresAt.Unix(),
	})
}

func (handler *httpHandler) handleListRooms(ctx *gin.Context) {
	rooms, err := handler.service.ListRooms(ctx.Request.Context())
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	payloads := make([]roomPayload, 0, len(rooms))
	for _, room := range rooms {
		payloads = append(payloads, buildRoomPayload(room))
	}
	ctx.JSON(http.StatusOK, gin.H{"rooms": payloads})
}

func (handler *httpHandler) handleAddRoom(ctx *gin.Context) {
	var request createRoomRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	number, err := hotel.NewRoomNumber(request.Number)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	roomType, err := hotel.ParseRoomType(request.Type)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	price, err := hotel.NewPriceCents(request.PriceCents)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	status := hotel.RoomStatusAvailable
	if request.InitialStatus != "" {
		status, err = hotel.ParseRoomStatus(request.InitialStatus)
		if err != nil {
			handler.respondServiceError(ctx, err)
			return
		}
	}
	room, err := handler.service.AddRoom(ctx.Request.Context(), number, roomType, price, status)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"room": buildRoomPayload(room)})
}

func (handler *httpHandler) handleSetRoomStatus(ctx *gin.Context) {
	roomID, err := hotel.NewRoomID(ctx.Param("id"))
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	var request roomStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	status, err := hotel.ParseRoomStatus(request.Status)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	if err := handler.service.SetRoomStatus(ctx.Request.Context(), roomID, status); err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (handler *httpHandler) handleDeleteRoom(ctx *gin.Context) {
	roomID, err := hotel.NewRoomID(ctx.Param("id"))
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	if err := handler.service.DeleteRoom(ctx.Request.Context(), roomID); err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (handler *httpHandler) handleListCustomers(ctx *gin.Context) {
	customers, err := handler.service.ListCustomers(ctx.Request.Context())
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	payloads := make([]customerPayload, 0, len(customers))
	for _, customer := range customers {
		payloads = append(payloads, buildCustomerPayload(customer))
	}
	ctx.JSON(http.StatusOK, gin.H{"customers": payloads})
}

func (handler *httpHandler) handleListBookings(ctx *gin.Context) {
	claims := getClaims(ctx)
	var filter *hotel.CustomerID
	if claims.Role != hotel.AccountRoleAdmin.String() {
		customerID, err := hotel.NewCustomerID(claims.CustomerID)
		if err != nil {
			ctx.JSON(http.StatusForbidden, errorResponse("forbidden", "missing customer profile"))
			return
		}
		filter = &customerID
	}
	views, err := handler.service.ListBookings(ctx.Request.Context(), filter)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	payloads := make([]bookingPayload, 0, len(views))
	for _, view := range views {
		payloads = append(payloads, buildBookingPayload(view))
	}
	ctx.JSON(http.StatusOK, gin.H{"bookings": payloads})
}

func (handler *httpHandler) handleCreateBooking(ctx *gin.Context) {
	claims := getClaims(ctx)
	var request createBookingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	customerIDValue := request.CustomerID
	if claims.Role != hotel.AccountRoleAdmin.String() {
		// Customers only book for themselves.
		if customerIDValue != "" && customerIDValue != claims.CustomerID {
			ctx.JSON(http.StatusForbidden, errorResponse("forbidden", "cannot book for another customer"))
			return
		}
		customerIDValue = claims.CustomerID
	}
	customerID, err := hotel.NewCustomerID(customerIDValue)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	roomID, err := hotel.NewRoomID(request.RoomID)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	stay, err := parseStay(request.CheckIn, request.CheckOut)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	totalAmount, err := hotel.NewPositiveAmountCents(request.TotalCents)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	booking, err := handler.service.CreateBooking(ctx.Request.Context(), customerID, roomID, stay, totalAmount)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"booking": buildBookingPayload(hotel.BookingView{Booking: booking})})
}

func (handler *httpHandler) handleCancelBooking(ctx *gin.Context) {
	bookingID, err := hotel.NewBookingID(ctx.Param("id"))
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	if !handler.authorizeBookingAccess(ctx, bookingID) {
		return
	}
	if err := handler.service.CancelBooking(ctx.Request.Context(), bookingID); err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (handler *httpHandler) handleCheckInBooking(ctx *gin.Context) {
	bookingID, err := hotel.NewBookingID(ctx.Param("id"))
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	if err := handler.service.CheckInBooking(ctx.Request.Context(), bookingID); err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (handler *httpHandler) handleCheckOutBooking(ctx *gin.Context) {
	bookingID, err := hotel.NewBookingID(ctx.Param("id"))
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	if err := handler.service.CheckOutBooking(ctx.Request.Context(), bookingID); err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (handler *httpHandler) handleListPayments(ctx *gin.Context) {
	payments, err := handler.service.ListPayments(ctx.Request.Context())
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	payloads := make([]paymentPayload, 0, len(payments))
	for _, payment := range payments {
		payloads = append(payloads, buildPaymentPayload(payment))
	}
	ctx.JSON(http.StatusOK, gin.H{"payments": payloads})
}

func (handler *httpHandler) handleAddPayment(ctx *gin.Context) {
	var request addPaymentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	bookingID, err := hotel.NewBookingID(request.BookingID)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	if !handler.authorizeBookingAccess(ctx, bookingID) {
		return
	}
	amount, err := hotel.NewPositiveAmountCents(request.AmountCents)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	method, err := hotel.ParsePaymentMethod(request.Method)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	metadata, err := hotel.NewMetadataJSON(marshalMetadata(request.Metadata))
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	payment, err := handler.service.AddPayment(ctx.Request.Context(), bookingID, amount, method, metadata)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"payment": buildPaymentPayload(payment)})
}

func (handler *httpHandler) handleDashboard(ctx *gin.Context) {
	stats, err := handler.service.ComputeDashboardStats(ctx.Request.Context())
	if err != nil {
		handler.respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"total_rooms":         stats.TotalRooms,
			"available_rooms":     stats.AvailableRooms,
			"active_bookings":     stats.ActiveBookings,
			"total_revenue_cents": stats.TotalRevenueCents.Int64(),
		},
	})
}

// authorizeBookingAccess lets admins act on any booking and customers only on
// their own. It responds with 403/404 and returns false when access is denied.
func (handler *httpHandler) authorizeBookingAccess(ctx *gin.Context, bookingID hotel.BookingID) bool {
	claims := getClaims(ctx)
	if claims.Role == hotel.AccountRoleAdmin.String() {
		return true
	}
	customerID, err := hotel.NewCustomerID(claims.CustomerID)
	if err != nil {
		ctx.JSON(http.StatusForbidden, errorResponse("forbidden", "missing customer profile"))
		return false
	}
	views, err := handler.service.ListBookings(ctx.Request.Context(), &customerID)
	if err != nil {
		handler.respondServiceError(ctx, err)
		return false
	}
	for _, view := range views {
		if view.Booking.ID() == bookingID {
			return true
		}
	}
	ctx.JSON(http.StatusNotFound, errorResponse("not_found", "booking not found"))
	return false
}

func (handler *httpHandler) respondWithSession(ctx *gin.Context, account hotel.Account) {
	customerID := ""
	var customer *customerPayload
	profile, err := handler.service.CustomerByAccount(ctx.Request.Context(), account.ID())
	if err == nil {
		customerID = profile.ID().String()
		payload := buildCustomerPayload(profile)
		customer = &payload
	} else if !errors.Is(err, hotel.ErrUnknownCustomer) {
		handler.respondServiceError(ctx, err)
		return
	}
	token, err := handler.tokens.issue(account, customerID)
	if err != nil {
		handler.logger.Error("token issue failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, errorResponse("internal_error", "session issue failed"))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"account": gin.H{
			"id":    account.ID().String(),
			"email": account.Email().String(),
			"role":  account.Role().String(),
		},
		"customer": customer,
	})
}

func (handler *httpHandler) respondServiceError(ctx *gin.Context, err error) {
	status, code := classifyServiceError(err)
	if status == http.StatusInternalServerError {
		handler.logger.Error("service call failed", zap.Error(err))
		ctx.JSON(status, errorResponse(code, "internal error"))
		return
	}
	var operationError hotel.OperationError
	message := err.Error()
	if errors.As(err, &operationError) {
		message = operationError.Unwrap().Error()
	}
	ctx.JSON(status, errorResponse(code, message))
}

func classifyServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, hotel.ErrRoomUnavailable):
		return http.StatusConflict, "room_unavailable"
	case errors.Is(err, hotel.ErrRoomNumberExists):
		return http.StatusConflict, "room_number_exists"
	case errors.Is(err, hotel.ErrEmailExists):
		return http.StatusConflict, "email_exists"
	case errors.Is(err, hotel.ErrBookingClosed):
		return http.StatusConflict, "booking_closed"
	case errors.Is(err, hotel.ErrRoomHasActiveBookings):
		return http.StatusConflict, "room_has_active_bookings"
	case errors.Is(err, hotel.ErrUnknownRoom),
		errors.Is(err, hotel.ErrUnknownCustomer),
		errors.Is(err, hotel.ErrUnknownBooking),
		errors.Is(err, hotel.ErrUnknownAccount):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, hotel.ErrInvalidStayRange),
		errors.Is(err, hotel.ErrInvalidRoomID),
		errors.Is(err, hotel.ErrInvalidCustomerID),
		errors.Is(err, hotel.ErrInvalidBookingID),
		errors.Is(err, hotel.ErrInvalidRoomNumber),
		errors.Is(err, hotel.ErrInvalidRoomType),
		errors.Is(err, hotel.ErrInvalidRoomStatus),
		errors.Is(err, hotel.ErrInvalidBookingStatus),
		errors.Is(err, hotel.ErrInvalidPaymentMethod),
		errors.Is(err, hotel.ErrInvalidEmailAddress),
		errors.Is(err, hotel.ErrInvalidFullName),
		errors.Is(err, hotel.ErrInvalidPriceCents),
		errors.Is(err, hotel.ErrInvalidAmountCents),
		errors.Is(err, hotel.ErrInvalidMetadataJSON):
		return http.StatusBadRequest, "invalid_request"
	}
	return http.StatusInternalServerError, "internal_error"
}

func parseStay(checkInValue string, checkOutValue string) (hotel.StayRange, error) {
	checkIn, err := time.Parse(dateLayout, checkInValue)
	if err != nil {
		return hotel.StayRange{}, fmt.Errorf("%w: check_in must use YYYY-MM-DD", hotel.ErrInvalidStayRange)
	}
	checkOut, err := time.Parse(dateLayout, checkOutValue)
	if err != nil {
		return hotel.StayRange{}, fmt.Errorf("%w: check_out must use YYYY-MM-DD", hotel.ErrInvalidStayRange)
	}
	return hotel.NewStayRange(checkIn, checkOut)
}

func marshalMetadata(metadata map[string]any) string {
	if metadata == nil {
		return "{}"
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func errorResponse(code string, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

type roomPayload struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	Type       string `json:"type"`
	PriceCents int64  `json:"price_cents"`
	Status     string `json:"status"`
}

type customerPayload struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

type bookingPayload struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customer_id"`
	RoomID     string           `json:"room_id"`
	CheckIn    string           `json:"check_in"`
	CheckOut   string           `json:"check_out"`
	TotalCents int64            `json:"total_cents"`
	Status     string           `json:"status"`
	CreatedAt  int64            `json:"created_unix_utc"`
	Room       *roomPayload     `json:"room,omitempty"`
	Customer   *customerPayload `json:"customer,omitempty"`
}

type paymentPayload struct {
	ID          string          `json:"id"`
	BookingID   string          `json:"booking_id"`
	AmountCents int64           `json:"amount_cents"`
	PaidAt      string          `json:"paid_at"`
	Method      string          `json:"method"`
	Metadata    json.RawMessage `json:"metadata"`
}

func buildRoomPayload(room hotel.Room) roomPayload {
	return roomPayload{
		ID:         room.ID().String(),
		Number:     room.Number().String(),
		Type:       room.Type().String(),
		PriceCents: room.PricePerNight().Int64(),
		Status:     room.Status().String(),
	}
}

func buildCustomerPayload(customer hotel.Customer) customerPayload {
	return customerPayload{
		ID:       customer.ID().String(),
		FullName: customer.FullName().String(),
		Email:    customer.Email().String(),
		Phone:    customer.Phone(),
	}
}

func buildBookingPayload(view hotel.BookingView) bookingPayload {
	booking := view.Booking
	payload := bookingPayload{
		ID:         booking.ID().String(),
		CustomerID: booking.CustomerID().String(),
		RoomID:     booking.RoomID().String(),
		CheckIn:    booking.Stay().CheckIn().Format(dateLayout),
		CheckOut:   booking.Stay().CheckOut().Format(dateLayout),
		TotalCents: booking.TotalAmount().Int64(),
		Status:     booking.Status().String(),
		CreatedAt:  booking.CreatedAt().Unix(),
	}
	if view.Room != nil {
		room := buildRoomPayload(*view.Room)
		payload.Room = &room
	}
	if view.Customer != nil {
		customer := buildCustomerPayload(*view.Customer)
		payload.Customer = &customer
	}
	return payload
}

func buildPaymentPayload(payment hotel.Payment) paymentPayload {
	return paymentPayload{
		ID:          payment.ID().String(),
		BookingID:   payment.BookingID().String(),
		AmountCents: payment.Amount().Int64(),
		PaidAt:      payment.PaidAt().Format(dateLayout),
		Method:      payment.Method().String(),
		Metadata:    json.RawMessage(payment.Metadata().String()),
	}
}
