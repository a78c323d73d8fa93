package hotel

const (
	operationAddRoom       = "add_room"
	operationDeleteRoom    = "delete_room"
	operationSetRoomStatus = "set_room_status"
	operationCreateBooking = "create_booking"
	operationCancelBooking = "cancel_booking"
	operationCheckIn       = "check_in"
	operationCheckOut      = "check_out"
	operationAddPayment    = "add_payment"
	operationSignUp        = "sign_up"

	operationStatusOK    = "ok"
	operationStatusError = "error"
)
