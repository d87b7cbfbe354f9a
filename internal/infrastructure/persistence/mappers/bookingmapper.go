package mappers

import (
	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/booking"
	bvo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/booking/valueobjects"
	pvo "github.com/anisurarzu/FTB-Server-Demo/internal/domain/payment/valueobjects"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/models"
)

type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) ToModel(b *booking.Booking) *models.BookingModel {
	return &models.BookingModel{
		ID:          b.ID(),
		FullName:    b.FullName(),
		NIDPassport: b.NIDPassport(),
		Address:     b.Address(),
		Phone:       b.Phone(),
		Email:       b.Email(),

		HotelID:          b.HotelID(),
		HotelName:        b.HotelName(),
		RoomCategoryName: b.RoomCategoryName(),
		RoomNumberID:     b.RoomNumberID(),
		RoomNumberName:   b.RoomNumberName(),

		CheckInDate:  b.CheckInDate(),
		CheckOutDate: b.CheckOutDate(),
		Nights:       b.Nights(),
		Adults:       b.Adults(),
		Children:     b.Children(),

		RoomPriceInPoisha:         b.RoomPrice().AmountInPoisha(),
		TotalBillInPoisha:         b.TotalBill().AmountInPoisha(),
		AdvancePaymentInPoisha:    b.AdvancePayment().AmountInPoisha(),
		DuePaymentInPoisha:        b.DuePayment().AmountInPoisha(),
		KitchenTotalBillInPoisha:  b.KitchenTotalBill().AmountInPoisha(),
		ExtraBedTotalBillInPoisha: b.ExtraBedTotalBill().AmountInPoisha(),
		IsKitchen:                 b.IsKitchen(),
		ExtraBed:                  b.ExtraBed(),

		PaymentStatus:         b.PaymentStatus().String(),
		PaymentMethod:         b.PaymentMethod().String(),
		PaymentAmountInPoisha: b.PaymentAmount().AmountInPoisha(),
		TransactionID:         b.TransactionID(),

		BookedBy:    b.BookedBy(),
		BookedByID:  b.BookedByID(),
		UpdatedByID: b.UpdatedByID(),
		Reference:   b.Reference(),
		Note:        b.Note(),

		BookingNo: b.BookingNo(),
		SerialNo:  b.SerialNo(),

		Status:     b.Status().String(),
		StatusID:   b.StatusID(),
		CanceledBy: b.CanceledBy(),
		Reason:     b.Reason(),

		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func (m *BookingMapper) ToDomain(model *models.BookingModel) *booking.Booking {
	return booking.ReconstructBooking(booking.BookingReconstructParams{
		ID:          model.ID,
		FullName:    model.FullName,
		NIDPassport: model.NIDPassport,
		Address:     model.Address,
		Phone:       model.Phone,
		Email:       model.Email,

		HotelID:          model.HotelID,
		HotelName:        model.HotelName,
		RoomCategoryName: model.RoomCategoryName,
		RoomNumberID:     model.RoomNumberID,
		RoomNumberName:   model.RoomNumberName,

		CheckInDate:  model.CheckInDate,
		CheckOutDate: model.CheckOutDate,
		Nights:       model.Nights,
		Adults:       model.Adults,
		Children:     model.Children,

		RoomPrice:         pvo.NewMoney(model.RoomPriceInPoisha, "BDT"),
		TotalBill:         pvo.NewMoney(model.TotalBillInPoisha, "BDT"),
		AdvancePayment:    pvo.NewMoney(model.AdvancePaymentInPoisha, "BDT"),
		DuePayment:        pvo.NewMoney(model.DuePaymentInPoisha, "BDT"),
		KitchenTotalBill:  pvo.NewMoney(model.KitchenTotalBillInPoisha, "BDT"),
		ExtraBedTotalBill: pvo.NewMoney(model.ExtraBedTotalBillInPoisha, "BDT"),
		IsKitchen:         model.IsKitchen,
		ExtraBed:          model.ExtraBed,

		PaymentStatus: pvo.PaymentStatus(model.PaymentStatus),
		PaymentMethod: pvo.PaymentMethod(model.PaymentMethod),
		PaymentAmount: pvo.NewMoney(model.PaymentAmountInPoisha, "BDT"),
		TransactionID: model.TransactionID,

		BookedBy:    model.BookedBy,
		BookedByID:  model.BookedByID,
		UpdatedByID: model.UpdatedByID,
		Reference:   model.Reference,
		Note:        model.Note,

		BookingNo: model.BookingNo,
		SerialNo:  model.SerialNo,

		Status:     bvo.BookingStatus(model.Status),
		CanceledBy: model.CanceledBy,
		Reason:     model.Reason,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	})
}
