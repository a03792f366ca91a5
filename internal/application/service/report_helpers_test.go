package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func appt(status string, price, tip string, date time.Time) entity.Appointment {
	return entity.Appointment{
		ID:              uuid.New(),
		StaffID:         uuid.New(),
		AppointmentDate: date,
		TotalPrice:      money(price),
		TipAmount:       money(tip),
		Status:          status,
	}
}

func clientAppt(clientID uuid.UUID, status string, price string, date time.Time) entity.Appointment {
	a := appt(status, price, "0", date)
	a.ClientID = &clientID
	return a
}

func lineItem(txID, name, itemType string, qty int, amount string) entity.SaleLineItem {
	return entity.SaleLineItem{
		ID:            uuid.New(),
		POSStaffID:    "pos-1",
		TransactionID: txID,
		ItemName:      name,
		ItemType:      itemType,
		Quantity:      qty,
		TotalAmount:   money(amount),
	}
}

func weeklyMetric(staffID uuid.UUID, weekStart time.Time, rebooking, retention float64, newClients int) entity.StaffWeeklyMetric {
	return entity.StaffWeeklyMetric{
		ID:            uuid.New(),
		StaffID:       staffID,
		WeekStart:     weekStart,
		RebookingRate: rebooking,
		RetentionRate: retention,
		NewClients:    newClients,
	}
}
