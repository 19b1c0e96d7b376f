package models

import "time"

type Unit struct {
	UnitID       string   `json:"unitId"`
	ProjectName  string   `json:"projectName"`
	SubLocality  string   `json:"subLocality"`
	Address      string   `json:"address"`
	Price        *float64 `json:"price"`
	Sqft         *float64 `json:"sqft"`
	PricePerSqft *float64 `json:"pricePerSqft,omitempty"`
	Status       string   `json:"status"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// PriceValue treats an absent price as zero for aggregate math.
func (u *Unit) PriceValue() float64 {
	if u.Price == nil {
		return 0
	}
	return *u.Price
}

// UnitInsight pairs a unit with the raw record it came from.
type UnitInsight struct {
	Unit
	Original  RawRecord `json:"original"`
	IsPremium bool      `json:"isPremium"`
}

type Installment struct {
	Seq     int       `json:"seq"`
	Amount  float64   `json:"amount"`
	DueDate time.Time `json:"dueDate"`
	Status  string    `json:"status"`
}

type Contract struct {
	ContractID   string        `json:"contractId"`
	UnitID       string        `json:"unitId"`
	ProjectName  string        `json:"projectName"`
	BuyerName    string        `json:"buyerName"`
	BookingDate  time.Time     `json:"bookingDate"`
	TotalPrice   float64       `json:"totalPrice"`
	DownPayment  float64       `json:"downPayment"`
	Installments []Installment `json:"installments"`
}

type MaintenanceTask struct {
	TaskID        string    `json:"taskId"`
	UnitID        string    `json:"unitId"`
	ProjectName   string    `json:"projectName"`
	Priority      string    `json:"priority"`
	TaskType      string    `json:"taskType"`
	Status        string    `json:"status"`
	ScheduledDate time.Time `json:"scheduledDate"`
}

type AreaStats struct {
	Name     string  `json:"name"`
	AvgPrice float64 `json:"avgPrice"`
	Count    int     `json:"count"`
}

type Overview struct {
	TotalValue float64     `json:"totalValue"`
	UnitCount  int         `json:"unitCount"`
	AvgPrice   float64     `json:"avgPrice"`
	ByArea     []AreaStats `json:"byArea"`
}
