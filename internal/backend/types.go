// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend implements the HTTP client for the DataHive admin API.
package backend

// User is the authenticated admin account returned by the login endpoint.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Category is a named grouping used to classify leads.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	CreatedBy   string `json:"createdBy"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Lead is a sales prospect record classified under one category.
type Lead struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Category  Category `json:"category"`
	Status    string   `json:"status"`
	Source    string   `json:"source"`
	CreatedAt string   `json:"createdAt"`
}

// NewLead carries the fields accepted by POST /admin/leads.
type NewLead struct {
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	CustomerContact string `json:"customerContact"`
	CustomerEmail   string `json:"customerEmail"`
	Website         string `json:"website"`
	Category        string `json:"category"`
}

// Counts holds the aggregate totals shown on the dashboard.
type Counts struct {
	TotalUsers          int `json:"totalUsers"`
	TotalLeads          int `json:"totalLeads"`
	TotalCategories     int `json:"totalCategories"`
	ActiveSubscriptions int `json:"activeSubscriptions"`
}

// CurrentMonth summarizes revenue and subscriptions for the running month.
type CurrentMonth struct {
	Revenue       float64 `json:"revenue"`
	Subscriptions int     `json:"subscriptions"`
	Name          string  `json:"name"`
}

// CountPoint is one entry of a daily count series.
type CountPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// RevenuePoint is one entry of a daily revenue series.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// MonthlyCountPoint is one entry of a monthly count series.
type MonthlyCountPoint struct {
	Month     string `json:"month"`
	MonthName string `json:"monthName"`
	Count     int    `json:"count"`
}

// MonthlyRevenuePoint is one entry of a monthly revenue series.
type MonthlyRevenuePoint struct {
	Month     string  `json:"month"`
	MonthName string  `json:"monthName"`
	Revenue   float64 `json:"revenue"`
}

// Analytics groups the dashboard time series.
type Analytics struct {
	DailySubscriptions   []CountPoint          `json:"dailySubscriptions"`
	MonthlySubscriptions []MonthlyCountPoint   `json:"monthlySubscriptions"`
	DailyRevenue         []RevenuePoint        `json:"dailyRevenue"`
	MonthlyRevenue       []MonthlyRevenuePoint `json:"monthlyRevenue"`
	DailyNewUsers        []CountPoint          `json:"dailyNewUsers"`
}

// Payment is one recent payment entry on the dashboard.
type Payment struct {
	UserName      string  `json:"userName"`
	UserEmail     string  `json:"userEmail"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	INREquivalent float64 `json:"inrEquivalent,omitempty"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
}

// Dashboard is the full payload of GET /admin/dashboard.
type Dashboard struct {
	Success        bool         `json:"success"`
	Counts         Counts       `json:"counts"`
	CurrentMonth   CurrentMonth `json:"currentMonth"`
	Analytics      Analytics    `json:"analytics"`
	RecentPayments []Payment    `json:"recentPayments"`
}
