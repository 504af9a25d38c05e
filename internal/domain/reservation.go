package domain

import (
	"sort"
	"time"
)

// ReservationStatus is the status as stored by the reservation backend
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "En attente"
	StatusConfirmed ReservationStatus = "Confirmé"
)

// Reservation represents an appointment at a department of the tribunal
type Reservation struct {
	ID          int64
	Date        string // as returned by the backend, usually YYYY-MM-DD
	Time        string // HH:MM
	Department  string
	Citizen     string
	Description string
	Status      ReservationStatus
}

// ReservationDate exposes the raw date to the calendar grid
func (r *Reservation) ReservationDate() string {
	return r.Date
}

// IsConfirmed returns true if the department chief confirmed the reservation
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// StatusKey returns the translation key of the status ("pending" or "confirmed")
func (r *Reservation) StatusKey() string {
	if r.IsConfirmed() {
		return "confirmed"
	}
	return "pending"
}

// ToggledStatus returns the status a chief's toggle moves to.
// Unknown statuses count as pending and become confirmed.
func (r *Reservation) ToggledStatus() ReservationStatus {
	if r.IsConfirmed() {
		return StatusPending
	}
	return StatusConfirmed
}

// SortByTime orders reservations of a single day by their start time
func SortByTime(reservations []*Reservation) {
	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].Time < reservations[j].Time
	})
}

// DepartmentReservationsFilter selects one department's reservations over [StartDate, EndBefore).
type DepartmentReservationsFilter struct {
	Department string    // required
	StartDate  time.Time // inclusive
	EndBefore  time.Time // exclusive
}
